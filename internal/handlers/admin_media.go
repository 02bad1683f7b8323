// Copyright (c) 2026 Gözcü Yazılım Teknoloji Ltd. Şti. <iletisim@gozcu.com.tr>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"gozcuweb/internal/imaging"
	"gozcuweb/internal/middleware"
	"gozcuweb/internal/models"
)

// maxUploadSize is the maximum allowed file upload size (20 MB).
const maxUploadSize = 20 << 20

// allowedUploadTypes are the MIME types the media library accepts.
var allowedUploadTypes = map[string]bool{
	"image/jpeg":      true,
	"image/png":       true,
	"image/webp":      true,
	"image/gif":       true,
	"image/svg+xml":   true,
	"application/pdf": true,
}

// renditionTypes are image types that get WebP renditions. GIF keeps its
// animation, SVG is vector.
var renditionTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

// MediaList returns media library entries, newest first.
func (a *Admin) MediaList(w http.ResponseWriter, r *http.Request) {
	if a.storageClient == nil {
		respondError(w, http.StatusServiceUnavailable, "Dosya deposu yapılandırılmamış")
		return
	}

	limit := queryInt(r, "limit", 50)
	offset := queryInt(r, "offset", 0)
	items, err := a.mediaStore.List(limit, offset)
	if err != nil {
		slog.Error("media list failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Dosyalar listelenemedi")
		return
	}
	respondData(w, http.StatusOK, items)
}

// MediaUpload accepts a multipart upload, stores the original in the
// uploads bucket, generates WebP renditions for raster images, and
// records the file in PostgreSQL. All objects of one upload share a key
// prefix so deletion can clean them up in a single prefix sweep.
func (a *Admin) MediaUpload(w http.ResponseWriter, r *http.Request) {
	if a.storageClient == nil {
		respondError(w, http.StatusServiceUnavailable, "Dosya deposu yapılandırılmamış")
		return
	}

	sess := middleware.SessionFromCtx(r.Context())

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize+1024)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		respondError(w, http.StatusRequestEntityTooLarge, "Dosya çok büyük (en fazla 20 MB)")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Dosya bulunamadı")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Dosya okunamadı")
		return
	}

	contentType := http.DetectContentType(data)
	// DetectContentType reports SVG as XML or plain text.
	if strings.HasSuffix(strings.ToLower(header.Filename), ".svg") &&
		(strings.Contains(contentType, "xml") || strings.Contains(contentType, "text/plain")) {
		contentType = "image/svg+xml"
	}
	if !allowedUploadTypes[contentType] {
		respondError(w, http.StatusBadRequest, "Bu dosya türü desteklenmiyor")
		return
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if ext == "" {
		ext = extensionFromType(contentType)
	}

	now := time.Now()
	fileID := uuid.New().String()
	keyPrefix := fmt.Sprintf("uploads/%d/%02d/%s", now.Year(), now.Month(), fileID)
	originalKey := keyPrefix + "/original" + ext

	ctx := r.Context()
	if err := a.storageClient.Upload(ctx, originalKey, contentType, bytes.NewReader(data), int64(len(data))); err != nil {
		slog.Error("media upload failed", "error", err, "key", originalKey)
		respondError(w, http.StatusInternalServerError, "Dosya yüklenemedi")
		return
	}

	// Renditions are best-effort: the original is already stored, so a
	// failed variant only costs responsive sizes.
	if renditionTypes[contentType] {
		renditions, err := imaging.Generate(data, imaging.DefaultVariants)
		if err != nil {
			slog.Warn("rendition generation failed", "error", err, "key", originalKey)
		}
		for _, rendition := range renditions {
			key := fmt.Sprintf("%s/%s.webp", keyPrefix, rendition.Name)
			if err := a.storageClient.Upload(ctx, key, rendition.ContentType,
				bytes.NewReader(rendition.Data), int64(len(rendition.Data))); err != nil {
				slog.Warn("rendition upload failed", "error", err, "key", key)
			}
		}
	}

	created, err := a.mediaStore.Create(&models.Media{
		Filename:     fileID + ext,
		OriginalName: header.Filename,
		ContentType:  contentType,
		SizeBytes:    int64(len(data)),
		S3Key:        originalKey,
		URL:          a.storageClient.FileURL(originalKey),
		UploaderID:   sess.UserID,
	})
	if err != nil {
		slog.Error("media db insert failed", "error", err, "key", originalKey)
		respondError(w, http.StatusInternalServerError, "Dosya kaydı oluşturulamadı")
		return
	}

	respondData(w, http.StatusCreated, created)
}

// MediaDelete removes a media item: the database row first, then every
// object under the upload's key prefix (original plus renditions). The
// bucket sweep is best-effort and never fails the request.
func (a *Admin) MediaDelete(w http.ResponseWriter, r *http.Request) {
	if a.storageClient == nil {
		respondError(w, http.StatusServiceUnavailable, "Dosya deposu yapılandırılmamış")
		return
	}

	id, ok := parseID(w, r)
	if !ok {
		return
	}

	deleted, err := a.mediaStore.Delete(id)
	if err != nil {
		slog.Error("media db delete failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Dosya silinemedi")
		return
	}
	if deleted == nil {
		respondError(w, http.StatusNotFound, "Dosya bulunamadı")
		return
	}

	prefix := path.Dir(deleted.S3Key) + "/"
	if err := a.storageClient.DeletePrefix(r.Context(), prefix); err != nil {
		slog.Warn("bucket cleanup failed", "error", err, "prefix", prefix)
	}

	respondData(w, http.StatusOK, map[string]string{"message": "Dosya silindi"})
}

// extensionFromType maps known MIME types to a file extension.
func extensionFromType(contentType string) string {
	switch contentType {
	case "image/jpeg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	case "image/svg+xml":
		return ".svg"
	case "application/pdf":
		return ".pdf"
	default:
		return ""
	}
}
