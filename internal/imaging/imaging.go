// Copyright (c) 2026 Gözcü Yazılım Teknoloji Ltd. Şti. <iletisim@gozcu.com.tr>
// All rights reserved. See LICENSE for details.

// Package imaging generates responsive WebP renditions of uploaded
// images using libvips. Renditions wider than the source are skipped so
// images are never upscaled.
package imaging

import (
	"fmt"
	"log/slog"

	"github.com/davidbyttow/govips/v2/vips"
)

// Variant describes one target rendition size.
type Variant struct {
	Name    string // e.g., "thumb", "card", "content", "hero"
	Width   int    // target width in pixels
	Quality int    // WebP quality 1-100
}

// DefaultVariants covers the breakpoints the site's pages actually use:
// admin grid thumbnails, card images, article body images, and hero banners.
var DefaultVariants = []Variant{
	{Name: "thumb", Width: 240, Quality: 72},
	{Name: "card", Width: 480, Quality: 80},
	{Name: "content", Width: 960, Quality: 80},
	{Name: "hero", Width: 1600, Quality: 82},
}

// Rendition holds one generated variant ready for upload.
type Rendition struct {
	Name        string
	Width       int
	Height      int
	Data        []byte
	ContentType string // always "image/webp"
}

// Startup initialises libvips. Call once at application start.
// concurrency controls the number of worker threads (0 = auto).
func Startup(concurrency int) {
	cfg := &vips.Config{
		ConcurrencyLevel: concurrency,
		MaxCacheSize:     100,
		MaxCacheMem:      50 * 1024 * 1024,
	}
	vips.LoggingSettings(nil, vips.LogLevelWarning)
	vips.Startup(cfg)
	slog.Info("libvips started", "version", vips.Version)
}

// Shutdown releases libvips resources. Call at application shutdown.
func Shutdown() {
	vips.Shutdown()
}

// Generate creates WebP renditions of the source image for each variant.
// Variants wider than the original are collapsed to the original width,
// and generation stops once the full-width rendition has been produced.
func Generate(original []byte, variants []Variant) ([]Rendition, error) {
	if len(variants) == 0 {
		variants = DefaultVariants
	}

	probe, err := vips.NewImageFromBuffer(original)
	if err != nil {
		return nil, fmt.Errorf("imaging: probe failed: %w", err)
	}
	origWidth := probe.Width()
	probe.Close()

	var results []Rendition

	for _, v := range variants {
		targetWidth := v.Width
		if origWidth <= targetWidth {
			targetWidth = origWidth
		}

		img, err := vips.NewThumbnailFromBuffer(original, targetWidth, 0, vips.InterestingNone)
		if err != nil {
			return nil, fmt.Errorf("imaging: thumbnail %s (%dpx): %w", v.Name, targetWidth, err)
		}

		// Honor EXIF orientation before the metadata is stripped.
		if err := img.AutoRotate(); err != nil {
			img.Close()
			return nil, fmt.Errorf("imaging: autorotate %s: %w", v.Name, err)
		}

		params := vips.NewWebpExportParams()
		params.Quality = v.Quality
		params.Lossless = false
		params.StripMetadata = true

		buf, meta, err := img.ExportWebp(params)
		img.Close()
		if err != nil {
			return nil, fmt.Errorf("imaging: export %s: %w", v.Name, err)
		}

		results = append(results, Rendition{
			Name:        v.Name,
			Width:       meta.Width,
			Height:      meta.Height,
			Data:        buf,
			ContentType: "image/webp",
		})

		if origWidth <= v.Width {
			break
		}
	}

	return results, nil
}
