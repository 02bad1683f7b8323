// Copyright (c) 2026 Gözcü Yazılım Teknoloji Ltd. Şti. <iletisim@gozcu.com.tr>
// All rights reserved. See LICENSE for details.

// Package web provides the embedded static assets: the compiled admin
// SPA and any shared static files. Docker builds drop the frontend build
// output into web/static/ before compiling the binary; local development
// ships a placeholder shell.
package web

import "embed"

// StaticFS embeds the web/static/ directory tree.
//
//go:embed all:static
var StaticFS embed.FS
