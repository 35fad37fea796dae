// Package web carries the embedded HTML templates so the binary and the
// handler tests render the same pages regardless of working directory.
package web

import "embed"

//go:embed templates/*.html
var Templates embed.FS
