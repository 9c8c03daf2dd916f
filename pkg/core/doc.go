// Package core exposes the codewarden analysis engine as a small, stable
// API for embedding in other programs.
package core
