// Package language maps file extensions to language tags.
package language

import (
	"path/filepath"
	"strings"
)

// Generic is the tag for files with an unrecognized extension.
const Generic = "text"

var byExtension = map[string]string{
	".go":    "go",
	".py":    "python",
	".rs":    "rust",
	".js":    "javascript",
	".jsx":   "javascript",
	".mjs":   "javascript",
	".ts":    "typescript",
	".tsx":   "typescript",
	".java":  "java",
	".rb":    "ruby",
	".php":   "php",
	".c":     "c",
	".h":     "c",
	".cpp":   "cpp",
	".cc":    "cpp",
	".hpp":   "cpp",
	".cs":    "csharp",
	".swift": "swift",
	".kt":    "kotlin",
	".sh":    "shell",
	".bash":  "shell",
	".sql":   "sql",
	".html":  "html",
	".css":   "css",
	".json":  "json",
	".yml":   "yaml",
	".yaml":  "yaml",
	".toml":  "toml",
	".md":    "markdown",
}

// Detect returns the language tag for a path based on its extension alone.
// No content sniffing is performed.
func Detect(path string) string {
	if lang, ok := byExtension[strings.ToLower(filepath.Ext(path))]; ok {
		return lang
	}
	return Generic
}

// Linted reports whether the language has a standard linting-tool suggestion
// (the two script dialects the analyzer recommends ESLint for).
func Linted(lang string) bool {
	return lang == "javascript" || lang == "typescript"
}
