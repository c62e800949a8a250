package snippet

import (
	"path/filepath"
	"strings"
)

// languages maps file extensions to syntax-highlighting language names.
var languages = map[string]string{
	".c":     "c",
	".conf":  "ini",
	".cpp":   "cpp",
	".cs":    "csharp",
	".css":   "css",
	".go":    "go",
	".html":  "html",
	".ini":   "ini",
	".java":  "java",
	".js":    "javascript",
	".json":  "json",
	".kt":    "kotlin",
	".md":    "markdown",
	".proto": "protobuf",
	".py":    "python",
	".rb":    "ruby",
	".rs":    "rust",
	".sbt":   "scala",
	".scala": "scala",
	".sh":    "bash",
	".sql":   "sql",
	".toml":  "toml",
	".ts":    "typescript",
	".xml":   "xml",
	".yaml":  "yaml",
	".yml":   "yaml",
}

// Language infers the display language for a snippet from its file
// extension. An explicit override wins; unknown extensions yield "text".
func Language(path, override string) string {
	if override != "" {
		return override
	}
	if lang, ok := languages[strings.ToLower(filepath.Ext(path))]; ok {
		return lang
	}
	return "text"
}
