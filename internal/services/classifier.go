package services

import "strings"

// allowedExtensions is the set of upload formats the intake forms accept.
var allowedExtensions = map[string]bool{
	"png":  true,
	"jpg":  true,
	"jpeg": true,
	"pdf":  true,
	"docx": true,
}

// AllowedFile reports whether the filename carries an allowed extension.
// The extension is the segment after the last dot, compared case-insensitively.
// Filenames without a dot are rejected.
func AllowedFile(filename string) bool {
	idx := strings.LastIndex(filename, ".")
	if idx < 0 {
		return false
	}
	return allowedExtensions[strings.ToLower(filename[idx+1:])]
}
