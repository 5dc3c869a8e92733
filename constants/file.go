package constants

import "strings"

// LogoFormats holds the accepted logo image formats, keyed by the type name
// gofpdf expects in ImageOptions.
var LogoFormats = []string{"PNG", "JPEG"}

// AllowedLogoExtensions holds the accepted logo file extensions for uploads.
var AllowedLogoExtensions = map[string]struct{}{
	"jpg":  {},
	"jpeg": {},
	"png":  {},
}

// MaxLogoBytes caps logo uploads read fully into memory.
const MaxLogoBytes = 5 * 1024 * 1024

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}
