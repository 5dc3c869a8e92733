package render

import (
	"bytes"
	"fmt"

	"github.com/joseph-ayodele/invoice-studio/constants"
)

// Logo holds a raster logo image read fully into memory, plus the image type
// name gofpdf expects ("PNG" or "JPEG").
type Logo struct {
	Data   []byte
	Format string
}

var (
	pngMagic  = []byte{0x89, 'P', 'N', 'G'}
	jpegMagic = []byte{0xff, 0xd8}
)

// NewLogo sniffs the image format from the magic bytes. Only PNG and JPEG are
// accepted; anything else is rejected before it can reach the page.
func NewLogo(data []byte) (*Logo, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("logo: empty image")
	}
	if len(data) > constants.MaxLogoBytes {
		return nil, fmt.Errorf("logo: image exceeds %d bytes", constants.MaxLogoBytes)
	}
	switch {
	case bytes.HasPrefix(data, pngMagic):
		return &Logo{Data: data, Format: "PNG"}, nil
	case bytes.HasPrefix(data, jpegMagic):
		return &Logo{Data: data, Format: "JPEG"}, nil
	}
	return nil, fmt.Errorf("logo: unsupported image format (want PNG or JPEG)")
}
