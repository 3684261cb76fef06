package pipeline

import (
	"bytes"
	"errors"
)

// ErrUnsupportedInput rejects files that are neither PDF nor an accepted
// image type. The rejection happens before any processing begins.
var ErrUnsupportedInput = errors.New("unsupported input: expected PDF, PNG, JPEG, TIFF or WebP")

var (
	pdfMagic  = []byte("%PDF-")
	pngMagic  = []byte{0x89, 'P', 'N', 'G'}
	jpegMagic = []byte{0xFF, 0xD8, 0xFF}
	tiffLE    = []byte{'I', 'I', 0x2A, 0x00}
	tiffBE    = []byte{'M', 'M', 0x00, 0x2A}
	riffMagic = []byte("RIFF")
	webpTag   = []byte("WEBP")
)

// DetectKind sniffs the input bytes and classifies them as PDF or image.
func DetectKind(data []byte) (FileKind, error) {
	switch {
	case bytes.HasPrefix(data, pdfMagic):
		return KindPDF, nil
	case bytes.HasPrefix(data, pngMagic),
		bytes.HasPrefix(data, jpegMagic),
		bytes.HasPrefix(data, tiffLE),
		bytes.HasPrefix(data, tiffBE):
		return KindImage, nil
	case bytes.HasPrefix(data, riffMagic) && len(data) >= 12 && bytes.Equal(data[8:12], webpTag):
		return KindImage, nil
	default:
		return "", ErrUnsupportedInput
	}
}
