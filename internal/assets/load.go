package assets

import (
	"bytes"
	"errors"

	"github.com/rs/zerolog"

	"github.com/alnah/go-quotepdf/internal/docdef"
	"github.com/alnah/go-quotepdf/internal/quote"
)

// errUnsupportedImage marks image bytes in a format the backend cannot embed.
var errUnsupportedImage = errors.New("unsupported image format")

// Load returns the content of dir/name, or nil when it cannot be read.
// Failures are logged as an AssetLoadError warning and never returned.
func Load(src Source, log zerolog.Logger, dir, name string) []byte {
	if name == "" {
		return nil
	}
	data, err := src.Read(dir, name)
	if err != nil {
		log.Warn().Err(&quote.AssetLoadError{Dir: dir, Name: name, Err: err}).Msg("asset unavailable, using empty placeholder")
		return nil
	}
	return data
}

// Image loads an image asset. Missing or unrecognized files yield an empty
// Asset so the image key still exists in the document.
func Image(src Source, log zerolog.Logger, dir, name string) docdef.Asset {
	data := Load(src, log, dir, name)
	if data == nil {
		return docdef.Asset{}
	}
	format := ImageFormat(data)
	if format == "" {
		log.Warn().Err(&quote.AssetLoadError{Dir: dir, Name: name, Err: errUnsupportedImage}).Msg("asset unavailable, using empty placeholder")
		return docdef.Asset{}
	}
	return docdef.Asset{Data: data, Format: format}
}

// ImageFormat sniffs PNG, JPEG and GIF signatures. It returns "" for
// anything else.
func ImageFormat(data []byte) string {
	switch {
	case bytes.HasPrefix(data, []byte("\x89PNG\r\n\x1a\n")):
		return "png"
	case bytes.HasPrefix(data, []byte{0xFF, 0xD8, 0xFF}):
		return "jpg"
	case bytes.HasPrefix(data, []byte("GIF87a")), bytes.HasPrefix(data, []byte("GIF89a")):
		return "gif"
	}
	return ""
}
