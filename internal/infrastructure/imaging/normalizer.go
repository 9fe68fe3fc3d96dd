package imaging

import (
	"bytes"
	"strings"

	"github.com/disintegration/imaging"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"revu/internal/domain/media"
	"revu/internal/shared/errors"
	"revu/internal/shared/logger"
)

const (
	maxDimension = 500
	jpegQuality  = 70
)

// Normalizer re-encodes uploaded images into bounded JPEGs. Anything larger
// than 500x500 is scaled down to fit; smaller images keep their size.
type Normalizer struct {
	logger logger.Interface
}

func NewNormalizer(logger logger.Interface) *Normalizer {
	return &Normalizer{logger: logger}
}

func (n *Normalizer) Normalize(data []byte, filename string) (*media.Image, error) {
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		n.logger.Warnw("failed to decode uploaded image", "filename", filename, "error", err)
		return nil, errors.NewImageProcessingError("could not read the uploaded image", err.Error())
	}

	bounds := img.Bounds()
	if bounds.Dx() > maxDimension || bounds.Dy() > maxDimension {
		img = imaging.Fit(img, maxDimension, maxDimension, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(jpegQuality)); err != nil {
		n.logger.Errorw("failed to encode normalized image", "filename", filename, "error", err)
		return nil, errors.NewImageProcessingError("could not encode the image", err.Error())
	}

	return &media.Image{
		Data: buf.Bytes(),
		Name: derivedName(filename),
	}, nil
}

// derivedName keeps the part of the original filename before the first dot
// and replaces the extension with the output format's.
func derivedName(filename string) string {
	base := filename
	if idx := strings.IndexByte(filename, '.'); idx > 0 {
		base = filename[:idx]
	}
	if base == "" || base[0] == '.' {
		base = "image"
	}
	return base + ".jpg"
}
