// internal/ui/fonts.go
package ui

import (
	"candy-defense/pkg/logger"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

const (
	regularFontSize = 14
	titleFontSize   = 18
	bigFontSize     = 40
)

// Faces is the set of fonts the HUD draws with.
type Faces struct {
	Regular font.Face
	Title   font.Face
	Big     font.Face
}

// LoadFaces parses the embedded Go fonts. On failure every face falls back
// to basicfont so the game still starts.
func LoadFaces() Faces {
	regular, err := newFace(goregular.TTF, regularFontSize)
	if err != nil {
		logger.Log.WithError(err).Warn("regular font unavailable, using basicfont")
		return fallbackFaces()
	}
	title, err := newFace(gobold.TTF, titleFontSize)
	if err != nil {
		logger.Log.WithError(err).Warn("title font unavailable, using basicfont")
		return fallbackFaces()
	}
	big, err := newFace(gobold.TTF, bigFontSize)
	if err != nil {
		big = title
	}
	return Faces{Regular: regular, Title: title, Big: big}
}

func fallbackFaces() Faces {
	return Faces{Regular: basicfont.Face7x13, Title: basicfont.Face7x13, Big: basicfont.Face7x13}
}

func newFace(ttf []byte, size float64) (font.Face, error) {
	f, err := opentype.Parse(ttf)
	if err != nil {
		return nil, err
	}
	return opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}
