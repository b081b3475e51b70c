package fonts

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

type FontName string

const (
	Regular FontName = "regular"
	Small   FontName = "small"
)

func (f FontName) Get() font.Face {
	return getFont(f)
}

var (
	fonts = map[FontName]font.Face{}
)

// LoadDefaults registers the faces the overlay draws with.
func LoadDefaults() error {
	if err := LoadFontWithSize(Regular, goregular.TTF, 14); err != nil {
		return err
	}
	return LoadFontWithSize(Small, goregular.TTF, 10)
}

func LoadFontWithSize(name FontName, ttf []byte, size float64) error {
	fontData, err := truetype.Parse(ttf)
	if err != nil {
		return fmt.Errorf("parse font %s: %w", name, err)
	}
	fonts[name] = truetype.NewFace(fontData, &truetype.Options{Size: size})
	return nil
}

func getFont(name FontName) font.Face {
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}
