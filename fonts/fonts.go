package fonts

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

type FontName string

const (
	Regular FontName = "regular"
	Bold    FontName = "bold"
	Title   FontName = "title"
	Small   FontName = "small"
)

func (f FontName) Get() font.Face {
	return getFont(f)
}

var (
	fonts = map[FontName]font.Face{}
)

// LoadDefaults registers the faces the renderers use, built from the Go
// fonts bundled with x/image.
func LoadDefaults() error {
	faces := []struct {
		name FontName
		ttf  []byte
		size float64
	}{
		{Regular, goregular.TTF, 16},
		{Bold, gobold.TTF, 20},
		{Title, gobold.TTF, 36},
		{Small, goregular.TTF, 12},
	}
	for _, f := range faces {
		if err := LoadFontWithSize(f.name, f.ttf, f.size); err != nil {
			return err
		}
	}
	return nil
}

func LoadFontWithSize(name FontName, ttf []byte, size float64) error {
	fontData, err := truetype.Parse(ttf)
	if err != nil {
		return fmt.Errorf("fonts: parse %s: %w", name, err)
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
