// Package typeface bundles the font arenas fall back to when the
// caller never supplies one.
package typeface

import (
	"sync"

	"github.com/gogpu/gg/text"
	"github.com/pkg/errors"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	once      sync.Once
	source    *text.FontSource
	sourceErr error
)

// Source returns the shared Go Regular font source. The font is parsed
// once; every caller shares the source and its glyph caches.
func Source() (*text.FontSource, error) {
	once.Do(func() {
		source, sourceErr = text.NewFontSource(goregular.TTF)
		if sourceErr != nil {
			sourceErr = errors.Wrap(sourceErr, "parsing bundled font")
		}
	})
	return source, sourceErr
}

// Face returns a face of the bundled font at size points, or nil if
// the bundled font failed to parse.
func Face(size float64) text.Face {
	src, err := Source()
	if err != nil {
		return nil
	}
	return src.Face(size)
}
