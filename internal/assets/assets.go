// Package assets embeds the dessert artwork.
package assets

import (
	"embed"
	"io/fs"
	"path"

	"fyne.io/fyne/v2"
)

const (
	Background  = "bakery_back.svg"
	Placeholder = "placeholder.svg"
)

//go:embed images/*.svg
var images embed.FS

// Resolver maps image references to fyne resources, caching each one.
type Resolver struct {
	fsys  fs.FS
	cache map[string]fyne.Resource
}

func NewResolver() *Resolver {
	return NewResolverFS(images, "images")
}

// NewResolverFS serves images from dir inside fsys.
func NewResolverFS(fsys fs.FS, dir string) *Resolver {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		sub = fsys
	}
	return &Resolver{fsys: sub, cache: make(map[string]fyne.Resource)}
}

// Has reports whether ref names an available image.
func (r *Resolver) Has(ref string) bool {
	_, err := fs.Stat(r.fsys, path.Clean(ref))
	return err == nil
}

// Resource returns the image for ref, or the placeholder when ref is unknown.
func (r *Resolver) Resource(ref string) fyne.Resource {
	if res, ok := r.cache[ref]; ok {
		return res
	}

	name := path.Clean(ref)
	data, err := fs.ReadFile(r.fsys, name)
	if err != nil {
		if ref == Placeholder {
			return fyne.NewStaticResource(Placeholder, nil)
		}
		return r.Resource(Placeholder)
	}

	res := fyne.NewStaticResource(path.Base(name), data)
	r.cache[ref] = res
	return res
}
