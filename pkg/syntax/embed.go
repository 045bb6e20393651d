package syntax

import (
	"embed"
	"io/fs"
)

//go:embed presets/*.yaml
var embeddedPresets embed.FS

// EmbeddedFS returns the bundled preset documents. Callers may pass this
// filesystem to LoadFS, or combine it with their own documents.
func EmbeddedFS() fs.FS {
	sub, err := fs.Sub(embeddedPresets, "presets")
	if err != nil {
		// The embed directive guarantees the subpath exists, so panic is
		// acceptable here.
		panic(err)
	}
	return sub
}

// Embedded loads a registry from the bundled preset documents.
func Embedded() (*Registry, error) {
	return LoadFS(EmbeddedFS())
}
