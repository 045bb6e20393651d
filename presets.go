package appleseed

import (
	"io/fs"

	"github.com/orchardml/appleseed/pkg/syntax"
)

// EmbeddedPresets exposes the built-in language preset documents so callers
// can reuse or extend them without importing the syntax package directly.
func EmbeddedPresets() fs.FS {
	return syntax.EmbeddedFS()
}
