package diagfmt

import (
	"path/filepath"

	"xdoc/internal/source"
)

func formatPath(f *source.File, fs *source.FileSet, mode PathMode) string {
	switch mode {
	case PathModeAbsolute:
		if abs, err := filepath.Abs(f.Path); err == nil {
			return abs
		}
		return f.Path
	case PathModeRelative, PathModeAuto:
		return f.FormatPath(fs.BaseDir())
	case PathModeBasename:
		return filepath.Base(f.Path)
	default:
		return f.Path
	}
}
