package pages

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
)

const (
	// IndexPage is the submission page served at GET /.
	IndexPage = "index.html"
	// ReadPage is the reading page served at GET /read.
	ReadPage = "read.html"
)

//go:embed public/*
var embeddedPublic embed.FS

// EmbeddedFS returns the pages compiled into the binary.
func EmbeddedFS() fs.FS {
	sub, err := fs.Sub(embeddedPublic, "public")
	if err != nil {
		panic("failed to open embedded public directory: " + err.Error())
	}
	return sub
}

// OpenFS returns the directory's filesystem, or the embedded pages when dir is empty.
// Both pages must be present in dir.
func OpenFS(dir string) (fs.FS, error) {
	if dir == "" {
		return EmbeddedFS(), nil
	}

	fsys := os.DirFS(dir)
	for _, page := range []string{IndexPage, ReadPage} {
		if _, err := fs.Stat(fsys, page); err != nil {
			return nil, fmt.Errorf("public dir %s: %w", dir, err)
		}
	}
	return fsys, nil
}
