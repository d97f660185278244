package sources

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/yuriiter/bikeshare/pkg/utils"
)

type FileSource struct {
	Dir    string
	Cities map[string]string
}

func (f *FileSource) Name() string { return "file" }

// Location resolves the city's file against Dir unless it is already absolute.
func (f *FileSource) Location(city string) (string, error) {
	file, err := lookup(f.Cities, city)
	if err != nil {
		return "", err
	}
	if filepath.IsAbs(file) {
		return file, nil
	}
	return filepath.Join(f.Dir, file), nil
}

func (f *FileSource) Open(ctx context.Context, city string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	path, err := f.Location(city)
	if err != nil {
		return nil, err
	}
	utils.DebugLog("File: opening %s for %s", path, city)

	rc, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s data: %w", city, err)
	}
	return rc, nil
}
