package sources

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/yuriiter/bikeshare/pkg/config"
)

var ErrUnknownCity = errors.New("unknown city")

// Source opens the raw trip CSV for a city.
type Source interface {
	Name() string
	// Location is the path or URL Open reads for city.
	Location(city string) (string, error)
	Open(ctx context.Context, city string) (io.ReadCloser, error)
}

// New returns an HTTPSource when a base URL is configured and a FileSource
// rooted at the data directory otherwise.
func New(cfg *config.Config) Source {
	if cfg.BaseURL != "" {
		return &HTTPSource{
			BaseURL: cfg.BaseURL,
			Cities:  cfg.Cities,
			Client:  &http.Client{Timeout: cfg.HTTPTimeout},
		}
	}
	return &FileSource{Dir: cfg.DataDir, Cities: cfg.Cities}
}

func lookup(cities map[string]string, city string) (string, error) {
	file, ok := cities[city]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownCity, city)
	}
	return file, nil
}
