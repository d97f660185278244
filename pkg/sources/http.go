package sources

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/yuriiter/bikeshare/pkg/utils"
)

type HTTPSource struct {
	BaseURL string
	Cities  map[string]string
	Client  *http.Client
}

func (h *HTTPSource) Name() string { return "http" }

func (h *HTTPSource) Location(city string) (string, error) {
	file, err := lookup(h.Cities, city)
	if err != nil {
		return "", err
	}
	u, err := url.JoinPath(strings.TrimSuffix(h.BaseURL, "/"), file)
	if err != nil {
		return "", fmt.Errorf("build url for %s: %w", city, err)
	}
	return u, nil
}

func (h *HTTPSource) Open(ctx context.Context, city string) (io.ReadCloser, error) {
	u, err := h.Location(city)
	if err != nil {
		return nil, err
	}
	utils.DebugLog("HTTP: fetching %s for %s", u, city)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "BikeshareCLI/1.0")

	client := h.Client
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s data: %w", city, err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("fetch %s data: http status %d", city, resp.StatusCode)
	}
	return resp.Body, nil
}
