package questions

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Fetcher retrieves a named static file.
type Fetcher interface {
	Fetch(ctx context.Context, name string) ([]byte, error)
}

// NewFetcher returns an HTTP fetcher for http(s) sources and a directory
// fetcher for everything else.
func NewFetcher(source string) Fetcher {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		return NewHTTPFetcher(source, nil)
	}
	return DirFetcher{Dir: source}
}

// StatusError reports a non-2xx HTTP response.
type StatusError struct {
	URL    string
	Status int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP error! status: %d", e.Status)
}

// HTTPFetcher GETs files relative to a base URL.
type HTTPFetcher struct {
	BaseURL string
	client  *http.Client
}

// NewHTTPFetcher creates an HTTPFetcher. A nil client gets a 30s timeout.
func NewHTTPFetcher(baseURL string, client *http.Client) *HTTPFetcher {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	return &HTTPFetcher{BaseURL: baseURL, client: client}
}

func (f *HTTPFetcher) Fetch(ctx context.Context, name string) ([]byte, error) {
	u, err := url.JoinPath(f.BaseURL, name)
	if err != nil {
		return nil, fmt.Errorf("build url: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{URL: u, Status: resp.StatusCode}
	}
	return io.ReadAll(resp.Body)
}

// DirFetcher reads files from a local directory.
type DirFetcher struct {
	Dir string
}

func (f DirFetcher) Fetch(_ context.Context, name string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(f.Dir, filepath.Clean("/"+name)))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, &StatusError{URL: name, Status: http.StatusNotFound}
	}
	return data, err
}
