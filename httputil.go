package cryptotrack

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// contains http utils to deal with remote services.
//
// Every call is a fresh round trip: the external contract offers no retry
// and no caching, and a failure of any kind collapses into ErrFetch.

// NewHTTPClient returns the client used for all provider calls.
func NewHTTPClient() *http.Client {
	return &http.Client{Timeout: 10 * time.Second}
}

// jwget performs an HTTP GET request and unmarshals the JSON response into
// the provided data structure.
func jwget(ctx context.Context, client *http.Client, addr string, data any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrFetch, err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: cannot GET %v/%v: %v", ErrFetch, resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrFetch, err)
	}
	if err := json.Unmarshal(body, data); err != nil {
		return fmt.Errorf("%w: %v", ErrFetch, err)
	}
	return nil
}
