// Package providers contains the external learning-platform clients the
// aggregator fans out to. Every provider degrades to an empty result when
// its credential is absent, and callers treat errors as "contributed
// nothing" rather than failing the request.
package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultTimeout = 10 * time.Second

// client is the shared HTTP plumbing for the concrete providers.
type client struct {
	httpClient *http.Client
	apiKey     string
}

func newClient(apiKey string) client {
	return client{
		httpClient: &http.Client{Timeout: defaultTimeout},
		apiKey:     apiKey,
	}
}

func (c *client) configured() bool {
	return strings.TrimSpace(c.apiKey) != ""
}

func (c *client) getJSON(ctx context.Context, rawURL string, q url.Values, bearer bool, target any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")
	if bearer {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.apiKey))
	}
	if q != nil {
		req.URL.RawQuery = q.Encode()
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("bad status: %s", resp.Status)
	}

	return json.Unmarshal(data, target)
}

// truncate shortens long platform descriptions to keep records compact.
func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}
