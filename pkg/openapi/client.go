package openapi

import (
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Version is the tool version reported by the CLI.
const Version = "0.3.0"

// Client loads OpenAPI specification documents from HTTP(S) URLs or local
// file paths. The zero-value HTTP settings deliberately carry no overall
// timeout: manifest generation is an offline step and a hung fetch should
// surface to the operator rather than be masked by a retry policy.
type Client struct {
	httpClient *http.Client
}

// NewClient creates a client for loading specification documents.
// Pass a non-nil *http.Client to override transport settings (used by
// tests); nil selects the default transport.
func NewClient(httpClient *http.Client) *Client {
	if httpClient == nil {
		transport := &http.Transport{
			MaxIdleConns:        10,
			IdleConnTimeout:     90 * time.Second,
			MaxIdleConnsPerHost: 10,
		}
		httpClient = &http.Client{Transport: transport}
	}

	return &Client{httpClient: httpClient}
}

// IsURL reports whether the source locator is an HTTP(S) URL rather than a
// filesystem path. Only the literal http:// and https:// prefixes count;
// no other scheme is recognized.
func IsURL(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

// fetch retrieves the raw document bytes from a URL. A single attempt,
// fail-fast: any transport error or non-2xx status aborts the load.
func (c *Client) fetch(url string) ([]byte, error) {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json, application/yaml")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("request failed with status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	return body, nil
}
