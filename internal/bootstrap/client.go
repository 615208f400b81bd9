// Package bootstrap loads the initial job collection from the bootstrap
// data source: an HTTP endpoint or a local JSON file. The feed is read
// once per fresh session; later sessions hydrate from the store.
package bootstrap

import (
	"compress/gzip"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const timeout = 30 * time.Second

// createHTTPClient creates the HTTP client used for the one bootstrap
// fetch, with optional proxy support.
func createHTTPClient(proxyURL string) *http.Client {
	transport := &http.Transport{
		MaxIdleConns:      10,
		IdleConnTimeout:   90 * time.Second,
		ForceAttemptHTTP2: true,
	}

	if proxyURL != "" {
		if proxy, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(proxy)
		}
	}

	return &http.Client{
		Transport: transport,
		Timeout:   timeout,
	}
}

// readResponseBody reads the response body, handling gzip compression if
// the server applied it.
func readResponseBody(resp *http.Response, body io.Reader) ([]byte, error) {
	switch resp.Header.Get("Content-Encoding") {
	case "gzip":
		reader, err := gzip.NewReader(body)
		if err != nil {
			return nil, fmt.Errorf("failed to create gzip reader: %w", err)
		}
		defer reader.Close()
		return io.ReadAll(reader)
	default:
		return io.ReadAll(body)
	}
}
