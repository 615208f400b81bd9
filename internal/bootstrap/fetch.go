package bootstrap

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/cheggaaa/pb/v3"
	"github.com/dustin/go-humanize"

	"joblens/internal/models"
)

// Source fetches the bootstrap job collection.
type Source interface {
	Fetch(ctx context.Context) ([]models.Job, error)
}

// Client loads the job feed from an http(s) URL or a local file path.
type Client struct {
	location string
	http     *http.Client
	progress bool
}

// NewClient creates a bootstrap client for the given location. Progress
// output is only useful on a terminal; callers disable it in quiet mode.
func NewClient(location, proxyURL string, progress bool) *Client {
	return &Client{
		location: location,
		http:     createHTTPClient(proxyURL),
		progress: progress,
	}
}

// Fetch reads, validates and decodes the feed. Any failure is reported
// to the caller, which falls back to an empty collection.
func (c *Client) Fetch(ctx context.Context) ([]models.Job, error) {
	var (
		data []byte
		err  error
	)
	if strings.HasPrefix(c.location, "http://") || strings.HasPrefix(c.location, "https://") {
		data, err = c.fetchHTTP(ctx)
	} else {
		data, err = os.ReadFile(c.location)
		if err != nil {
			err = fmt.Errorf("bootstrap: read %s: %w", c.location, err)
		}
	}
	if err != nil {
		return nil, err
	}

	if err := validateFeed(data); err != nil {
		return nil, err
	}

	var jobs []models.Job
	if err := json.Unmarshal(data, &jobs); err != nil {
		return nil, fmt.Errorf("bootstrap: decode feed: %w", err)
	}

	slog.Info("bootstrap feed loaded",
		slog.String("source", c.location),
		slog.String("size", humanize.Bytes(uint64(len(data)))),
		slog.Int("jobs", len(jobs)))
	return jobs, nil
}

func (c *Client) fetchHTTP(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.location, nil)
	if err != nil {
		return nil, fmt.Errorf("bootstrap: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("bootstrap: fetch %s: %w", c.location, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("bootstrap: fetch %s: status %d", c.location, resp.StatusCode)
	}

	body := resp.Body
	if c.progress && resp.ContentLength > 0 {
		bar := pb.Full.Start64(resp.ContentLength)
		defer bar.Finish()
		return readResponseBody(resp, bar.NewProxyReader(body))
	}
	return readResponseBody(resp, body)
}
