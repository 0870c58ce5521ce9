// Package kaggle downloads dataset archives from the Kaggle v1 API.
//
// Credentials are an external collaborator: the client only locates them
// (environment variables or ~/.kaggle/kaggle.json) and passes them through
// as HTTP basic auth, mirroring the official API client's behavior.
package kaggle

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/datakit-labs/corpusload/internal/archive"
)

// DefaultBaseURL is the Kaggle API endpoint.
const DefaultBaseURL = "https://www.kaggle.com"

// ErrCredentials indicates that no Kaggle API credentials could be located.
var ErrCredentials = errors.New("kaggle credentials not found")

// ClientConfig holds HTTP client configuration.
type ClientConfig struct {
	BaseURL    string
	Timeout    time.Duration
	MaxRetries int
	UserAgent  string
}

// DefaultConfig returns the default client configuration.
func DefaultConfig() ClientConfig {
	return ClientConfig{
		BaseURL:    DefaultBaseURL,
		Timeout:    10 * time.Minute,
		MaxRetries: 3,
		UserAgent:  "corpusload/1.0",
	}
}

// Client downloads and extracts Kaggle datasets.
type Client struct {
	client *http.Client
	config ClientConfig
	creds  Credentials
	logger *slog.Logger
}

// NewClient creates a Client. A nil logger discards diagnostics.
func NewClient(config ClientConfig, creds Credentials, logger *slog.Logger) *Client {
	if config.BaseURL == "" {
		config.BaseURL = DefaultBaseURL
	}
	if config.Timeout == 0 {
		config.Timeout = 10 * time.Minute
	}
	if config.UserAgent == "" {
		config.UserAgent = "corpusload/1.0"
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Client{
		client: &http.Client{Timeout: config.Timeout},
		config: config,
		creds:  creds,
		logger: logger,
	}
}

// ProgressFunc observes download progress. total is -1 when the server does
// not announce a content length.
type ProgressFunc func(read, total int64)

// DownloadDataset downloads the dataset archive ("owner/slug") to destDir
// and extracts it in place. destDir is created if absent. Any failure from
// the remote call propagates; there is no partial-success handling.
func (c *Client) DownloadDataset(ctx context.Context, dataset, destDir string, onProgress ProgressFunc) error {
	if err := ValidateDatasetRef(dataset); err != nil {
		return err
	}
	if err := os.MkdirAll(destDir, 0o750); err != nil {
		return fmt.Errorf("create destination %s: %w", destDir, err)
	}

	url := fmt.Sprintf("%s/api/v1/datasets/download/%s", c.config.BaseURL, dataset)
	c.logger.Info("downloading dataset", "dataset", dataset, "dest", destDir)

	resp, err := c.get(ctx, url)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return fmt.Errorf("dataset %s: access denied (HTTP %d), check your Kaggle credentials", dataset, resp.StatusCode)
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("dataset %s not found (HTTP 404)", dataset)
	default:
		return fmt.Errorf("dataset %s: unexpected status HTTP %d", dataset, resp.StatusCode)
	}

	tmp, err := os.CreateTemp(destDir, ".corpusload-*.zip")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	body := io.Reader(resp.Body)
	if onProgress != nil {
		body = &progressReader{r: resp.Body, total: resp.ContentLength, fn: onProgress}
	}
	if _, err := io.Copy(tmp, body); err != nil {
		tmp.Close()
		return fmt.Errorf("download %s: %w", dataset, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write archive: %w", err)
	}

	c.logger.Info("extracting archive", "dataset", dataset, "dest", destDir)
	if err := archive.Unzip(tmpName, destDir); err != nil {
		return fmt.Errorf("extract %s: %w", dataset, err)
	}

	return nil
}

// get executes the request with basic auth and a bounded retry loop.
// Server errors and transport failures are retried with linear backoff;
// client errors are not.
func (c *Client) get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", c.config.UserAgent)
	req.SetBasicAuth(c.creds.Username, c.creds.Key)

	var resp *http.Response
	var lastErr error

	for attempt := 0; attempt <= c.config.MaxRetries; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(attempt) * time.Second
			c.logger.Debug("retrying download", "attempt", attempt, "backoff", backoff)
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		resp, lastErr = c.client.Do(req)
		if lastErr == nil && resp.StatusCode < 500 {
			return resp, nil
		}
		if resp != nil {
			resp.Body.Close()
		}
	}

	if lastErr != nil {
		return nil, fmt.Errorf("request failed after %d attempts: %w", c.config.MaxRetries+1, lastErr)
	}
	return nil, fmt.Errorf("request failed after %d attempts: HTTP %d", c.config.MaxRetries+1, resp.StatusCode)
}

// ValidateDatasetRef checks the "owner/slug" dataset reference format.
func ValidateDatasetRef(dataset string) error {
	owner, slug, ok := strings.Cut(dataset, "/")
	if !ok || owner == "" || slug == "" || strings.Contains(slug, "/") {
		return fmt.Errorf("invalid dataset reference %q, expected \"owner/slug\"", dataset)
	}
	return nil
}

// progressReader reports cumulative bytes read to a ProgressFunc.
type progressReader struct {
	r     io.Reader
	read  int64
	total int64
	fn    ProgressFunc
}

func (p *progressReader) Read(b []byte) (int, error) {
	n, err := p.r.Read(b)
	if n > 0 {
		p.read += int64(n)
		p.fn(p.read, p.total)
	}
	return n, err
}

// credentialsFile is the fallback location used by the official client.
func credentialsFile() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".kaggle", "kaggle.json"), nil
}
