package arr

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"relocarr/internal/logging"
	"relocarr/internal/services"
)

const apiKeyHeader = "X-Api-Key"

// Options carries connection settings for a manager instance.
type Options struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
	// SkipTLSVerify accepts self-signed certificates on local HTTPS
	// deployments.
	SkipTLSVerify bool
}

// Client talks to one Radarr/Sonarr-style instance.
type Client struct {
	baseURL string
	apiKey  string
	client  *http.Client
	logger  *slog.Logger
}

// NewClient validates the options and builds a client. The logger may be nil.
func NewClient(opts Options, logger *slog.Logger) (*Client, error) {
	baseURL := strings.TrimRight(strings.TrimSpace(opts.BaseURL), "/")
	if baseURL == "" {
		return nil, services.Wrap(services.ErrConfiguration, "api", "client", "base URL must be set", nil)
	}
	apiKey := strings.TrimSpace(opts.APIKey)
	if apiKey == "" {
		return nil, services.Wrap(services.ErrConfiguration, "api", "client", "API key must be set", nil)
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	httpClient := &http.Client{Timeout: timeout}
	if opts.SkipTLSVerify {
		transport := http.DefaultTransport.(*http.Transport).Clone()
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
		httpClient.Transport = transport
	}

	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  httpClient,
		logger:  logging.NewComponentLogger(logger, "api"),
	}, nil
}

// BaseURL returns the configured API base.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Entries fetches the full catalog for the given entity type.
func (c *Client) Entries(ctx context.Context, entity Entity) ([]Entry, error) {
	var entries []Entry
	if err := c.get(ctx, "/"+entity.APIPath, &entries); err != nil {
		return nil, fmt.Errorf("fetch %s catalog: %w", entity.Kind, err)
	}
	c.logger.Debug("fetched catalog", logging.String(logging.FieldEntity, entity.Kind), logging.Int("count", len(entries)))
	return entries, nil
}

// Tags fetches all tags known to the instance.
func (c *Client) Tags(ctx context.Context) ([]Tag, error) {
	var tags []Tag
	if err := c.get(ctx, "/tag", &tags); err != nil {
		return nil, fmt.Errorf("fetch tags: %w", err)
	}
	return tags, nil
}

// RootFolders fetches all configured root folders.
func (c *Client) RootFolders(ctx context.Context) ([]RootFolder, error) {
	var folders []RootFolder
	if err := c.get(ctx, "/rootfolder", &folders); err != nil {
		return nil, fmt.Errorf("fetch root folders: %w", err)
	}
	return folders, nil
}

// Update submits a full replacement representation of the entry. With
// moveFiles set the manager relocates the underlying files on its own
// schedule; 202 means the move request was accepted, not that it completed.
func (c *Client) Update(ctx context.Context, entity Entity, entry *Entry, moveFiles bool) error {
	body, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("encode %s %d: %w", entity.Kind, entry.ID, err)
	}

	url := fmt.Sprintf("%s/%s/%d?moveFiles=%t", c.baseURL, entity.APIPath, entry.ID, moveFiles)
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build update request: %w", err)
	}
	req.Header.Set(apiKeyHeader, c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("update %s %d: %w", entity.Kind, entry.ID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusAccepted {
		return statusError(resp)
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set(apiKeyHeader, c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return statusError(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func statusError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
	return &StatusError{Code: resp.StatusCode, Body: strings.TrimSpace(string(body))}
}
