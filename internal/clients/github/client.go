package github

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/brightpixel/studio-api/internal/entity"
	"github.com/brightpixel/studio-api/pkg/config"
	"github.com/brightpixel/studio-api/pkg/transport"
)

const timeout = 30 * time.Second

const defaultBaseURL = "https://api.github.com"

// Client commits files through the GitHub REST contents API.
type Client struct {
	cfg     config.GitHub
	baseURL string
	c       *http.Client
}

func NewClient(cfg config.GitHub) *Client {
	return &Client{
		cfg:     cfg,
		baseURL: defaultBaseURL,
		c: &http.Client{
			Timeout:   timeout,
			Transport: transport.NewLoggingRoundTripper(http.DefaultTransport),
		},
	}
}

// NewClientWithBaseURL points the client at a non-default API host. Used by
// tests.
func NewClientWithBaseURL(cfg config.GitHub, baseURL string) *Client {
	c := NewClient(cfg)
	c.baseURL = baseURL

	return c
}

type putContentsRequest struct {
	Message string `json:"message"`
	Content string `json:"content"` // base64
	Branch  string `json:"branch,omitempty"`
	SHA     string `json:"sha,omitempty"`
}

type putContentsResponse struct {
	Content *struct {
		SHA         string `json:"sha"`
		DownloadURL string `json:"download_url"`
	} `json:"content"`
	Message string `json:"message"`
}

// PutFile creates or updates path on the configured branch with the given
// base64 content and returns the durable download URL plus the blob hash.
// When the API does not echo a download URL back, the raw-content URL is
// constructed instead.
func (c *Client) PutFile(ctx context.Context, path, contentB64, commitMessage string) (entity.UploadResult, error) {
	if c.cfg.Token == "" || c.cfg.Repo == "" {
		return entity.UploadResult{}, fmt.Errorf("github token or repo: %w", entity.ErrNotConfigured)
	}

	reqData := putContentsRequest{
		Message: commitMessage,
		Content: contentB64,
		Branch:  c.cfg.Branch,
	}

	b, err := json.Marshal(reqData)
	if err != nil {
		return entity.UploadResult{}, fmt.Errorf("marshal request: %w", err)
	}

	reqURL := fmt.Sprintf("%s/repos/%s/contents/%s", c.baseURL, c.cfg.Repo, path)

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, reqURL, bytes.NewReader(b))
	if err != nil {
		return entity.UploadResult{}, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.Token)

	resp, err := c.c.Do(req)
	if err != nil {
		return entity.UploadResult{}, fmt.Errorf("do request: %w", err)
	}

	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return entity.UploadResult{}, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		return entity.UploadResult{}, fmt.Errorf("bad response status %d:\n%s", resp.StatusCode, body)
	}

	var respData putContentsResponse

	err = json.Unmarshal(body, &respData)
	if err != nil {
		return entity.UploadResult{}, fmt.Errorf("unmarshal response: %w", err)
	}

	result := entity.UploadResult{
		DownloadURL: c.rawURL(path),
	}

	if respData.Content != nil {
		result.SHA = respData.Content.SHA

		if respData.Content.DownloadURL != "" {
			result.DownloadURL = respData.Content.DownloadURL
		}
	}

	return result, nil
}

func (c *Client) rawURL(path string) string {
	return fmt.Sprintf("https://raw.githubusercontent.com/%s/%s/%s", c.cfg.Repo, c.cfg.Branch, path)
}
