// Package uploads relays multipart image files to the external image host.
// The host assigns each upload a served URL; we assign the folder and a
// public id derived from the upload time and the original filename stem.
package uploads

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"
	"time"
)

type Image struct {
	URL      string `bson:"url" json:"url"`
	PublicID string `bson:"public_id" json:"public_id"`
}

type Uploader interface {
	Upload(ctx context.Context, filename string, file io.Reader) (Image, error)
	Destroy(ctx context.Context, publicID string) error
}

type Client struct {
	endpoint   string
	apiKey     string
	folder     string
	httpClient *http.Client
	now        func() time.Time
}

// NewClient returns nil when the image host is not configured; callers treat
// a nil client as "uploads disabled".
func NewClient(endpoint, apiKey, folder string) *Client {
	if strings.TrimSpace(endpoint) == "" || strings.TrimSpace(apiKey) == "" {
		return nil
	}
	if strings.TrimSpace(folder) == "" {
		folder = "uploads"
	}
	return &Client{
		endpoint:   strings.TrimRight(endpoint, "/"),
		apiKey:     apiKey,
		folder:     folder,
		httpClient: &http.Client{Timeout: 15 * time.Second},
		now:        time.Now,
	}
}

// PublicID derives the stored identifier for an upload: the configured
// folder plus a timestamp and the original filename stem.
func (c *Client) PublicID(filename string, at time.Time) string {
	stem := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	// filepath.Base turns an empty name into ".", which must not leak into
	// the public id.
	stem = strings.Trim(stem, ". ")
	if stem == "" {
		stem = "image"
	}
	return fmt.Sprintf("%s/%d-%s", c.folder, at.Unix(), stem)
}

func (c *Client) Upload(ctx context.Context, filename string, file io.Reader) (Image, error) {
	if c == nil {
		return Image{}, errors.New("image host not configured")
	}

	publicID := c.PublicID(filename, c.now())

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	if err := mw.WriteField("folder", c.folder); err != nil {
		return Image{}, fmt.Errorf("image host build request: %w", err)
	}
	if err := mw.WriteField("public_id", publicID); err != nil {
		return Image{}, fmt.Errorf("image host build request: %w", err)
	}
	part, err := mw.CreateFormFile("file", filepath.Base(filename))
	if err != nil {
		return Image{}, fmt.Errorf("image host build request: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return Image{}, fmt.Errorf("image host read file: %w", err)
	}
	if err := mw.Close(); err != nil {
		return Image{}, fmt.Errorf("image host build request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+"/upload", &body)
	if err != nil {
		return Image{}, fmt.Errorf("image host create request: %w", err)
	}
	req.Header.Set("accept", "application/json")
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Image{}, fmt.Errorf("image host request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return Image{}, fmt.Errorf("image host upload failed: status=%d body=%s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	var out uploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return Image{}, fmt.Errorf("image host decode response: %w", err)
	}
	if strings.TrimSpace(out.SecureURL) == "" {
		return Image{}, errors.New("image host response missing url")
	}

	return Image{URL: out.SecureURL, PublicID: publicID}, nil
}

func (c *Client) Destroy(ctx context.Context, publicID string) error {
	if c == nil {
		return errors.New("image host not configured")
	}
	if strings.TrimSpace(publicID) == "" {
		return errors.New("missing public id")
	}

	payload, err := json.Marshal(map[string]string{"public_id": publicID})
	if err != nil {
		return fmt.Errorf("image host marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+"/destroy", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("image host create request: %w", err)
	}
	req.Header.Set("accept", "application/json")
	req.Header.Set("content-type", "application/json")
	req.Header.Set("api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("image host request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("image host destroy failed: status=%d body=%s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}
	return nil
}

type uploadResponse struct {
	SecureURL string `json:"secure_url"`
	PublicID  string `json:"public_id"`
	Format    string `json:"format"`
}
