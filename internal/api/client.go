package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/cookiejar"
	"net/textproto"
	"os"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

// DefaultTimeout bounds every request unless the caller configures another
// value. Matches the mobile client's historical 8 seconds.
const DefaultTimeout = 8 * time.Second

const (
	csrfEndpoint = "/csrf/"
	csrfHeader   = "X-CSRFToken"
)

// Client is the shared backend transport. Safe for concurrent use.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *zap.Logger

	mu        sync.Mutex
	csrfToken string
}

// File describes one multipart file attachment.
type File struct {
	Field string // form field name
	Path  string // local filesystem path to read
	Name  string // filename presented to the backend
	Type  string // MIME type
}

// New creates a client for the given base URL. Session cookies are kept in
// an in-memory jar and sent on every request.
func New(baseURL string, timeout time.Duration, log *zap.Logger) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("cookie jar: %w", err)
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Jar: jar, Timeout: timeout},
		log:        log,
	}, nil
}

// Get performs a GET request and decodes the JSON response into out.
func (c *Client) Get(ctx context.Context, endpoint string, out any) error {
	return c.do(ctx, http.MethodGet, endpoint, nil, "", out)
}

// Post performs a JSON POST request.
func (c *Client) Post(ctx context.Context, endpoint string, body, out any) error {
	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}
	return c.do(ctx, http.MethodPost, endpoint, data, "application/json", out)
}

// Put performs a JSON PUT request.
func (c *Client) Put(ctx context.Context, endpoint string, body, out any) error {
	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}
	return c.do(ctx, http.MethodPut, endpoint, data, "application/json", out)
}

// Delete performs a DELETE request.
func (c *Client) Delete(ctx context.Context, endpoint string, out any) error {
	return c.do(ctx, http.MethodDelete, endpoint, nil, "", out)
}

// PostMultipart uploads one file plus optional form fields.
func (c *Client) PostMultipart(ctx context.Context, endpoint string, fields map[string]string, file File, out any) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			return fmt.Errorf("write field %s: %w", k, err)
		}
	}
	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition",
		fmt.Sprintf(`form-data; name=%q; filename=%q`, file.Field, file.Name))
	if file.Type != "" {
		header.Set("Content-Type", file.Type)
	}
	part, err := w.CreatePart(header)
	if err != nil {
		return fmt.Errorf("create part: %w", err)
	}
	f, err := os.Open(file.Path)
	if err != nil {
		return fmt.Errorf("open %s: %w", file.Path, err)
	}
	_, copyErr := io.Copy(part, f)
	f.Close()
	if copyErr != nil {
		return fmt.Errorf("read %s: %w", file.Path, copyErr)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("finish multipart: %w", err)
	}
	return c.do(ctx, http.MethodPost, endpoint, buf.Bytes(), w.FormDataContentType(), out)
}

// do runs one request, retrying exactly once with a fresh CSRF token when
// the backend flags a CSRF failure on a state-changing call.
func (c *Client) do(ctx context.Context, method, endpoint string, body []byte, contentType string, out any) error {
	retried := false
	for {
		req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, bytes.NewReader(body))
		if err != nil {
			return fmt.Errorf("build request: %w", err)
		}
		if contentType != "" {
			req.Header.Set("Content-Type", contentType)
		}
		if method != http.MethodGet {
			token, err := c.csrf(ctx)
			if err != nil {
				return fmt.Errorf("%s %s: csrf token: %w", method, endpoint, err)
			}
			req.Header.Set(csrfHeader, token)
		}

		c.log.Debug("request", zap.String("method", method), zap.String("endpoint", endpoint))
		resp, err := c.httpClient.Do(req)
		if err != nil {
			return fmt.Errorf("%s %s: %w", method, endpoint, err)
		}
		data, readErr := io.ReadAll(resp.Body)
		resp.Body.Close()
		if readErr != nil {
			return fmt.Errorf("%s %s: read response: %w", method, endpoint, readErr)
		}

		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			if out == nil || len(data) == 0 {
				return nil
			}
			if err := json.Unmarshal(data, out); err != nil {
				return fmt.Errorf("%s %s: decode response: %w", method, endpoint, err)
			}
			return nil
		}

		statusErr := newStatusError(resp.StatusCode, data)
		if statusErr.IsCSRF() && !retried && method != http.MethodGet {
			c.log.Info("csrf rejected, retrying with fresh token", zap.String("endpoint", endpoint))
			c.invalidateCSRF()
			retried = true
			continue
		}
		c.log.Warn("request failed",
			zap.String("method", method),
			zap.String("endpoint", endpoint),
			zap.Int("status", resp.StatusCode))
		return statusErr
	}
}

// csrf returns the cached token, fetching it from the dedicated endpoint
// when needed. The token may arrive in the JSON body or a response header.
func (c *Client) csrf(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.csrfToken != "" {
		return c.csrfToken, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+csrfEndpoint, nil)
	if err != nil {
		return "", fmt.Errorf("build csrf request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch csrf token: %w", err)
	}
	data, readErr := io.ReadAll(resp.Body)
	resp.Body.Close()
	if readErr != nil {
		return "", fmt.Errorf("read csrf response: %w", readErr)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", newStatusError(resp.StatusCode, data)
	}

	var payload struct {
		Token string `json:"csrfToken"`
	}
	_ = json.Unmarshal(data, &payload)
	token := payload.Token
	if token == "" {
		token = resp.Header.Get(csrfHeader)
	}
	if token == "" {
		return "", fmt.Errorf("csrf token missing in response")
	}
	c.csrfToken = token
	return token, nil
}

func (c *Client) invalidateCSRF() {
	c.mu.Lock()
	c.csrfToken = ""
	c.mu.Unlock()
}
