// Package api is the HTTP client for the summarization backend.
//
// Every call returns a models.ApiResult. Transport failures and undecodable
// bodies are folded into a failed result carrying a fixed connectivity
// message, so callers never see a Go error. The HTTP status code is ignored:
// whatever JSON the backend sends is taken as the result.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"time"

	"github.com/dtnitsch/summarizer/models"
	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	signupPath    = "/signup"
	loginPath     = "/login"
	summarizePath = "/summarize"

	requestIDHeader = "X-Request-ID"
)

// Client calls the signup, login and summarize endpoints under a base URL.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient uses a copy of hc for requests, so later options never
// modify the caller's client. A nil hc is ignored.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc == nil {
			return
		}
		cp := *hc
		c.httpClient = &cp
	}
}

// WithTimeout sets the per-request timeout of the client's own http.Client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithLogger sets the logger for request failures and timings. A nil
// logger is ignored.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewClient creates a client for the backend rooted at baseURL,
// e.g. "http://127.0.0.1:5000/api".
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: models.DefaultTimeout,
		},
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the endpoint root the client posts to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

type signupBody struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginBody struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Signup registers a new account.
func (c *Client) Signup(ctx context.Context, username, email, password string) models.ApiResult {
	body := signupBody{Username: username, Email: email, Password: password}
	return c.postJSON(ctx, signupPath, body, models.MsgConnectFailed)
}

// Login checks credentials against the backend.
func (c *Client) Login(ctx context.Context, email, password string) models.ApiResult {
	body := loginBody{Email: email, Password: password}
	return c.postJSON(ctx, loginPath, body, models.MsgConnectFailed)
}

// Summarize submits the form as multipart data. Exactly one of file or text
// is sent, the file taking precedence.
func (c *Client) Summarize(ctx context.Context, req models.SummaryRequest) models.ApiResult {
	body, contentType, err := BuildSummaryBody(req)
	if err != nil {
		c.logger.Error("Summarization API error", zap.Error(err))
		return models.NewConnectFailure(models.MsgBackendConnectFailed)
	}
	return c.post(ctx, summarizePath, contentType, body, models.MsgBackendConnectFailed)
}

func (c *Client) postJSON(ctx context.Context, path string, payload any, failMsg string) models.ApiResult {
	body, err := json.Marshal(payload)
	if err != nil {
		c.logger.Error("marshaling request", zap.String("path", path), zap.Error(err))
		return models.NewConnectFailure(failMsg)
	}
	return c.post(ctx, path, "application/json", bytes.NewReader(body), failMsg)
}

func (c *Client) post(ctx context.Context, path, contentType string, body io.Reader, failMsg string) models.ApiResult {
	requestID := uuid.NewString()
	logger := c.logger.With(zap.String("path", path), zap.String("request_id", requestID))

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, body)
	if err != nil {
		logger.Error("creating request", zap.Error(err))
		return models.NewConnectFailure(failMsg)
	}
	httpReq.Header.Set("Content-Type", contentType)
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set(requestIDHeader, requestID)

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		logger.Error("sending request", zap.Error(err))
		return models.NewConnectFailure(failMsg)
	}
	defer resp.Body.Close()

	var result models.ApiResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		logger.Error("decoding response", zap.Int("status", resp.StatusCode), zap.Error(err))
		return models.NewConnectFailure(failMsg)
	}

	logger.Debug("response received",
		zap.Int("status", resp.StatusCode),
		zap.Bool("success", result.Success),
		zap.Duration("elapsed", time.Since(start)))
	return result
}

// BuildSummaryBody encodes req as a multipart form and returns the body and
// its Content-Type (including the boundary).
func BuildSummaryBody(req models.SummaryRequest) (*bytes.Buffer, string, error) {
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)

	switch {
	case req.File != nil:
		if err := writeFilePart(w, req.File); err != nil {
			return nil, "", err
		}
	case req.Text != "":
		if err := w.WriteField("text", req.Text); err != nil {
			return nil, "", fmt.Errorf("writing text field: %w", err)
		}
	}

	fields := []struct{ name, value string }{
		{"format", string(req.Format)},
		{"language", req.Language},
		{"length", req.Length.String()},
	}
	for _, f := range fields {
		if err := w.WriteField(f.name, f.value); err != nil {
			return nil, "", fmt.Errorf("writing %s field: %w", f.name, err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("closing multipart body: %w", err)
	}
	return buf, w.FormDataContentType(), nil
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func writeFilePart(w *multipart.Writer, file *models.FileInput) error {
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, quoteEscaper.Replace(file.Name)))
	h.Set("Content-Type", mimetype.Detect(file.Content).String())

	part, err := w.CreatePart(h)
	if err != nil {
		return fmt.Errorf("creating file part: %w", err)
	}
	if _, err := part.Write(file.Content); err != nil {
		return fmt.Errorf("writing file part: %w", err)
	}
	return nil
}
