// Package wmsapi is a client for the WMS REST backend. Every resource family
// lives under /api/wms/<name> and answers with the {code, msg, data} or
// {code, msg, total, rows} envelopes.
package wmsapi

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"

	"github.com/wmsconsole/wms-console/internal/config"
	"github.com/wmsconsole/wms-console/internal/domain"
)

const (
	apiPrefix       = "/api/wms"
	requestIDHeader = "X-Request-Id"
	clientIDHeader  = "clientid"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Client talks to the WMS backend. It is safe for concurrent use.
type Client struct {
	http   *resty.Client
	logger *zap.Logger
}

// New builds a client from the API configuration. A nil logger disables
// logging.
func New(cfg config.APIConfig, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = config.DefaultTimeout
	}

	r := resty.New().
		SetBaseURL(strings.TrimSuffix(cfg.BaseURL, "/")).
		SetHeader("Accept", "application/json").
		SetTimeout(timeout).
		SetJSONMarshaler(json.Marshal).
		SetJSONUnmarshaler(json.Unmarshal)
	if cfg.Token != "" {
		r.SetAuthToken(cfg.Token)
	}
	if cfg.ClientID != "" {
		r.SetHeader(clientIDHeader, cfg.ClientID)
	}
	if cfg.RetryCount > 0 {
		r.SetRetryCount(cfg.RetryCount).
			SetRetryWaitTime(200 * time.Millisecond).
			AddRetryCondition(retryable)
	}

	c := &Client{http: r, logger: logger}
	r.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
		c.logger.Debug("wms api call",
			zap.String("method", resp.Request.Method),
			zap.String("url", resp.Request.URL),
			zap.Int("status", resp.StatusCode()),
			zap.String("request_id", resp.Request.Header.Get(requestIDHeader)),
			zap.Duration("elapsed", resp.Time()),
		)
		return nil
	})
	return c
}

// retryable resends idempotent calls only. A POST (add, export and the order
// actions) may already be committed when a gateway answers 5xx or the
// timeout fires.
func retryable(resp *resty.Response, err error) bool {
	if resp == nil || resp.Request == nil {
		return false
	}
	switch resp.Request.Method {
	case http.MethodGet, http.MethodHead, http.MethodPut, http.MethodDelete:
	default:
		return false
	}
	return err != nil || resp.StatusCode() >= http.StatusInternalServerError
}

func (c *Client) request(ctx context.Context) *resty.Request {
	return c.http.R().
		SetContext(ctx).
		SetHeader(requestIDHeader, uuid.NewString())
}

// call sends one request and decodes the envelope into out. The envelope
// code is checked as well as the HTTP status.
func (c *Client) call(ctx context.Context, op, method, path string, query map[string]string, body any, out domain.Envelope) error {
	errBody := new(domain.Result)
	req := c.request(ctx).
		SetResult(out).
		SetError(errBody)
	if len(query) > 0 {
		req.SetQueryParams(query)
	}
	if body != nil {
		req.SetBody(body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if resp.StatusCode() >= http.StatusBadRequest {
		apiErr := &APIError{Op: op, Status: resp.StatusCode(), Code: errBody.Code, Msg: errBody.Msg}
		c.logger.Warn("wms api error", zap.String("op", op), zap.Error(apiErr))
		return apiErr
	}
	if st := out.Status(); !st.Success() {
		apiErr := &APIError{Op: op, Status: resp.StatusCode(), Code: st.Code, Msg: st.Msg}
		c.logger.Warn("wms api rejected call", zap.String("op", op), zap.Error(apiErr))
		return apiErr
	}
	return nil
}

func resourcePath(name string, parts ...string) string {
	var b strings.Builder
	b.WriteString(apiPrefix)
	b.WriteByte('/')
	b.WriteString(name)
	for _, p := range parts {
		b.WriteByte('/')
		b.WriteString(p)
	}
	return b.String()
}
