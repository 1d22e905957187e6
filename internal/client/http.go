package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"calcpad/internal/domain"
)

// HTTP talks to the calcpad JSON API rooted at Base.
type HTTP struct {
	Base string
	HTTP *http.Client
}

// NewHTTP returns a client for base. A nil hc means http.DefaultClient.
func NewHTTP(base string, hc *http.Client) *HTTP {
	if hc == nil {
		hc = http.DefaultClient
	}
	return &HTTP{Base: strings.TrimRight(base, "/"), HTTP: hc}
}

type evaluateRequest struct {
	Expression string `json:"expression"`
}

type appendRequest struct {
	Expression string `json:"expression"`
	Value      string `json:"value"`
}

// Evaluate asks the server to evaluate expr.
func (c *HTTP) Evaluate(ctx context.Context, expr string) (domain.Display, error) {
	var out domain.Display
	err := c.post(ctx, "/api/evaluate", evaluateRequest{Expression: expr}, &out)
	return out, err
}

// Append asks the server to apply value to expr.
func (c *HTTP) Append(ctx context.Context, expr, value string) (domain.Display, error) {
	var out domain.Display
	err := c.post(ctx, "/api/append", appendRequest{Expression: expr, Value: value}, &out)
	return out, err
}

// Health checks that the server answers.
func (c *HTTP) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.Base+"/health", nil)
	if err != nil {
		return err
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	if resp.StatusCode/100 != 2 {
		return fmt.Errorf("calcpad %s %s: %s", req.Method, req.URL, resp.Status)
	}
	return nil
}

func (c *HTTP) post(ctx context.Context, path string, in, out any) error {
	buf := new(bytes.Buffer)
	if err := json.NewEncoder(buf).Encode(in); err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Base+path, buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return fmt.Errorf("calcpad %s %s: %s%s", req.Method, req.URL, resp.Status, errorDetail(resp.Body))
	}
	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

// errorDetail pulls the {"error": ...} message out of a failed response.
func errorDetail(r io.Reader) string {
	var body struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(io.LimitReader(r, 4096)).Decode(&body); err != nil || body.Error == "" {
		return ""
	}
	return " (" + body.Error + ")"
}

var _ domain.RemoteEvaluator = (*HTTP)(nil)
