package siteclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/GregMSThompson/bank-closures/internal/errs"
)

const serviceName = "site"

// Client fetches JSON documents relative to the deployed site root.
type Client struct {
	http *http.Client
	base *url.URL
}

func NewClient(httpClient *http.Client, origin string) (*Client, error) {
	base, err := url.Parse(origin)
	if err != nil {
		return nil, fmt.Errorf("parse site origin: %w", err)
	}
	if !base.IsAbs() {
		return nil, fmt.Errorf("site origin %q is not absolute", origin)
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{http: httpClient, base: base}, nil
}

// GetJSON fetches path and decodes the body into out. Any status outside
// 2xx is a failure and out is left untouched.
func (c *Client) GetJSON(ctx context.Context, path string, out any) error {
	ref, err := url.Parse(path)
	if err != nil {
		return errs.NewValidationError(fmt.Sprintf("invalid resource path %q", path))
	}
	target := c.base.ResolveReference(ref)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target.String(), nil)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return errs.NewExternalServiceError(serviceName, 0, true, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return errs.NewExternalServiceError(serviceName, resp.StatusCode, errs.IsTransientStatus(resp.StatusCode),
			fmt.Errorf("GET %s", ref.Path))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return errs.NewExternalServiceError(serviceName, resp.StatusCode, true, err)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return errs.NewDecodeError(path, err)
	}
	return nil
}
