package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"libprime/internal/domain"
)

// HTTP is a domain.Oracle backed by a primed server.
type HTTP struct {
	Base string
	HTTP *http.Client
}

// NewHTTP returns a client for base using httpClient, or
// http.DefaultClient when httpClient is nil.
func NewHTTP(base string, httpClient *http.Client) *HTTP {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &HTTP{Base: base, HTTP: httpClient}
}

// IsPrime asks the server about n.
func (c *HTTP) IsPrime(ctx context.Context, n int32) (bool, error) {
	var out domain.Verdict
	if err := c.getJSON(ctx, "/prime/"+strconv.FormatInt(int64(n), 10), &out); err != nil {
		return false, err
	}
	if out.N != n {
		return false, fmt.Errorf("remote answered for %d, asked %d", out.N, n)
	}
	return out.Prime, nil
}

func (c *HTTP) getJSON(ctx context.Context, path string, out any) error {
	u := c.Base + path
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return fmt.Errorf("remote %s %s: %s", req.Method, u, resp.Status)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

var _ domain.Oracle = (*HTTP)(nil)
