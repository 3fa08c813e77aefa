package huami

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	go_json "github.com/goccy/go-json"

	"github.com/garrettladley/miband/internal/xslog"
)

// Login posts the grant to the account login endpoint and returns the parsed
// response. The response shape is not validated; see LoginResult.Err and
// LoginResult.Session.
func (c *Client) Login(ctx context.Context, grant Grant) (*LoginResult, error) {
	const route = "/v2/client/login"

	c.log(ctx).DebugContext(ctx, "exchanging grant", xslog.GrantType(grant.Type))

	resp, err := c.postForm(ctx, c.accountURL+route, grant.values())
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	result, err := parseLoginResult(body)
	if resp.StatusCode >= http.StatusBadRequest && (err != nil || result.ErrorCode == "") {
		resp.Body = io.NopCloser(bytes.NewReader(body))
		return nil, parseAPIError(resp)
	}
	if err != nil {
		return nil, err
	}

	if result.ErrorCode != "" {
		c.log(ctx).WarnContext(ctx, "login rejected", xslog.ErrorCode(string(result.ErrorCode)))
	}
	return result, nil
}

func parseLoginResult(body []byte) (*LoginResult, error) {
	var result LoginResult
	if err := go_json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("decoding login response: %w\nbody: %s", err, string(body))
	}
	if err := go_json.Unmarshal(body, &result.Raw); err != nil {
		return nil, fmt.Errorf("decoding login response: %w", err)
	}
	return &result, nil
}
