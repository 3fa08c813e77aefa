package huami

import "context"

// RedeemCode exchanges an OAuth code from a manual Xiaomi account login for an
// app token. The full response is returned so it can be shown to the user.
func (c *Client) RedeemCode(ctx context.Context, code string) (*LoginResult, error) {
	result, err := c.Login(ctx, RequestTokenGrant(code, c.countryCode, c.lang))
	if err != nil {
		return nil, err
	}
	if err := result.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
