package huami

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/garrettladley/miband/internal/xhttp"
	"github.com/garrettladley/miband/internal/xslog"
)

const (
	registrationClientID    = "HuaMi"
	registrationRedirectURI = "https://s3-us-west-2.amazonws.com/hm-registration/successsignin.html"
)

// Authenticate posts the credentials to the registration endpoint and reads the
// access code and country code from the redirect it answers with.
func (c *Client) Authenticate(ctx context.Context, email, password string) (Grant, error) {
	u := c.identityURL + "/registrations/" + escapeEmail(email) + "/tokens"
	form := url.Values{
		"state":        {"REDIRECTION"},
		"client_id":    {registrationClientID},
		"redirect_uri": {registrationRedirectURI},
		"token":        {"access"},
		"password":     {password},
	}

	c.log(ctx).InfoContext(ctx, "authenticating", xslog.Email(email))

	resp, err := c.postForm(ctx, u, form)
	if err != nil {
		return Grant{}, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= http.StatusBadRequest {
		return Grant{}, parseAPIError(resp)
	}

	return grantFromRedirect(resp.Header.Get(xhttp.Location))
}

// escapeEmail percent-encodes every byte outside A-Z a-z 0-9 and "-._~",
// so "@" and "+" go out as %40 and %2B.
func escapeEmail(email string) string {
	const hex = "0123456789ABCDEF"

	var b strings.Builder
	b.Grow(len(email) * 3)
	for i := 0; i < len(email); i++ {
		c := email[i]
		switch {
		case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9',
			c == '-', c == '.', c == '_', c == '~':
			b.WriteByte(c)
		default:
			b.WriteByte('%')
			b.WriteByte(hex[c>>4])
			b.WriteByte(hex[c&0x0F])
		}
	}
	return b.String()
}

func grantFromRedirect(location string) (Grant, error) {
	redirect, err := url.Parse(location)
	if err != nil {
		return Grant{}, fmt.Errorf("parsing redirect location: %w", err)
	}
	query := redirect.Query()

	access := query.Get("access")
	if access == "" {
		return Grant{}, ErrMissingAccessToken
	}
	countryCode := query.Get("country_code")
	if countryCode == "" {
		return Grant{}, ErrMissingCountryCode
	}

	return AccessTokenGrant(access, countryCode), nil
}

// LoginWithPassword runs Authenticate and exchanges the resulting grant for a session.
func (c *Client) LoginWithPassword(ctx context.Context, email, password string) (Session, error) {
	grant, err := c.Authenticate(ctx, email, password)
	if err != nil {
		return Session{}, err
	}

	c.log(ctx).InfoContext(ctx, "obtained access token", xslog.CountryCode(grant.CountryCode))

	result, err := c.Login(ctx, grant)
	if err != nil {
		return Session{}, err
	}
	if err := result.Err(); err != nil {
		return Session{}, err
	}
	return result.Session()
}
