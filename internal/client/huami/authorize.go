package huami

import (
	"golang.org/x/oauth2"
)

var xiaomiScopes = []string{"1", "6000", "16001", "20000"}

type AuthorizeConfig struct {
	AuthorizeURL string
	ClientID     string
	RedirectURL  string
	Locale       string
}

// AuthorizeURL is the Xiaomi login page whose redirect carries the code RedeemCode expects.
func AuthorizeURL(cfg AuthorizeConfig) string {
	oc := &oauth2.Config{
		ClientID:    cfg.ClientID,
		RedirectURL: cfg.RedirectURL,
		Scopes:      xiaomiScopes,
		Endpoint: oauth2.Endpoint{
			AuthURL: cfg.AuthorizeURL,
		},
	}
	return oc.AuthCodeURL("",
		oauth2.SetAuthURLParam("skip_confirm", "false"),
		oauth2.SetAuthURLParam("pt", "1"),
		oauth2.SetAuthURLParam("_locale", cfg.Locale),
	)
}
