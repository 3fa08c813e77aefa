package huami

import "net/url"

const (
	GrantTypeAccessToken  = "access_token"
	GrantTypeRequestToken = "request_token"
)

const (
	appName     = "com.xiaomi.hm.health"
	appVersion  = "4.0.9"
	appSource   = "com.xiaomi.hm.health:4.0.9:8046"
	deviceID    = "02:00:00:00:00:00"
	deviceModel = "android_phone"
	domains     = "account.huami.com,api-user.huami.com,api-watch.huami.com,api-analytics.huami.com,app-analytics.huami.com,api-mifit.huami.com"

	thirdNameHuami  = "huami"
	thirdNameXiaomi = "xiaomi-hm-mifit"
)

// Grant is the form payload that selects which exchange the login endpoint performs.
type Grant struct {
	Type        string
	Code        string
	CountryCode string
	ThirdName   string
	Source      string
	Lang        string
}

// AccessTokenGrant exchanges the access code returned by the email/password registration endpoint.
func AccessTokenGrant(code, countryCode string) Grant {
	return Grant{
		Type:        GrantTypeAccessToken,
		Code:        code,
		CountryCode: countryCode,
		ThirdName:   thirdNameHuami,
	}
}

// RequestTokenGrant exchanges an OAuth code obtained by logging in to a Xiaomi account.
func RequestTokenGrant(code, countryCode, lang string) Grant {
	return Grant{
		Type:        GrantTypeRequestToken,
		Code:        code,
		CountryCode: countryCode,
		ThirdName:   thirdNameXiaomi,
		Source:      appSource,
		Lang:        lang,
	}
}

func clientMetadata() url.Values {
	return url.Values{
		"app_name":           {appName},
		"dn":                 {domains},
		"device_id":          {deviceID},
		"device_model":       {deviceModel},
		"app_version":        {appVersion},
		"allow_registration": {"false"},
	}
}

// values merges the fixed client metadata with the grant fields.
func (g Grant) values() url.Values {
	v := clientMetadata()
	v.Set("grant_type", g.Type)
	v.Set("code", g.Code)
	v.Set("country_code", g.CountryCode)
	v.Set("third_name", g.ThirdName)
	if g.Source != "" {
		v.Set("source", g.Source)
	}
	if g.Lang != "" {
		v.Set("lang", g.Lang)
	}
	return v
}
