package huami

import (
	"bytes"
	"fmt"

	go_json "github.com/goccy/go-json"
)

// ID is a value the API sends either as a JSON string or a JSON number.
type ID string

func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := go_json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n go_json.Number
	if err := go_json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("id must be a string or number: %w", err)
	}
	*id = ID(n.String())
	return nil
}

func (id ID) String() string { return string(id) }

type TokenInfo struct {
	LoginToken string `json:"login_token"`
	AppToken   string `json:"app_token"`
	UserID     ID     `json:"user_id"`
	TTL        int64  `json:"ttl"`
	AppTTL     int64  `json:"app_ttl"`
}

// LoginResult is the parsed login response. Raw holds the full document so
// callers can print it; the typed fields cover what miband dereferences.
type LoginResult struct {
	TokenInfo *TokenInfo     `json:"token_info"`
	ErrorCode ID             `json:"error_code"`
	Raw       map[string]any `json:"-"`
}

// Err maps a provider error_code to an error, or returns nil when there is none.
func (r *LoginResult) Err() error {
	return errorFromCode(string(r.ErrorCode))
}

// Session extracts the app token and user id, failing when either is absent.
func (r *LoginResult) Session() (Session, error) {
	if r.TokenInfo == nil || r.TokenInfo.AppToken == "" || r.TokenInfo.UserID == "" {
		return Session{}, ErrMissingTokenInfo
	}
	return Session{
		AppToken:   r.TokenInfo.AppToken,
		UserID:     string(r.TokenInfo.UserID),
		LoginToken: r.TokenInfo.LoginToken,
	}, nil
}

// Session is the bearer credential threaded from login to the data fetch.
type Session struct {
	AppToken   string
	UserID     string
	LoginToken string
}

// DateRange bounds a band data query; dates are YYYY-MM-DD.
type DateRange struct {
	From string
	To   string
}

// DefaultDateRange is the fixed range the login command fetches.
var DefaultDateRange = DateRange{From: "2019-01-01", To: "2019-12-31"}

// DayRecord is one entry of the band data response. Summary is base64 encoded JSON.
type DayRecord struct {
	DateTime string `json:"date_time"`
	Summary  string `json:"summary"`
	UserID   ID     `json:"uid"`
}

// Data is a pointer so a body without the data key can be told apart from an
// empty range.
type bandDataResponse struct {
	Code    int          `json:"code"`
	Message string       `json:"message"`
	Data    *[]DayRecord `json:"data"`
}
