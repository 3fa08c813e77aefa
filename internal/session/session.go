package session

import (
	"context"
	"errors"
	"time"

	"github.com/garrettladley/miband/internal/client/huami"
)

var ErrNotFound = errors.New("no stored session, run `miband login` first")

// Session is the app token a login produced, kept so later commands can fetch
// data without asking for the password again.
type Session struct {
	AppToken    string    `json:"app_token"`
	UserID      string    `json:"user_id"`
	LoginToken  string    `json:"login_token,omitempty"`
	CountryCode string    `json:"country_code,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func New(s huami.Session, countryCode string, now time.Time) Session {
	return Session{
		AppToken:    s.AppToken,
		UserID:      s.UserID,
		LoginToken:  s.LoginToken,
		CountryCode: countryCode,
		CreatedAt:   now.UTC().Truncate(time.Second),
	}
}

func (s Session) Huami() huami.Session {
	return huami.Session{
		AppToken:   s.AppToken,
		UserID:     s.UserID,
		LoginToken: s.LoginToken,
	}
}

// Store holds at most one session.
type Store interface {
	Save(ctx context.Context, s Session) error

	// Load returns ErrNotFound when nothing has been saved.
	Load(ctx context.Context) (Session, error)

	Delete(ctx context.Context) error

	Close() error
}
