package xslog

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/garrettladley/miband/internal/version"
)

func Error(err error) slog.Attr {
	const errorKey = "error"
	return slog.String(errorKey, err.Error())
}

func RequestID(requestID string) slog.Attr {
	const requestIDKey = "request_id"
	return slog.String(requestIDKey, requestID)
}

func HTTPStatus(status int) slog.Attr {
	const statusKey = "status"
	return slog.Int(statusKey, status)
}

func Duration(duration time.Duration) slog.Attr {
	const durationKey = "duration"
	return slog.Duration(durationKey, duration)
}

func RequestMethod(r *http.Request) slog.Attr {
	const methodKey = "method"
	return slog.String(methodKey, r.Method)
}

func RequestHost(r *http.Request) slog.Attr {
	const hostKey = "host"
	return slog.String(hostKey, r.URL.Host)
}

func RequestPath(r *http.Request) slog.Attr {
	const pathKey = "path"
	return slog.String(pathKey, r.URL.Path)
}

func Version() slog.Attr {
	const versionKey = "version"
	return slog.String(versionKey, version.Get())
}

func Email(email string) slog.Attr {
	const emailKey = "email"
	return slog.String(emailKey, email)
}

func UserID(id string) slog.Attr {
	const userIDKey = "user_id"
	return slog.String(userIDKey, id)
}

func CountryCode(code string) slog.Attr {
	const countryCodeKey = "country_code"
	return slog.String(countryCodeKey, code)
}

func GrantType(grantType string) slog.Attr {
	const grantTypeKey = "grant_type"
	return slog.String(grantTypeKey, grantType)
}

func ErrorCode(code string) slog.Attr {
	const errorCodeKey = "error_code"
	return slog.String(errorCodeKey, code)
}

func Date(date string) slog.Attr {
	const dateKey = "date"
	return slog.String(dateKey, date)
}

func Category(key string) slog.Attr {
	const categoryKey = "category"
	return slog.String(categoryKey, key)
}

func Count(count int) slog.Attr {
	const countKey = "count"
	return slog.Int(countKey, count)
}

func Backend(name string) slog.Attr {
	const backendKey = "backend"
	return slog.String(backendKey, name)
}

func Command(name string) slog.Attr {
	const commandKey = "command"
	return slog.String(commandKey, name)
}
