package huami

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	go_json "github.com/goccy/go-json"
)

var (
	ErrMissingAccessToken = errors.New("no access token in response")
	ErrMissingCountryCode = errors.New("no country_code in response")
	ErrMissingTokenInfo   = errors.New("no token_info in response")
	ErrInvalidCode        = errors.New("the code is invalid or was already used")
	ErrMissingData        = errors.New("no data in band data response")
)

// ErrorCodeInvalidCode is returned by the login endpoint for a stale or reused OAuth code.
const ErrorCodeInvalidCode = "0106"

type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("huami api: %d %s", e.StatusCode, e.Message)
}

// ProviderError is an error_code in a login response that has no dedicated mapping.
type ProviderError struct {
	Code string
}

func (e *ProviderError) Error() string {
	return "failed with error code " + e.Code
}

func errorFromCode(code string) error {
	switch code {
	case "":
		return nil
	case ErrorCodeInvalidCode:
		return ErrInvalidCode
	default:
		return &ProviderError{Code: code}
	}
}

func parseAPIError(resp *http.Response) error {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    resp.Status,
		}
	}

	var errResp struct {
		Message   string `json:"message"`
		Error     string `json:"error"`
		ErrorCode ID     `json:"error_code"`
	}

	if err := go_json.Unmarshal(body, &errResp); err != nil {
		msg := string(body)
		if msg == "" {
			msg = resp.Status
		}
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    msg,
		}
	}

	msg := errResp.Message
	if msg == "" {
		msg = errResp.Error
	}
	if msg == "" && errResp.ErrorCode != "" {
		msg = "error code " + string(errResp.ErrorCode)
	}
	if msg == "" {
		msg = resp.Status
	}

	return &APIError{
		StatusCode: resp.StatusCode,
		Message:    msg,
	}
}
