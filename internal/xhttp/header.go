package xhttp

import "net/http"

const (
	UserAgent   = "User-Agent"
	XRequestID  = "X-Request-ID"
	Location    = "Location"
	ContentType = "Content-Type"
	Accept      = "Accept"
)

const (
	applicationJSON = "application/json"
	formURLEncoded  = "application/x-www-form-urlencoded"
)

func SetRequestHeaderContentTypeForm(r *http.Request) {
	r.Header.Set(ContentType, formURLEncoded)
}

func SetRequestHeaderAcceptJSON(r *http.Request) {
	r.Header.Set(Accept, applicationJSON)
}

func GetRequestID(r *http.Request) string {
	return r.Header.Get(XRequestID)
}
