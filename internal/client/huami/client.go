package huami

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	go_json "github.com/goccy/go-json"

	"github.com/garrettladley/miband/internal/xhttp"
	"github.com/garrettladley/miband/internal/xslog"
)

const (
	defaultIdentityURL = "https://api-user.huami.com"
	defaultAccountURL  = "https://account.huami.com"
	defaultDataURL     = "https://api-mifit.huami.com"
	defaultCountryCode = "DE"
	defaultLang        = "de"
)

// Client talks to the Huami identity, account and data endpoints.
// Every call is a single blocking request; nothing is retried.
type Client struct {
	identityURL string
	accountURL  string
	dataURL     string
	countryCode string
	lang        string

	httpClient *http.Client
	logger     *slog.Logger
}

func New(opts ...Option) *Client {
	cfg := &clientConfig{
		identityURL: defaultIdentityURL,
		accountURL:  defaultAccountURL,
		dataURL:     defaultDataURL,
		countryCode: defaultCountryCode,
		lang:        defaultLang,
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	httpOpts := []xhttp.ClientOption{
		xhttp.WithoutRedirects(),
		xhttp.WithTimeout(cfg.timeout),
	}
	if cfg.transport != nil {
		httpOpts = append(httpOpts, xhttp.WithTransport(xhttp.NewTransportWithBase(cfg.transport)))
	}

	return &Client{
		identityURL: strings.TrimRight(cfg.identityURL, "/"),
		accountURL:  strings.TrimRight(cfg.accountURL, "/"),
		dataURL:     strings.TrimRight(cfg.dataURL, "/"),
		countryCode: cfg.countryCode,
		lang:        cfg.lang,
		httpClient:  xhttp.NewHTTPClient(httpOpts...),
		logger:      cfg.logger,
	}
}

type clientConfig struct {
	identityURL string
	accountURL  string
	dataURL     string
	countryCode string
	lang        string
	timeout     time.Duration
	transport   http.RoundTripper
	logger      *slog.Logger
}

type Option func(*clientConfig)

func WithIdentityURL(u string) Option {
	return func(cfg *clientConfig) { cfg.identityURL = u }
}

func WithAccountURL(u string) Option {
	return func(cfg *clientConfig) { cfg.accountURL = u }
}

func WithDataURL(u string) Option {
	return func(cfg *clientConfig) { cfg.dataURL = u }
}

func WithCountryCode(code string) Option {
	return func(cfg *clientConfig) { cfg.countryCode = code }
}

func WithLang(lang string) Option {
	return func(cfg *clientConfig) { cfg.lang = lang }
}

func WithTimeout(d time.Duration) Option {
	return func(cfg *clientConfig) { cfg.timeout = d }
}

// WithTransport replaces the base round tripper; miband headers are still added.
func WithTransport(rt http.RoundTripper) Option {
	return func(cfg *clientConfig) { cfg.transport = rt }
}

func WithLogger(logger *slog.Logger) Option {
	return func(cfg *clientConfig) { cfg.logger = logger }
}

func (c *Client) postForm(ctx context.Context, u string, form url.Values) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	xhttp.SetRequestHeaderContentTypeForm(req)
	xhttp.SetRequestHeaderAcceptJSON(req)
	return c.send(req)
}

func (c *Client) get(ctx context.Context, u string, query url.Values, header http.Header) (*http.Response, error) {
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	xhttp.SetRequestHeaderAcceptJSON(req)
	return c.send(req)
}

// log prefers the logger carried by ctx so command-level attrs are kept.
func (c *Client) log(ctx context.Context) *slog.Logger {
	return xslog.FromContext(ctx, c.logger)
}

func (c *Client) send(req *http.Request) (*http.Response, error) {
	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}
	// the transport stamps the id on its own clone of req
	sent := req
	if resp.Request != nil {
		sent = resp.Request
	}
	c.log(req.Context()).DebugContext(req.Context(), "huami request",
		xslog.RequestID(xhttp.GetRequestID(sent)),
		xslog.RequestMethod(req),
		xslog.RequestHost(req),
		xslog.RequestPath(req),
		xslog.HTTPStatus(resp.StatusCode),
		xslog.Duration(time.Since(start)),
	)
	return resp, nil
}

// decodeBody reads the whole body and decodes it into result.
func decodeBody(resp *http.Response, result any) error {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}
	if err := go_json.NewDecoder(bytes.NewReader(body)).Decode(result); err != nil {
		return fmt.Errorf("decoding response: %w\nbody: %s", err, string(body))
	}
	return nil
}
