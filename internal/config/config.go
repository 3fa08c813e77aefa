package config

import (
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/garrettladley/miband/internal/xslog"
)

type Config struct {
	Huami     Huami
	Xiaomi    Xiaomi
	RedisURL  string        `env:"REDIS_URL"`
	Timeout   time.Duration `env:"HTTP_TIMEOUT" envDefault:"0s"`
	LogLevel  string        `env:"LOG_LEVEL" envDefault:"warn"`
	LogFormat string        `env:"LOG_FORMAT" envDefault:"text"`
}

type Huami struct {
	IdentityURL string `env:"HUAMI_IDENTITY_URL" envDefault:"https://api-user.huami.com"`
	AccountURL  string `env:"HUAMI_ACCOUNT_URL" envDefault:"https://account.huami.com"`
	DataURL     string `env:"HUAMI_DATA_URL" envDefault:"https://api-mifit.huami.com"`
	CountryCode string `env:"HUAMI_COUNTRY_CODE" envDefault:"DE"`
	Lang        string `env:"HUAMI_LANG" envDefault:"de"`
}

type Xiaomi struct {
	AuthorizeURL string `env:"XIAOMI_AUTHORIZE_URL" envDefault:"https://account.xiaomi.com/oauth2/authorize"`
	ClientID     string `env:"XIAOMI_CLIENT_ID" envDefault:"428135909242707968"`
	RedirectURL  string `env:"XIAOMI_REDIRECT_URL" envDefault:"https://api-mifit-cn.huami.com/huami.health.loginview.do_not"`
	Locale       string `env:"XIAOMI_LOCALE" envDefault:"de_DE"`
}

func Read() (Config, error) {
	return env.ParseAs[Config]()
}

// Defaults is the configuration with every variable unset.
func Defaults() Config {
	cfg, err := env.ParseAsWithOptions[Config](env.Options{Environment: map[string]string{}})
	if err != nil {
		panic("config: invalid envDefault tag: " + err.Error())
	}
	return cfg
}

// Level returns the configured log level, falling back to the xslog default.
func (c Config) Level() xslog.Level {
	level, err := xslog.Parse(c.LogLevel)
	if err != nil {
		return xslog.Default
	}
	return level
}

// Logger writes text records, or JSON ones when LOG_FORMAT=json.
func (c Config) Logger(w io.Writer) *slog.Logger {
	if strings.EqualFold(c.LogFormat, "json") {
		return xslog.NewJSONLogger(w, c.Level())
	}
	return xslog.NewLogger(w, c.Level())
}
