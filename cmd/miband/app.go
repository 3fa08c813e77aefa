package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/garrettladley/miband/internal/band"
	"github.com/garrettladley/miband/internal/client/huami"
	"github.com/garrettladley/miband/internal/config"
	"github.com/garrettladley/miband/internal/session"
	"github.com/garrettladley/miband/internal/xslog"
)

// app holds everything a command needs; tests build one by hand.
type app struct {
	cfg       config.Config
	logger    *slog.Logger
	client    *huami.Client
	out       io.Writer
	theme     band.Theme
	loc       *time.Location
	now       func() time.Time
	openStore func(ctx context.Context) (session.Store, error)
}

func newApp(cmd *cobra.Command) (*app, error) {
	cfg, err := config.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	logger := cfg.Logger(cmd.ErrOrStderr())
	slog.SetDefault(logger)
	ctx := xslog.WithCommand(xslog.WithLogger(cmd.Context(), logger), cmd.Name())
	cmd.SetContext(ctx)
	xslog.FromContext(ctx, logger).DebugContext(ctx, "starting", xslog.Version())

	client := huami.New(
		huami.WithIdentityURL(cfg.Huami.IdentityURL),
		huami.WithAccountURL(cfg.Huami.AccountURL),
		huami.WithDataURL(cfg.Huami.DataURL),
		huami.WithCountryCode(cfg.Huami.CountryCode),
		huami.WithLang(cfg.Huami.Lang),
		huami.WithTimeout(cfg.Timeout),
		huami.WithLogger(logger),
	)

	theme := band.PlainTheme()
	if term.IsTerminal(int(os.Stdout.Fd())) {
		theme = band.NewTheme()
	}

	return &app{
		cfg:    cfg,
		logger: logger,
		client: client,
		out:    cmd.OutOrStdout(),
		theme:  theme,
		loc:    time.Local,
		now:    time.Now,
		openStore: func(ctx context.Context) (session.Store, error) {
			return session.Open(ctx, cfg.RedisURL, logger)
		},
	}, nil
}

func (a *app) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(a.out, format, args...)
}

// saveSession stores the session for later `band` runs. A store failure is
// logged, not fatal: the current command already has its token.
func (a *app) saveSession(ctx context.Context, s huami.Session, countryCode string) {
	store, err := a.openStore(ctx)
	if err != nil {
		xslog.FromContext(ctx, a.logger).WarnContext(ctx, "session not saved", xslog.Error(err))
		return
	}
	defer func() { _ = store.Close() }()

	if err := store.Save(ctx, session.New(s, countryCode, a.now())); err != nil {
		xslog.FromContext(ctx, a.logger).WarnContext(ctx, "session not saved", xslog.Error(err))
	}
}

// fetch downloads the range and prints every day as it is decoded.
func (a *app) fetch(ctx context.Context, s huami.Session, r huami.DateRange, chart bool) error {
	a.printf("Retrieving Mi Band data...\n")

	records, err := a.client.BandData(ctx, s, r)
	if err != nil {
		return fmt.Errorf("failed to fetch band data: %w", err)
	}

	renderer := band.NewRenderer(a.out, band.WithLocation(a.loc), band.WithTheme(a.theme))

	days := make([]band.DaySummary, 0, len(records))
	for _, record := range records {
		day, err := band.Decode(record)
		if err != nil {
			a.logRejected(ctx, record, err)
			return err
		}
		if err := renderer.Day(day); err != nil {
			return err
		}
		days = append(days, day)
	}

	if chart {
		if c := band.StepsChart(days, chartHeight, a.theme); c != "" {
			a.printf("\n%s\n", c)
		}
	}
	return nil
}

const chartHeight = 6

func (a *app) logRejected(ctx context.Context, record huami.DayRecord, err error) {
	attrs := []any{xslog.Date(record.DateTime), xslog.Error(err)}
	var missing *band.MissingFieldError
	if errors.As(err, &missing) {
		attrs = append(attrs, xslog.Category(missing.Category))
	}
	xslog.FromContext(ctx, a.logger).DebugContext(ctx, "day summary rejected", attrs...)
}
