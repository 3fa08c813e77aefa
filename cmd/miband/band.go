package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/garrettladley/miband/internal/client/huami"
	"github.com/garrettladley/miband/internal/validator"
)

const dateLayout = "2006-01-02"

func bandCmd() *cobra.Command {
	var (
		from  string
		to    string
		chart bool
	)

	cmd := &cobra.Command{
		Use:   "band",
		Short: "Print band data using the stored session",
		Long:  "Fetches step and sleep summaries with the app token saved by `miband login` or `miband redeem`.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			r, err := parseDateRange(from, to)
			if err != nil {
				return err
			}

			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			return a.band(cmd.Context(), r, chart)
		},
	}

	cmd.Flags().StringVar(&from, "from", huami.DefaultDateRange.From, "first day to fetch (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", huami.DefaultDateRange.To, "last day to fetch (YYYY-MM-DD)")
	cmd.Flags().BoolVar(&chart, "chart", false, "draw a chart of daily steps after the report")

	return cmd
}

type dateRangeFlags struct {
	From string
	To   string
}

func (f dateRangeFlags) Validate() map[string]string {
	errs := make(map[string]string)
	start, err := time.Parse(dateLayout, f.From)
	if err != nil {
		errs["from"] = fmt.Sprintf("%q is not a YYYY-MM-DD date", f.From)
	}
	end, err2 := time.Parse(dateLayout, f.To)
	if err2 != nil {
		errs["to"] = fmt.Sprintf("%q is not a YYYY-MM-DD date", f.To)
	}
	if err == nil && err2 == nil && end.Before(start) {
		errs["to"] = fmt.Sprintf("%s is before %s", f.To, f.From)
	}
	return errs
}

func parseDateRange(from, to string) (huami.DateRange, error) {
	if err := validator.Validate(dateRangeFlags{From: from, To: to}); err != nil {
		return huami.DateRange{}, err
	}
	return huami.DateRange{From: from, To: to}, nil
}

func (a *app) band(ctx context.Context, r huami.DateRange, chart bool) error {
	store, err := a.openStore(ctx)
	if err != nil {
		return fmt.Errorf("failed to open session store: %w", err)
	}
	defer func() { _ = store.Close() }()

	s, err := store.Load(ctx)
	if err != nil {
		return err
	}

	return a.fetch(ctx, s.Huami(), r, chart)
}
