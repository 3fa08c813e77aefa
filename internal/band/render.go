package band

import (
	"fmt"
	"io"
	"time"
)

const timestampLayout = "2006-01-02 15:04:05"

// Renderer prints decoded summaries as plain report lines.
type Renderer struct {
	w     io.Writer
	loc   *time.Location
	theme Theme
}

type RendererOption func(*Renderer)

// WithLocation sets the zone sleep timestamps are shown in. Defaults to time.Local.
func WithLocation(loc *time.Location) RendererOption {
	return func(r *Renderer) { r.loc = loc }
}

func WithTheme(t Theme) RendererOption {
	return func(r *Renderer) { r.theme = t }
}

func NewRenderer(w io.Writer, opts ...RendererOption) *Renderer {
	r := &Renderer{w: w, loc: time.Local, theme: PlainTheme()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Day prints the date followed by every category in the order the summary
// listed them. Unknown categories are printed as raw JSON.
func (r *Renderer) Day(day DaySummary) error {
	p := &printer{w: r.w}
	p.println(r.theme.Date(day.Date))
	for _, c := range day.Categories {
		switch {
		case c.Steps != nil:
			r.steps(p, *c.Steps)
		case c.Sleep != nil:
			r.sleep(p, *c.Sleep)
		default:
			p.printf("%s = %s\n", c.Key, string(c.Raw))
		}
	}
	return p.err
}

func (r *Renderer) steps(p *printer, s StepSummary) {
	p.println(r.theme.Steps(fmt.Sprintf("Total steps: %d, Calories used: %d kcals, Distance walked: %d meters",
		s.Total, s.Calories, s.Distance)))
	for _, a := range s.Activities {
		p.printf("%s - %s %d steps %s\n", FormatMinutes(a.Start), FormatMinutes(a.Stop), a.Steps, ActivityLabel(a.Mode))
	}
}

func (r *Renderer) sleep(p *printer, s SleepSummary) {
	p.println(r.theme.Sleep(fmt.Sprintf("Total sleep: %s, Deep sleep: %s, Light sleep: %s, Slept from %s until %s",
		FormatMinutes(s.Total()),
		FormatMinutes(s.Deep),
		FormatMinutes(s.Light),
		r.timestamp(s.Start),
		r.timestamp(s.End),
	)))
	for _, st := range s.Stages {
		p.printf("%s - %s %s\n", FormatMinutes(st.Start), FormatMinutes(st.Stop), StageLabel(st.Mode))
	}
}

func (r *Renderer) timestamp(unix int64) string {
	return time.Unix(unix, 0).In(r.loc).Format(timestampLayout)
}

// printer keeps the first write error so rendering code stays linear.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *printer) println(s string) {
	p.printf("%s\n", s)
}
