package band

import (
	"fmt"

	go_json "github.com/goccy/go-json"
)

// Category codes of a decoded day summary.
const (
	CategorySteps = "stp"
	CategorySleep = "slp"
)

type StepSummary struct {
	Total      int        `json:"ttl"`
	Calories   int        `json:"cal"`
	Distance   int        `json:"dis"`
	Activities []Activity `json:"stage"`
}

// Activity is a walking or running interval. Start and Stop are minutes of the day.
type Activity struct {
	Start    int `json:"start"`
	Stop     int `json:"stop"`
	Steps    int `json:"step"`
	Mode     int `json:"mode"`
	Distance int `json:"dis"`
	Calories int `json:"cal"`
}

type SleepSummary struct {
	Light  int          `json:"lt"`
	Deep   int          `json:"dp"`
	Start  int64        `json:"st"`
	End    int64        `json:"ed"`
	Stages []SleepStage `json:"stage"`
}

// Total is light plus deep sleep in minutes.
func (s SleepSummary) Total() int { return s.Light + s.Deep }

type SleepStage struct {
	Start int `json:"start"`
	Stop  int `json:"stop"`
	Mode  int `json:"mode"`
}

// Category is one top-level key of a day summary. Steps is set for stp,
// Sleep for slp, and Raw holds the JSON of any other key.
type Category struct {
	Key   string
	Steps *StepSummary
	Sleep *SleepSummary
	Raw   go_json.RawMessage
}

// DaySummary is one day's decoded summary, categories in document order.
type DaySummary struct {
	Date       string
	Categories []Category
}

// Steps returns the day's step summary, or nil when it has none.
func (d DaySummary) Steps() *StepSummary {
	for _, c := range d.Categories {
		if c.Steps != nil {
			return c.Steps
		}
	}
	return nil
}

// MissingFieldError reports a response that lacks a field the report needs.
type MissingFieldError struct {
	Date     string
	Category string
	Field    string
}

func (e *MissingFieldError) Error() string {
	if e.Date == "" {
		return fmt.Sprintf("missing %q in %s", e.Field, e.Category)
	}
	return fmt.Sprintf("missing %q in %s for %s", e.Field, e.Category, e.Date)
}
