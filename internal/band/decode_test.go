package band

import (
	_ "embed"
	"encoding/base64"
	"errors"
	"strings"
	"testing"

	go_json "github.com/goccy/go-json"
	"github.com/google/go-cmp/cmp"

	"github.com/garrettladley/miband/internal/client/huami"
)

//go:embed testdata/day.b64
var daySummaryB64 string

func fixtureRecord() huami.DayRecord {
	return huami.DayRecord{DateTime: "2019-03-01", Summary: strings.TrimSpace(daySummaryB64)}
}

func TestDecodeFixture(t *testing.T) {
	t.Parallel()

	got, err := Decode(fixtureRecord())
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	want := DaySummary{
		Date: "2019-03-01",
		Categories: []Category{
			{Key: "v", Raw: go_json.RawMessage(`5`)},
			{Key: CategorySleep, Sleep: &SleepSummary{
				Light: 325,
				Deep:  95,
				Start: 1551394800,
				End:   1551420000,
				Stages: []SleepStage{
					{Start: 1380, Stop: 1439, Mode: 4},
					{Start: 1440, Stop: 1534, Mode: 5},
					{Start: 1535, Stop: 1800, Mode: 4},
					{Start: 1801, Stop: 1820, Mode: 8},
				},
			}},
			{Key: CategorySteps, Steps: &StepSummary{
				Total:    8241,
				Calories: 312,
				Distance: 6012,
				Activities: []Activity{
					{Start: 455, Stop: 478, Steps: 1403, Mode: 1, Distance: 1020, Calories: 38},
					{Start: 1080, Stop: 1102, Steps: 2210, Mode: 4, Distance: 1830, Calories: 120},
					{Start: 1200, Stop: 1210, Steps: 120, Mode: 9, Distance: 100, Calories: 5},
				},
			}},
			{Key: "goal", Raw: go_json.RawMessage(`8000`)},
			{Key: "tz", Raw: go_json.RawMessage(`"3600"`)},
		},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Decode() mismatch (-want +got):\n%s", diff)
	}
	if total := got.Categories[1].Sleep.Total(); total != 420 {
		t.Errorf("Sleep.Total() = %d, want 420", total)
	}
	if steps := got.Steps(); steps == nil || steps.Total != 8241 {
		t.Errorf("Steps() = %+v, want total 8241", steps)
	}
}

func TestDecodeErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		summary string
		wantErr string
	}{
		{
			name:    "not base64",
			summary: "!!not-base64!!",
			wantErr: "decoding summary for 2019-01-01",
		},
		{
			name:    "not json",
			summary: "bm90IGpzb24=",
			wantErr: "parsing summary for 2019-01-01",
		},
		{
			name:    "steps with wrong shape",
			summary: "eyJzdHAiOiJvb3BzIn0=",
			wantErr: "parsing stp for 2019-01-01",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Decode(huami.DayRecord{DateTime: "2019-01-01", Summary: tt.summary})
			if err == nil {
				t.Fatalf("Decode() error = nil, want %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Decode() error = %q, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestDecodeEmptyAndUnpadded(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		summary string
		want    DaySummary
	}{
		{
			name:    "empty object",
			summary: "e30=",
			want:    DaySummary{Date: "2019-01-02", Categories: []Category{}},
		},
		{
			name:    "unpadded",
			summary: "eyJ2Ijo1fQ",
			want: DaySummary{
				Date:       "2019-01-02",
				Categories: []Category{{Key: "v", Raw: go_json.RawMessage(`5`)}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := Decode(huami.DayRecord{DateTime: "2019-01-02", Summary: tt.summary})
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Decode() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDecodeKeepsDocumentOrder(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		summary string
		want    []string
	}{
		{
			name:    "extra before sleep before steps",
			summary: `{"v":5,"slp":{"lt":1,"dp":2,"st":0,"ed":0},"stp":{"ttl":1,"cal":2,"dis":3},"goal":8000}`,
			want:    []string{"v", CategorySleep, CategorySteps, "goal"},
		},
		{
			name:    "reverse alphabetical",
			summary: `{"z":1,"m":2,"a":3}`,
			want:    []string{"z", "m", "a"},
		},
		{
			name:    "repeated key keeps first position",
			summary: `{"a":1,"b":2,"a":3}`,
			want:    []string{"a", "b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			record := huami.DayRecord{DateTime: "2019-01-01", Summary: base64.StdEncoding.EncodeToString([]byte(tt.summary))}
			got, err := Decode(record)
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}

			keys := make([]string, 0, len(got.Categories))
			for _, c := range got.Categories {
				keys = append(keys, c.Key)
			}
			if diff := cmp.Diff(tt.want, keys); diff != "" {
				t.Errorf("category order mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDecodeMissingFields(t *testing.T) {
	t.Parallel()

	const (
		steps = `"ttl":1,"cal":2,"dis":3`
		sleep = `"lt":1,"dp":2,"st":3,"ed":4`
	)

	tests := []struct {
		name      string
		summary   string
		wantCat   string
		wantField string
	}{
		{name: "steps without ttl", summary: `{"stp":{"cal":5,"dis":3}}`, wantCat: "stp", wantField: "ttl"},
		{name: "steps without cal", summary: `{"stp":{"ttl":5,"dis":3}}`, wantCat: "stp", wantField: "cal"},
		{name: "steps without dis", summary: `{"stp":{"ttl":5,"cal":3}}`, wantCat: "stp", wantField: "dis"},
		{name: "activity without start", summary: `{"stp":{` + steps + `,"stage":[{"stop":2,"step":3,"mode":1}]}}`, wantCat: "stp", wantField: "stage[0].start"},
		{name: "activity without stop", summary: `{"stp":{` + steps + `,"stage":[{"start":1,"step":3,"mode":1}]}}`, wantCat: "stp", wantField: "stage[0].stop"},
		{name: "activity without step", summary: `{"stp":{` + steps + `,"stage":[{"start":1,"stop":2,"mode":1}]}}`, wantCat: "stp", wantField: "stage[0].step"},
		{name: "second activity without mode", summary: `{"stp":{` + steps + `,"stage":[{"start":1,"stop":2,"step":3,"mode":1},{"start":1,"stop":2,"step":3}]}}`, wantCat: "stp", wantField: "stage[1].mode"},
		{name: "sleep without lt", summary: `{"slp":{"dp":3,"st":1,"ed":2}}`, wantCat: "slp", wantField: "lt"},
		{name: "sleep without dp", summary: `{"slp":{"lt":3,"st":1,"ed":2}}`, wantCat: "slp", wantField: "dp"},
		{name: "sleep without st", summary: `{"slp":{"lt":3,"dp":1,"ed":2}}`, wantCat: "slp", wantField: "st"},
		{name: "sleep without ed", summary: `{"slp":{"lt":3,"dp":1,"st":2}}`, wantCat: "slp", wantField: "ed"},
		{name: "stage without start", summary: `{"slp":{` + sleep + `,"stage":[{"stop":2,"mode":4}]}}`, wantCat: "slp", wantField: "stage[0].start"},
		{name: "stage without stop", summary: `{"slp":{` + sleep + `,"stage":[{"start":1,"mode":4}]}}`, wantCat: "slp", wantField: "stage[0].stop"},
		{name: "stage without mode", summary: `{"slp":{` + sleep + `,"stage":[{"start":1,"stop":2}]}}`, wantCat: "slp", wantField: "stage[0].mode"},
		{name: "steps null", summary: `{"stp":null}`, wantCat: "stp", wantField: "ttl"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			record := huami.DayRecord{DateTime: "2019-01-01", Summary: base64.StdEncoding.EncodeToString([]byte(tt.summary))}
			_, err := Decode(record)

			var missing *MissingFieldError
			if !errors.As(err, &missing) {
				t.Fatalf("Decode() error = %v, want *MissingFieldError", err)
			}
			want := MissingFieldError{Date: "2019-01-01", Category: tt.wantCat, Field: tt.wantField}
			if diff := cmp.Diff(want, *missing); diff != "" {
				t.Errorf("MissingFieldError mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDecodeMissingRecordFields(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		record  huami.DayRecord
		wantErr string
	}{
		{
			name:    "no date",
			record:  huami.DayRecord{Summary: "e30="},
			wantErr: `missing "date_time" in data`,
		},
		{
			name:    "no summary",
			record:  huami.DayRecord{DateTime: "2019-01-01"},
			wantErr: `missing "summary" in data for 2019-01-01`,
		},
		{
			name:    "steps without totals",
			record:  huami.DayRecord{DateTime: "2019-01-01", Summary: base64.StdEncoding.EncodeToString([]byte(`{"stp":{"cal":5},"slp":{"dp":3}}`))},
			wantErr: `missing "ttl" in stp for 2019-01-01`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Decode(tt.record)
			if err == nil || err.Error() != tt.wantErr {
				t.Errorf("Decode() error = %v, want %q", err, tt.wantErr)
			}
		})
	}
}
