package band

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	go_json "github.com/goccy/go-json"

	"github.com/garrettladley/miband/internal/client/huami"
)

const recordCategory = "data"

// Keys the report prints. A summary without them is rejected rather than
// shown with zero values.
var (
	stepFields     = []string{"ttl", "cal", "dis"}
	activityFields = []string{"start", "stop", "step", "mode"}
	sleepFields    = []string{"lt", "dp", "st", "ed"}
	stageFields    = []string{"start", "stop", "mode"}
)

var errNotObject = errors.New("summary is not a JSON object")

// Decode turns a band data record into a DaySummary. The summary field is
// base64 encoded JSON mapping category codes to category payloads; the
// categories keep the order they have in that JSON.
func Decode(record huami.DayRecord) (DaySummary, error) {
	if record.DateTime == "" {
		return DaySummary{}, &MissingFieldError{Category: recordCategory, Field: "date_time"}
	}
	if record.Summary == "" {
		return DaySummary{}, &MissingFieldError{Date: record.DateTime, Category: recordCategory, Field: "summary"}
	}

	raw, err := decodeBase64(record.Summary)
	if err != nil {
		return DaySummary{}, fmt.Errorf("decoding summary for %s: %w", record.DateTime, err)
	}

	entries, err := orderedObject(raw)
	if err != nil {
		return DaySummary{}, fmt.Errorf("parsing summary for %s: %w", record.DateTime, err)
	}

	day := DaySummary{Date: record.DateTime, Categories: make([]Category, 0, len(entries))}
	for _, e := range entries {
		c, err := decodeCategory(record.DateTime, e.key, e.value)
		if err != nil {
			return DaySummary{}, err
		}
		day.Categories = append(day.Categories, c)
	}
	return day, nil
}

func decodeCategory(date, key string, value go_json.RawMessage) (Category, error) {
	switch key {
	case CategorySteps:
		if err := requireFields(date, key, value, stepFields, activityFields); err != nil {
			return Category{}, err
		}
		var steps StepSummary
		if err := go_json.Unmarshal(value, &steps); err != nil {
			return Category{}, fmt.Errorf("parsing %s for %s: %w", key, date, err)
		}
		return Category{Key: key, Steps: &steps}, nil
	case CategorySleep:
		if err := requireFields(date, key, value, sleepFields, stageFields); err != nil {
			return Category{}, err
		}
		var sleep SleepSummary
		if err := go_json.Unmarshal(value, &sleep); err != nil {
			return Category{}, fmt.Errorf("parsing %s for %s: %w", key, date, err)
		}
		return Category{Key: key, Sleep: &sleep}, nil
	default:
		return Category{Key: key, Raw: value}, nil
	}
}

// requireFields checks the category object for fields, and every element of
// its optional stage list for stage.
func requireFields(date, category string, value go_json.RawMessage, fields, stage []string) error {
	var obj map[string]go_json.RawMessage
	if err := go_json.Unmarshal(value, &obj); err != nil {
		return fmt.Errorf("parsing %s for %s: %w", category, date, err)
	}
	for _, f := range fields {
		if _, ok := obj[f]; !ok {
			return &MissingFieldError{Date: date, Category: category, Field: f}
		}
	}

	rawStages, ok := obj["stage"]
	if !ok {
		return nil
	}
	var stages []map[string]go_json.RawMessage
	if err := go_json.Unmarshal(rawStages, &stages); err != nil {
		return fmt.Errorf("parsing %s stages for %s: %w", category, date, err)
	}
	for i, st := range stages {
		for _, f := range stage {
			if _, ok := st[f]; !ok {
				return &MissingFieldError{Date: date, Category: category, Field: fmt.Sprintf("stage[%d].%s", i, f)}
			}
		}
	}
	return nil
}

type objectEntry struct {
	key   string
	value go_json.RawMessage
}

// orderedObject walks a JSON object and returns its members in document
// order. A repeated key keeps its first position and takes the last value.
func orderedObject(data []byte) ([]objectEntry, error) {
	dec := go_json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(go_json.Delim); !ok || delim != '{' {
		return nil, errNotObject
	}

	var (
		entries []objectEntry
		index   = make(map[string]int)
	)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected object key %v", tok)
		}

		var value go_json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return nil, fmt.Errorf("reading %q: %w", key, err)
		}

		if i, seen := index[key]; seen {
			entries[i].value = value
			continue
		}
		index[key] = len(entries)
		entries = append(entries, objectEntry{key: key, value: value})
	}

	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return entries, nil
}

// decodeBase64 accepts padded and unpadded standard encoding.
func decodeBase64(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	if strings.HasSuffix(s, "=") || len(s)%4 == 0 {
		return base64.StdEncoding.DecodeString(s)
	}
	return base64.RawStdEncoding.DecodeString(s)
}
