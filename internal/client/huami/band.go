package huami

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/garrettladley/miband/internal/xslog"
)

// HeaderAppToken carries the session's app token on data requests.
const HeaderAppToken = "apptoken"

// BandData fetches the per-day summary records for the range in one request.
func (c *Client) BandData(ctx context.Context, s Session, r DateRange) ([]DayRecord, error) {
	const route = "/v1/data/band_data.json"

	query := url.Values{
		"query_type":  {"summary"},
		"device_type": {deviceModel},
		"userid":      {s.UserID},
		"from_date":   {r.From},
		"to_date":     {r.To},
	}
	header := http.Header{}
	header.Set(HeaderAppToken, s.AppToken)

	resp, err := c.get(ctx, c.dataURL+route, query, header)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, parseAPIError(resp)
	}

	var data bandDataResponse
	if err := decodeBody(resp, &data); err != nil {
		return nil, err
	}
	if data.Data == nil {
		if data.Message != "" {
			return nil, fmt.Errorf("%w: %s", ErrMissingData, data.Message)
		}
		return nil, ErrMissingData
	}

	records := *data.Data
	c.log(ctx).InfoContext(ctx, "fetched band data", xslog.UserID(s.UserID), xslog.Count(len(records)))
	return records, nil
}
