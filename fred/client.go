// Package fred downloads daily Treasury constant-maturity yield series from
// the FRED CSV endpoint and assembles them into a curve.Table.
package fred

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"time"

	"github.com/rustyeddy/curvesim/curve"
)

// DefaultBaseURL is the FRED graph CSV export endpoint.
const DefaultBaseURL = "https://fred.stlouisfed.org/graph/fredgraph.csv"

// SeriesMapping pairs a tenor label with its FRED series ID.
type SeriesMapping struct {
	Tenor string
	ID    string
}

// Series lists the constant-maturity series by ascending tenor.
var Series = []SeriesMapping{
	{"1M", "DGS1MO"},
	{"3M", "DGS3MO"},
	{"6M", "DGS6MO"},
	{"1Y", "DGS1"},
	{"2Y", "DGS2"},
	{"3Y", "DGS3"},
	{"5Y", "DGS5"},
	{"7Y", "DGS7"},
	{"10Y", "DGS10"},
	{"20Y", "DGS20"},
	{"30Y", "DGS30"},
}

// Observation is a single dated value from a series. Missing observations
// (FRED publishes ".") carry NaN.
type Observation struct {
	Date  time.Time
	Value float64
}

// Client fetches FRED series over HTTP.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient returns a client against the public FRED endpoint with a
// 30 second timeout.
func NewClient() *Client {
	return &Client{
		BaseURL: DefaultBaseURL,
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// FetchSeries downloads one series and returns its observations in date order.
// Values are in percent, exactly as published.
func (c *Client) FetchSeries(ctx context.Context, seriesID string) ([]Observation, error) {
	u := fmt.Sprintf("%s?id=%s", c.BaseURL, url.QueryEscape(seriesID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("build request for %s: %w", seriesID, err)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", seriesID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("fetch %s: status %d: %s", seriesID, resp.StatusCode, body)
	}

	return parseSeriesCSV(resp.Body, seriesID)
}

// parseSeriesCSV reads one fredgraph CSV export. The date column has been
// observed under DATE, observation_date and date headers; all three are
// accepted. A value of "." marks a missing observation.
func parseSeriesCSV(r io.Reader, seriesID string) ([]Observation, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read CSV header for %s: %w", seriesID, err)
	}

	dateCol, valueCol := -1, -1
	for i, name := range header {
		switch name {
		case "DATE", "observation_date", "date":
			dateCol = i
		case seriesID:
			valueCol = i
		}
	}
	if dateCol < 0 || valueCol < 0 {
		return nil, fmt.Errorf("unexpected CSV format for %s: columns=%v", seriesID, header)
	}

	var obs []Observation
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read CSV row for %s: %w", seriesID, err)
		}
		if len(rec) <= dateCol || len(rec) <= valueCol {
			continue
		}

		date, err := time.Parse("2006-01-02", rec[dateCol])
		if err != nil {
			continue
		}

		v := math.NaN()
		if raw := rec[valueCol]; raw != "." && raw != "" {
			v, err = strconv.ParseFloat(raw, 64)
			if err != nil {
				return nil, fmt.Errorf("parse %s value %q on %s: %w",
					seriesID, raw, rec[dateCol], err)
			}
		}
		obs = append(obs, Observation{Date: date, Value: v})
	}

	sort.Slice(obs, func(i, j int) bool { return obs[i].Date.Before(obs[j].Date) })
	return obs, nil
}

// FetchTable downloads every tenor's series, aligns them on the union of
// observation dates from start onward, and converts percent to decimal
// yields. Gaps stay NaN; the as-of curve construction forward-fills them.
func (c *Client) FetchTable(ctx context.Context, start time.Time) (*curve.Table, error) {
	all := make(map[string][]Observation, len(Series))
	dateSet := make(map[time.Time]struct{})

	for _, s := range Series {
		obs, err := c.FetchSeries(ctx, s.ID)
		if err != nil {
			return nil, err
		}
		all[s.Tenor] = obs
		for _, o := range obs {
			if !o.Date.Before(start) {
				dateSet[o.Date] = struct{}{}
			}
		}
	}

	dates := make([]time.Time, 0, len(dateSet))
	for d := range dateSet {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	index := make(map[time.Time]int, len(dates))
	for i, d := range dates {
		index[d] = i
	}

	columns := make(map[string][]float64, len(all))
	for tenor, obs := range all {
		col := make([]float64, len(dates))
		for i := range col {
			col[i] = math.NaN()
		}
		for _, o := range obs {
			if i, ok := index[o.Date]; ok && !math.IsNaN(o.Value) {
				col[i] = o.Value / 100.0 // percent -> decimal
			}
		}
		columns[tenor] = col
	}

	return curve.NewTable(dates, columns)
}
