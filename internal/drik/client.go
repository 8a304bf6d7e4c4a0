// Package drik fetches day-panchang pages from drikpanchang.com.
//
// The site keys location on a numeric geoname id rather than free text, and
// resolving arbitrary location strings to ids would need a geocoding setup
// that is out of scope here. The client therefore pins the lookup to a single
// configured geoname id (New Delhi by default); callers' location strings do
// not change the target. This is a known limitation, not a bug.
package drik

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
)

const (
	dayPanchangPath = "/panchang/day-panchang.html"

	// urlDateFormat is the DD/MM/YYYY form the site expects in its query string.
	urlDateFormat = "02/01/2006"

	// The site rejects non-browser clients, so a desktop Chrome UA is sent.
	userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"
)

// Client is an HTTP client for the day-panchang page.
type Client struct {
	http      *resty.Client
	geonameID string
}

// NewClient creates a Client against the given base URL. The timeout bounds
// every fetch; there are no retries.
func NewClient(baseURL, geonameID string, timeout time.Duration) *Client {
	client := resty.New()
	client.SetBaseURL(baseURL)
	client.SetHeader("User-Agent", userAgent)
	client.SetTimeout(timeout)
	return &Client{http: client, geonameID: geonameID}
}

// FetchDay retrieves and parses the panchang page for one calendar day.
// A non-2xx response is classified as a fetch failure.
func (c *Client) FetchDay(ctx context.Context, day time.Time) (*goquery.Document, error) {
	res, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("geoname-id", c.geonameID).
		SetQueryParam("date", day.Format(urlDateFormat)).
		Get(dayPanchangPath)
	if err != nil {
		return nil, fmt.Errorf("fetching panchang page: %w", err)
	}
	if res.IsError() {
		return nil, fmt.Errorf("unexpected status code: %d", res.StatusCode())
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(res.Body()))
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}
	return doc, nil
}
