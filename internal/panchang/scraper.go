package panchang

import (
	"context"
	"log/slog"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// A Fetcher retrieves the parsed panchang document for a single day.
type Fetcher interface {
	FetchDay(ctx context.Context, day time.Time) (*goquery.Document, error)
}

// dayErrorMessage is the placeholder recorded when a whole day fails.
const dayErrorMessage = "failed to retrieve data for this day"

// Scraper walks a closed date range, fetching and extracting one day at a
// time. Days are processed sequentially with a single attempt each; a failed
// day becomes an error placeholder record and never aborts the rest of the
// range.
type Scraper struct {
	fetcher Fetcher
	log     *slog.Logger
}

// NewScraper creates a Scraper over the given fetch collaborator.
func NewScraper(fetcher Fetcher, log *slog.Logger) *Scraper {
	return &Scraper{fetcher: fetcher, log: log}
}

// ScrapeRange returns one DayRecord per calendar day in [start, end], in
// ascending order with no gaps. An inverted range yields an empty slice.
//
// The location is accepted for interface compatibility; the upstream source
// binding does not currently vary by location (see internal/drik).
func (s *Scraper) ScrapeRange(ctx context.Context, start, end time.Time, location string) []DayRecord {
	records := make([]DayRecord, 0)
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		records = append(records, s.scrapeDay(ctx, day))
	}
	return records
}

func (s *Scraper) scrapeDay(ctx context.Context, day time.Time) DayRecord {
	date := day.Format(DateFormat)
	s.log.Info("scraping day", "date", date)

	doc, err := s.fetcher.FetchDay(ctx, day)
	if err != nil {
		s.log.Warn("fetch failed", "date", date, "error", err)
		return DayRecord{Date: date, Error: dayErrorMessage}
	}

	rec, err := Extract(doc, day)
	if err != nil {
		s.log.Warn("extraction failed", "date", date, "error", err)
		return DayRecord{Date: date, Error: dayErrorMessage}
	}
	return rec
}
