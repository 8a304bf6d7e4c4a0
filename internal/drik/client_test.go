package drik

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

const samplePage = `<html><body>
<div class="dpPanchang">
  <div class="dpRow"><span class="dpLabel">Sunrise</span><span class="dpValue">05:33 AM</span></div>
</div>
</body></html>`

func TestFetchDay(t *testing.T) {
	var gotRequest *http.Request
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotRequest = r.Clone(r.Context())
		w.Write([]byte(samplePage))
	}))
	defer ts.Close()

	c := NewClient(ts.URL, "1261481", 5*time.Second)
	doc, err := c.FetchDay(context.Background(), time.Date(2025, time.July, 14, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("FetchDay failed: %v", err)
	}

	if gotRequest.URL.Path != "/panchang/day-panchang.html" {
		t.Errorf("unexpected path: %s", gotRequest.URL.Path)
	}
	q := gotRequest.URL.Query()
	if q.Get("geoname-id") != "1261481" {
		t.Errorf("expected geoname-id 1261481, got %q", q.Get("geoname-id"))
	}
	if q.Get("date") != "14/07/2025" {
		t.Errorf("expected date in DD/MM/YYYY form, got %q", q.Get("date"))
	}
	ua := gotRequest.Header.Get("User-Agent")
	if !strings.Contains(ua, "Mozilla/5.0") {
		t.Errorf("expected a browser User-Agent, got %q", ua)
	}

	if got := doc.Find(".dpValue").First().Text(); got != "05:33 AM" {
		t.Errorf("expected parsed document to contain the value, got %q", got)
	}
}

func TestFetchDay_NonSuccessStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	}))
	defer ts.Close()

	c := NewClient(ts.URL, "1261481", 5*time.Second)
	_, err := c.FetchDay(context.Background(), time.Date(2025, time.July, 14, 0, 0, 0, 0, time.UTC))
	if err == nil {
		t.Fatal("expected an error for a 404 response")
	}
	if !strings.Contains(err.Error(), "404") {
		t.Errorf("expected status code in error, got %v", err)
	}
}

func TestFetchDay_TransportError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	ts.Close() // immediately, so the address refuses connections

	c := NewClient(ts.URL, "1261481", time.Second)
	_, err := c.FetchDay(context.Background(), time.Date(2025, time.July, 14, 0, 0, 0, 0, time.UTC))
	if err == nil {
		t.Fatal("expected an error when the server is unreachable")
	}
}
