package panchang

import (
	"errors"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// Selectors for drikpanchang's day-panchang markup. These track the site's
// structure as observed; anchor fallback below is what keeps extraction
// working when the outer container drifts.
const (
	cardSelector  = "div.dpPanchang"
	labelSelector = ".dpLabel"
)

// anchorKey is the single label matched literally (case-sensitive) when the
// canonical card container is missing and the anchor has to be located from
// a known row.
const anchorKey = "Sunrise"

// MinAnchorRows is the fewest label rows an ancestor must hold before the
// fallback anchor search accepts it. Six fields are extracted per day; an
// ancestor with fewer than five labels cannot plausibly hold them all. This
// is a heuristic tied to the field count, not a guarantee.
const MinAnchorRows = 5

// ErrAnchorNotFound reports that no region of the document could be
// identified as holding panchang rows.
var ErrAnchorNotFound = errors.New("panchang anchor not found in document")

// Extract pulls the six panchang fields for one day out of a parsed
// document. The date only stamps the record; it does not influence parsing.
//
// Extraction fails only when no anchor can be resolved. Once an anchor
// exists a record is always returned, with NotFound filling any field that
// could not be located — partial data is kept, never discarded.
func Extract(doc *goquery.Document, date time.Time) (DayRecord, error) {
	anchor, ok := findAnchor(doc)
	if !ok {
		return DayRecord{}, ErrAnchorNotFound
	}

	rec := DayRecord{Date: date.Format(DateFormat)}
	fields := []struct {
		key string
		dst *string
	}{
		{"sunrise", &rec.Sunrise},
		{"sunset", &rec.Sunset},
		{"tithi", &rec.Tithi},
		{"nakshatra", &rec.Nakshatra},
		{"yoga", &rec.Yoga},
		{"karana", &rec.Karana},
	}
	for _, f := range fields {
		*f.dst = extractField(anchor, f.key)
	}
	return rec, nil
}

// An anchorStrategy proposes a subtree expected to contain all panchang rows
// for the day. Strategies are tried in order; the first hit wins.
type anchorStrategy func(doc *goquery.Document) (*goquery.Selection, bool)

var anchorStrategies = []anchorStrategy{
	findCard,
	findLabelAncestor,
	findLabelParent,
}

func findAnchor(doc *goquery.Document) (*goquery.Selection, bool) {
	for _, strategy := range anchorStrategies {
		if anchor, ok := strategy(doc); ok {
			return anchor, true
		}
	}
	return nil, false
}

// findCard looks for the canonical panchang card container.
func findCard(doc *goquery.Document) (*goquery.Selection, bool) {
	card := doc.Find(cardSelector).First()
	return card, card.Length() > 0
}

// findLabelAncestor locates the "Sunrise" label and climbs its ancestors one
// container at a time, accepting the first one wide enough to hold all
// target rows (MinAnchorRows).
func findLabelAncestor(doc *goquery.Document) (*goquery.Selection, bool) {
	label, ok := findAnchorLabel(doc)
	if !ok {
		return nil, false
	}
	for p := label.Parent(); p.Length() > 0; p = p.Parent() {
		if p.Find(labelSelector).Length() >= MinAnchorRows {
			return p, true
		}
	}
	return nil, false
}

// findLabelParent is the last resort: the immediate parent of the "Sunrise"
// label. Data extracted under it may be incomplete.
func findLabelParent(doc *goquery.Document) (*goquery.Selection, bool) {
	label, ok := findAnchorLabel(doc)
	if !ok {
		return nil, false
	}
	parent := label.Parent()
	return parent, parent.Length() > 0
}

func findAnchorLabel(doc *goquery.Document) (*goquery.Selection, bool) {
	var found *goquery.Selection
	doc.Find(labelSelector).EachWithBreak(func(_ int, label *goquery.Selection) bool {
		if strings.TrimSpace(label.Text()) == anchorKey {
			found = label
			return false
		}
		return true
	})
	return found, found != nil
}

// extractField finds the first label within the anchor whose normalized text
// contains key and reads the value element immediately following it. The
// first matching label in document order wins. Failures of any kind while
// processing this key degrade to NotFound without touching the other keys.
func extractField(anchor *goquery.Selection, key string) (value string) {
	value = NotFound
	defer func() {
		if recover() != nil {
			value = NotFound
		}
	}()

	anchor.Find(labelSelector).EachWithBreak(func(_ int, label *goquery.Selection) bool {
		if !strings.Contains(normalizeLabel(label.Text()), key) {
			return true
		}
		if next := label.Next(); next.Length() > 0 {
			value = strings.TrimSpace(next.Text())
		}
		return false
	})
	return value
}

// normalizeLabel collapses a label's nested text fragments into a single
// lower-cased, whitespace-trimmed string for fuzzy key matching.
func normalizeLabel(text string) string {
	return strings.ToLower(strings.Join(strings.Fields(text), " "))
}
