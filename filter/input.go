package filter

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Input boundary: every piece of user-typed text crosses into typed, range
// checked values here, in one place. A parse failure leaves the previous
// valid criteria untouched; malformed input never reaches Criteria.

var dateLayouts = []string{time.RFC3339, "2006-01-02", "2006-01-02 15:04", "2006-01-02 15:04:05"}

// ParseDate accepts RFC3339 or a few date-only fallbacks. Empty input means
// "no bound".
func ParseDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t, nil
		}
	}
	return nil, fmt.Errorf("invalid date %q, use RFC3339 or YYYY-MM-DD", s)
}

// ParsePrice accepts a non-negative decimal. Empty input means "no bound".
func ParsePrice(s string) (*float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid price %q", s)
	}
	if v < 0 {
		return nil, fmt.Errorf("price must not be negative")
	}
	return &v, nil
}

// ParseCount accepts a non-negative integer. Empty input means "no bound".
func ParseCount(s string) (*int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return nil, fmt.Errorf("invalid number %q", s)
	}
	if v < 0 {
		return nil, fmt.Errorf("number must not be negative")
	}
	return &v, nil
}

// Exported range checks for the form handlers, so event creation funnels
// through the same boundary as the filter sheet.

func CheckPriceRange(min, max *float64) error { return checkRange("price", min, max) }

func CheckCountRange(name string, min, max *int) error { return checkRange(name, min, max) }

func CheckDateRange(start, end *time.Time) error { return checkDateRange(start, end) }

// checkRange rejects an inverted range. Open bounds always pass.
func checkRange[T int | float64](name string, min, max *T) error {
	if min != nil && max != nil && *min > *max {
		return fmt.Errorf("%s range is inverted: min %v is greater than max %v", name, *min, *max)
	}
	return nil
}

func checkDateRange(start, end *time.Time) error {
	if start != nil && end != nil && start.After(*end) {
		return fmt.Errorf("date range is inverted: start %s is after end %s",
			start.Format("2006-01-02"), end.Format("2006-01-02"))
	}
	return nil
}

// FromQuery builds validated criteria and a sort option from request query
// parameters. Recognized keys: categories (comma separated), start_date,
// end_date, min_price, max_price, location, min_participants,
// max_participants, sort. The first invalid value aborts with an error and
// no criteria.
func FromQuery(q url.Values) (*Criteria, SortOption, error) {
	c := NewCriteria()

	if raw := strings.TrimSpace(q.Get("categories")); raw != "" {
		c.SetCategories(strings.Split(raw, ","))
	}

	start, err := ParseDate(q.Get("start_date"))
	if err != nil {
		return nil, DefaultSort, err
	}
	end, err := ParseDate(q.Get("end_date"))
	if err != nil {
		return nil, DefaultSort, err
	}
	if err := checkDateRange(start, end); err != nil {
		return nil, DefaultSort, err
	}
	if start != nil {
		c.SetStartDate(start)
	}
	if end != nil {
		c.SetEndDate(end)
	}

	minPrice, err := ParsePrice(q.Get("min_price"))
	if err != nil {
		return nil, DefaultSort, err
	}
	maxPrice, err := ParsePrice(q.Get("max_price"))
	if err != nil {
		return nil, DefaultSort, err
	}
	if err := checkRange("price", minPrice, maxPrice); err != nil {
		return nil, DefaultSort, err
	}
	if minPrice != nil {
		c.SetMinPrice(minPrice)
	}
	if maxPrice != nil {
		c.SetMaxPrice(maxPrice)
	}

	if loc := strings.TrimSpace(q.Get("location")); loc != "" {
		c.SetLocation(loc)
	}

	minPart, err := ParseCount(q.Get("min_participants"))
	if err != nil {
		return nil, DefaultSort, err
	}
	maxPart, err := ParseCount(q.Get("max_participants"))
	if err != nil {
		return nil, DefaultSort, err
	}
	if err := checkRange("participants", minPart, maxPart); err != nil {
		return nil, DefaultSort, err
	}
	if minPart != nil {
		c.SetMinParticipants(minPart)
	}
	if maxPart != nil {
		c.SetMaxParticipants(maxPart)
	}

	return c, ParseSortOption(q.Get("sort")), nil
}
