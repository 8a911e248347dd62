package filter

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/emre/event-discovery-go/models"
)

// SortOption names one total-order strategy over the event list. Exactly one
// is active at a time.
type SortOption string

const (
	SortDateAsc          SortOption = "date_asc"
	SortDateDesc         SortOption = "date_desc"
	SortTitleAsc         SortOption = "title_asc"
	SortTitleDesc        SortOption = "title_desc"
	SortPriceAsc         SortOption = "price_asc"
	SortPriceDesc        SortOption = "price_desc"
	SortParticipantsAsc  SortOption = "participants_asc"
	SortParticipantsDesc SortOption = "participants_desc"
)

// DefaultSort is what a fresh session uses: newest start date first.
const DefaultSort = SortDateDesc

// ParseSortOption maps a query value to a SortOption, falling back to the
// default for unknown or empty input.
func ParseSortOption(s string) SortOption {
	switch SortOption(s) {
	case SortDateAsc, SortDateDesc, SortTitleAsc, SortTitleDesc,
		SortPriceAsc, SortPriceDesc, SortParticipantsAsc, SortParticipantsDesc:
		return SortOption(s)
	}
	return DefaultSort
}

// Sort orders events by the given option, in place, using a stable sort:
// events with equal keys keep their relative input order. Titles compare
// with Turkish collation, case-insensitive, so "İstanbul" and "istanbul"
// order next to each other instead of by byte value.
func Sort(events []models.Event, opt SortOption) {
	less := lessFunc(opt)
	sort.SliceStable(events, func(i, j int) bool {
		return less(&events[i], &events[j])
	})
}

func lessFunc(opt SortOption) func(a, b *models.Event) bool {
	switch opt {
	case SortDateAsc:
		return func(a, b *models.Event) bool { return a.StartDate.Before(b.StartDate) }
	case SortDateDesc:
		return func(a, b *models.Event) bool { return a.StartDate.After(b.StartDate) }
	case SortTitleAsc:
		coll := titleCollator()
		return func(a, b *models.Event) bool { return coll.CompareString(a.Title, b.Title) < 0 }
	case SortTitleDesc:
		coll := titleCollator()
		return func(a, b *models.Event) bool { return coll.CompareString(a.Title, b.Title) > 0 }
	case SortPriceAsc:
		return func(a, b *models.Event) bool { return a.Pricing.Amount < b.Pricing.Amount }
	case SortPriceDesc:
		return func(a, b *models.Event) bool { return a.Pricing.Amount > b.Pricing.Amount }
	case SortParticipantsAsc:
		return func(a, b *models.Event) bool { return a.Participants.Current < b.Participants.Current }
	case SortParticipantsDesc:
		return func(a, b *models.Event) bool { return a.Participants.Current > b.Participants.Current }
	default:
		return lessFunc(DefaultSort)
	}
}

// titleCollator builds a fresh collator per sort; collators carry internal
// buffers and must not be shared between goroutines.
func titleCollator() *collate.Collator {
	return collate.New(language.Turkish, collate.IgnoreCase)
}
