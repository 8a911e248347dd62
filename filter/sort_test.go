package filter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/emre/event-discovery-go/models"
)

func titles(events []models.Event) []string {
	out := make([]string, len(events))
	for i, e := range events {
		out[i] = e.Title
	}
	return out
}

func TestSortByEachOption(t *testing.T) {
	base := []models.Event{
		makeEvent(func(e *models.Event) {
			e.Title = "B"
			e.Pricing.Amount = 100
			e.StartDate = time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)
			e.Participants.Current = 30
		}),
		makeEvent(func(e *models.Event) {
			e.Title = "A"
			e.Pricing.Amount = 50
			e.StartDate = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
			e.Participants.Current = 10
		}),
		makeEvent(func(e *models.Event) {
			e.Title = "C"
			e.Pricing.Amount = 75
			e.StartDate = time.Date(2025, 1, 3, 0, 0, 0, 0, time.UTC)
			e.Participants.Current = 20
		}),
	}

	tests := []struct {
		opt  SortOption
		want []string
	}{
		{SortDateAsc, []string{"A", "B", "C"}},
		{SortDateDesc, []string{"C", "B", "A"}},
		{SortTitleAsc, []string{"A", "B", "C"}},
		{SortTitleDesc, []string{"C", "B", "A"}},
		{SortPriceAsc, []string{"A", "C", "B"}},
		{SortPriceDesc, []string{"B", "C", "A"}},
		{SortParticipantsAsc, []string{"A", "C", "B"}},
		{SortParticipantsDesc, []string{"B", "C", "A"}},
	}
	for _, tt := range tests {
		t.Run(string(tt.opt), func(t *testing.T) {
			events := make([]models.Event, len(base))
			copy(events, base)
			Sort(events, tt.opt)
			assert.Equal(t, tt.want, titles(events))
		})
	}
}

func TestSortIsIdempotent(t *testing.T) {
	events := []models.Event{
		makeEvent(func(e *models.Event) { e.Title = "B"; e.Pricing.Amount = 100 }),
		makeEvent(func(e *models.Event) { e.Title = "A"; e.Pricing.Amount = 50 }),
		makeEvent(func(e *models.Event) { e.Title = "C"; e.Pricing.Amount = 75 }),
	}
	Sort(events, SortPriceAsc)
	first := titles(events)
	Sort(events, SortPriceAsc)
	assert.Equal(t, first, titles(events))
}

func TestSortIsStable(t *testing.T) {
	// Same price everywhere: relative input order must survive.
	events := []models.Event{
		makeEvent(func(e *models.Event) { e.Title = "first"; e.Pricing.Amount = 100 }),
		makeEvent(func(e *models.Event) { e.Title = "second"; e.Pricing.Amount = 100 }),
		makeEvent(func(e *models.Event) { e.Title = "third"; e.Pricing.Amount = 100 }),
	}
	Sort(events, SortPriceAsc)
	assert.Equal(t, []string{"first", "second", "third"}, titles(events))
	Sort(events, SortPriceDesc)
	assert.Equal(t, []string{"first", "second", "third"}, titles(events))
}

func TestTitleSortIsLocaleAwareCaseInsensitive(t *testing.T) {
	events := []models.Event{
		makeEvent(func(e *models.Event) { e.Title = "izmir buluşması" }),
		makeEvent(func(e *models.Event) { e.Title = "Ankara Kitap Kulübü" }),
		makeEvent(func(e *models.Event) { e.Title = "İstanbul Koşusu" }),
	}
	Sort(events, SortTitleAsc)
	// Byte order would push "İstanbul" (multi-byte İ) behind the ASCII
	// titles; Turkish collation keeps it between Ankara and izmir.
	assert.Equal(t, []string{"Ankara Kitap Kulübü", "İstanbul Koşusu", "izmir buluşması"}, titles(events))
}

func TestParseSortOptionFallsBackToDefault(t *testing.T) {
	assert.Equal(t, SortPriceAsc, ParseSortOption("price_asc"))
	assert.Equal(t, DefaultSort, ParseSortOption(""))
	assert.Equal(t, DefaultSort, ParseSortOption("garbage"))
}
