package filter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/emre/event-discovery-go/models"
)

func makeEvent(mutate func(*models.Event)) models.Event {
	ev := models.Event{
		Title:       "Açık Hava Konseri",
		CategoryIDs: []string{"music"},
		StartDate:   time.Date(2025, 6, 15, 19, 0, 0, 0, time.UTC),
		Location: models.Location{
			Name:     "Moda Sahnesi",
			City:     "İstanbul",
			District: "Kadıköy",
		},
		Participants: models.Participants{Max: 100, Current: 40},
		Pricing:      models.Pricing{Amount: 250, Currency: "TRY"},
	}
	if mutate != nil {
		mutate(&ev)
	}
	return ev
}

func TestEmptyCriteriaMatchesEverything(t *testing.T) {
	c := NewCriteria()
	events := []models.Event{
		makeEvent(nil),
		makeEvent(func(e *models.Event) { e.Pricing.Amount = 0 }),
		makeEvent(func(e *models.Event) { e.CategoryIDs = nil }),
	}
	for i := range events {
		assert.True(t, c.Matches(&events[i]))
	}
}

func TestMatchIsPure(t *testing.T) {
	c := NewCriteria()
	c.SetLocation("kadıköy")
	ev := makeEvent(nil)
	first := c.Matches(&ev)
	second := c.Matches(&ev)
	assert.Equal(t, first, second)
	assert.True(t, first)
}

func TestCategoryGroupIsOrWithin(t *testing.T) {
	c := NewCriteria()
	c.SetCategories([]string{"music", "theatre"})

	ev := makeEvent(nil) // music
	assert.True(t, c.Matches(&ev))

	ev = makeEvent(func(e *models.Event) { e.CategoryIDs = []string{"sports"} })
	assert.False(t, c.Matches(&ev))

	ev = makeEvent(func(e *models.Event) { e.CategoryIDs = []string{"sports", "theatre"} })
	assert.True(t, c.Matches(&ev))
}

func TestDateBoundsCompareEventStartOnly(t *testing.T) {
	c := NewCriteria()
	c.SetStartDate(tptr(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)))
	c.SetEndDate(tptr(time.Date(2025, 6, 30, 23, 59, 59, 0, time.UTC)))

	in := makeEvent(nil)
	assert.True(t, c.Matches(&in))

	early := makeEvent(func(e *models.Event) {
		e.StartDate = time.Date(2025, 5, 31, 23, 0, 0, 0, time.UTC)
	})
	assert.False(t, c.Matches(&early))

	// An event starting inside the window but running past it still matches;
	// its own end date is never considered.
	long := makeEvent(func(e *models.Event) {
		end := time.Date(2025, 7, 10, 0, 0, 0, 0, time.UTC)
		e.EndDate = &end
	})
	assert.True(t, c.Matches(&long))
}

func TestPriceBoundsAreInclusive(t *testing.T) {
	c := NewCriteria()
	c.SetMinPrice(fptr(250))
	c.SetMaxPrice(fptr(250))
	ev := makeEvent(nil)
	assert.True(t, c.Matches(&ev))

	cheaper := makeEvent(func(e *models.Event) { e.Pricing.Amount = 249.99 })
	assert.False(t, c.Matches(&cheaper))
}

func TestLocationMatchIsCaseInsensitiveAcrossFields(t *testing.T) {
	tests := []struct {
		name   string
		query  string
		mutate func(*models.Event)
		want   bool
	}{
		{"district_different_case", "Kadıköy", func(e *models.Event) { e.Location.District = "kadıköy" }, true},
		{"city_turkish_dotted_i", "istanbul", nil, true},
		{"venue_name", "moda", nil, true},
		{"address_line", "caferağa", func(e *models.Event) { e.Location.AddressLine1 = "Caferağa Mah. 12" }, true},
		{"no_field_contains", "Ankara", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCriteria()
			c.SetLocation(tt.query)
			ev := makeEvent(tt.mutate)
			assert.Equal(t, tt.want, c.Matches(&ev))
		})
	}
}

func TestParticipantsFilterReadsCurrentAttendance(t *testing.T) {
	c := NewCriteria()
	c.SetMinParticipants(iptr(10))

	quiet := makeEvent(func(e *models.Event) { e.Participants.Current = 5 })
	assert.False(t, c.Matches(&quiet))

	// Inclusive bound.
	atBound := makeEvent(func(e *models.Event) { e.Participants.Current = 10 })
	assert.True(t, c.Matches(&atBound))

	// A big venue with few attendees is still excluded: the group filters on
	// attendance, not capacity.
	bigVenue := makeEvent(func(e *models.Event) {
		e.Participants.Max = 5000
		e.Participants.Current = 3
	})
	assert.False(t, c.Matches(&bigVenue))
}

func TestGroupsAreAnded(t *testing.T) {
	c := NewCriteria()
	c.SetCategories([]string{"music"})
	c.SetMaxPrice(fptr(100))

	ev := makeEvent(nil) // music but 250 TRY
	assert.False(t, c.Matches(&ev))

	cheapMusic := makeEvent(func(e *models.Event) { e.Pricing.Amount = 50 })
	assert.True(t, c.Matches(&cheapMusic))
}

func TestApplyKeepsInputOrderAndInput(t *testing.T) {
	c := NewCriteria()
	c.SetMaxPrice(fptr(300))
	events := []models.Event{
		makeEvent(func(e *models.Event) { e.Title = "first"; e.Pricing.Amount = 100 }),
		makeEvent(func(e *models.Event) { e.Title = "skipped"; e.Pricing.Amount = 500 }),
		makeEvent(func(e *models.Event) { e.Title = "second"; e.Pricing.Amount = 200 }),
	}
	got := c.Apply(events)
	assert.Len(t, got, 2)
	assert.Equal(t, "first", got[0].Title)
	assert.Equal(t, "second", got[1].Title)
	assert.Len(t, events, 3)
	assert.Equal(t, "skipped", events[1].Title)
}
