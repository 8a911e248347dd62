package filter

import "time"

// Presets are named shortcuts that fill one filter group with a predefined
// range. Applying a preset overwrites the group's bounds and tags the group
// with the preset name; a later manual edit keeps the values but drops the
// tag (see Criteria manual mutators).

type DatePreset string

const (
	DateToday       DatePreset = "today"
	DateTomorrow    DatePreset = "tomorrow"
	DateThisWeek    DatePreset = "this_week"
	DateThisWeekend DatePreset = "this_weekend"
	DateThisMonth   DatePreset = "this_month"
)

// Range resolves the preset against a reference instant. Bounds are whole
// days in the reference's time zone; the end bound is the last second of the
// final day so the comparison stays inclusive like every other range.
func (p DatePreset) Range(now time.Time) (start, end time.Time) {
	day := func(t time.Time) time.Time {
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	}
	endOf := func(t time.Time) time.Time {
		return day(t).Add(24*time.Hour - time.Second)
	}
	today := day(now)
	switch p {
	case DateToday:
		return today, endOf(now)
	case DateTomorrow:
		tm := today.AddDate(0, 0, 1)
		return tm, endOf(tm)
	case DateThisWeek:
		// Monday-based week.
		offset := (int(now.Weekday()) + 6) % 7
		monday := today.AddDate(0, 0, -offset)
		return monday, endOf(monday.AddDate(0, 0, 6))
	case DateThisWeekend:
		offset := (int(now.Weekday()) + 6) % 7
		saturday := today.AddDate(0, 0, 5-offset)
		return saturday, endOf(saturday.AddDate(0, 0, 1))
	case DateThisMonth:
		first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		return first, endOf(first.AddDate(0, 1, -1))
	default:
		return today, endOf(now)
	}
}

type PricePreset string

const (
	PriceFree    PricePreset = "free"
	PriceBudget  PricePreset = "budget"  // up to 100
	PriceMid     PricePreset = "mid"     // 100 - 500
	PricePremium PricePreset = "premium" // 500 and up
)

// Bounds returns the band as optional min/max. A nil bound is open.
func (p PricePreset) Bounds() (min, max *float64) {
	f := func(v float64) *float64 { return &v }
	switch p {
	case PriceFree:
		return f(0), f(0)
	case PriceBudget:
		return f(0), f(100)
	case PriceMid:
		return f(100), f(500)
	case PricePremium:
		return f(500), nil
	default:
		return nil, nil
	}
}

type ParticipantsPreset string

const (
	ParticipantsIntimate ParticipantsPreset = "intimate" // up to 10 attending
	ParticipantsMedium   ParticipantsPreset = "medium"   // 10 - 50
	ParticipantsCrowded  ParticipantsPreset = "crowded"  // 50 and up
)

// Bounds operate on current attendance, not capacity, matching the
// popularity semantics of the participants filter group.
func (p ParticipantsPreset) Bounds() (min, max *int) {
	n := func(v int) *int { return &v }
	switch p {
	case ParticipantsIntimate:
		return nil, n(10)
	case ParticipantsMedium:
		return n(10), n(50)
	case ParticipantsCrowded:
		return n(50), nil
	default:
		return nil, nil
	}
}

// LocationPresets are the districts offered as one-tap shortcuts in the
// filter sheet.
var LocationPresets = []string{
	"Kadıköy",
	"Beşiktaş",
	"Şişli",
	"Üsküdar",
	"Beyoğlu",
	"Bakırköy",
}

// ApplyDatePreset overwrites the date group with the preset's range resolved
// at now and tags the group with the preset.
func (c *Criteria) ApplyDatePreset(p DatePreset, now time.Time) {
	start, end := p.Range(now)
	c.StartDate, c.EndDate = &start, &end
	c.dateSel = Selection{Preset: string(p)}
}

func (c *Criteria) ApplyPricePreset(p PricePreset) {
	c.MinPrice, c.MaxPrice = p.Bounds()
	c.priceSel = Selection{Preset: string(p)}
}

func (c *Criteria) ApplyParticipantsPreset(p ParticipantsPreset) {
	c.MinParticipants, c.MaxParticipants = p.Bounds()
	c.participantsSel = Selection{Preset: string(p)}
}

// ApplyLocationPreset sets the location search string to a preset district.
func (c *Criteria) ApplyLocationPreset(name string) {
	c.Location = name
	c.locationSel = Selection{Preset: name}
}
