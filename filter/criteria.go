package filter

import (
	"sort"
	"time"
)

// Group identifies one independently toggleable filter group. The active
// filter count shown in the UI badge counts groups, not individual bounds.
type Group string

const (
	GroupCategory     Group = "category"
	GroupDate         Group = "date"
	GroupPrice        Group = "price"
	GroupLocation     Group = "location"
	GroupParticipants Group = "participants"
)

// Selection records how a filter group last got its value: from a named
// preset or typed by hand. The two are mutually exclusive, last writer wins.
// The zero value means the group is untouched.
type Selection struct {
	Preset string
	Manual bool
}

func (s Selection) IsPreset() bool { return s.Preset != "" && !s.Manual }

// Criteria is the active set of inclusion constraints a user has configured.
// Bounds are pointers so "not set" is distinct from zero. All bounds are
// inclusive. Range validation (min <= max, numeric text) happens at the input
// boundary before values reach this type; every method here is total.
type Criteria struct {
	categoryIDs map[string]struct{}

	StartDate *time.Time
	EndDate   *time.Time

	MinPrice *float64
	MaxPrice *float64

	Location string

	MinParticipants *int
	MaxParticipants *int

	dateSel         Selection
	priceSel        Selection
	participantsSel Selection
	locationSel     Selection
}

// NewCriteria returns an empty criteria set that matches every event.
func NewCriteria() *Criteria {
	return &Criteria{categoryIDs: map[string]struct{}{}}
}

// Clear resets every group to its default. IsActive is false afterwards.
func (c *Criteria) Clear() {
	c.categoryIDs = map[string]struct{}{}
	c.StartDate, c.EndDate = nil, nil
	c.MinPrice, c.MaxPrice = nil, nil
	c.Location = ""
	c.MinParticipants, c.MaxParticipants = nil, nil
	c.dateSel, c.priceSel, c.participantsSel, c.locationSel = Selection{}, Selection{}, Selection{}, Selection{}
}

// ToggleCategory adds the category to the selected set, or removes it when
// already selected.
func (c *Criteria) ToggleCategory(id string) {
	if _, ok := c.categoryIDs[id]; ok {
		delete(c.categoryIDs, id)
		return
	}
	c.categoryIDs[id] = struct{}{}
}

// SetCategories replaces the selected category set.
func (c *Criteria) SetCategories(ids []string) {
	c.categoryIDs = make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if id != "" {
			c.categoryIDs[id] = struct{}{}
		}
	}
}

// Categories returns the selected category IDs in a stable order.
func (c *Criteria) Categories() []string {
	ids := make([]string, 0, len(c.categoryIDs))
	for id := range c.categoryIDs {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (c *Criteria) HasCategory(id string) bool {
	_, ok := c.categoryIDs[id]
	return ok
}

// Manual mutators. Each marks its group as hand-edited, which drops any
// preset highlight but keeps the other bound the preset filled in.

func (c *Criteria) SetStartDate(t *time.Time) {
	c.StartDate = t
	c.dateSel = Selection{Manual: true}
}

func (c *Criteria) SetEndDate(t *time.Time) {
	c.EndDate = t
	c.dateSel = Selection{Manual: true}
}

func (c *Criteria) SetMinPrice(v *float64) {
	c.MinPrice = v
	c.priceSel = Selection{Manual: true}
}

func (c *Criteria) SetMaxPrice(v *float64) {
	c.MaxPrice = v
	c.priceSel = Selection{Manual: true}
}

func (c *Criteria) SetLocation(q string) {
	c.Location = q
	c.locationSel = Selection{Manual: true}
}

func (c *Criteria) SetMinParticipants(v *int) {
	c.MinParticipants = v
	c.participantsSel = Selection{Manual: true}
}

func (c *Criteria) SetMaxParticipants(v *int) {
	c.MaxParticipants = v
	c.participantsSel = Selection{Manual: true}
}

// DateSelection reports how the date group was last set.
func (c *Criteria) DateSelection() Selection         { return c.dateSel }
func (c *Criteria) PriceSelection() Selection        { return c.priceSel }
func (c *Criteria) ParticipantsSelection() Selection { return c.participantsSel }
func (c *Criteria) LocationSelection() Selection     { return c.locationSel }

func (c *Criteria) dateActive() bool  { return c.StartDate != nil || c.EndDate != nil }
func (c *Criteria) priceActive() bool { return c.MinPrice != nil || c.MaxPrice != nil }
func (c *Criteria) participantsActive() bool {
	return c.MinParticipants != nil || c.MaxParticipants != nil
}
func (c *Criteria) locationActive() bool { return c.Location != "" }

// IsActive reports whether any filter group constrains the result.
func (c *Criteria) IsActive() bool {
	return len(c.categoryIDs) > 0 || c.dateActive() || c.priceActive() ||
		c.locationActive() || c.participantsActive()
}

// ActiveFilterCount returns how many groups have any bound set, 0 to 5.
// Setting both bounds of one range still counts once.
func (c *Criteria) ActiveFilterCount() int {
	n := 0
	if len(c.categoryIDs) > 0 {
		n++
	}
	if c.dateActive() {
		n++
	}
	if c.priceActive() {
		n++
	}
	if c.locationActive() {
		n++
	}
	if c.participantsActive() {
		n++
	}
	return n
}
