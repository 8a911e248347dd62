package filter

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/emre/event-discovery-go/models"
)

// Matches decides whether one event passes the current criteria. Active
// groups are ANDed; a group with no bound set imposes no constraint. The
// check is pure and returns false on the first failing group.
func (c *Criteria) Matches(ev *models.Event) bool {
	if len(c.categoryIDs) > 0 && !c.matchesCategory(ev) {
		return false
	}
	// Only the event's start instant is compared; its own end date is not
	// considered.
	if c.StartDate != nil && ev.StartDate.Before(*c.StartDate) {
		return false
	}
	if c.EndDate != nil && ev.StartDate.After(*c.EndDate) {
		return false
	}
	if c.MinPrice != nil && ev.Pricing.Amount < *c.MinPrice {
		return false
	}
	if c.MaxPrice != nil && ev.Pricing.Amount > *c.MaxPrice {
		return false
	}
	if c.Location != "" && !c.matchesLocation(ev) {
		return false
	}
	// Participants bounds read current attendance, not capacity: this group
	// filters on popularity ("how many are going"), not on venue size.
	if c.MinParticipants != nil && ev.Participants.Current < *c.MinParticipants {
		return false
	}
	if c.MaxParticipants != nil && ev.Participants.Current > *c.MaxParticipants {
		return false
	}
	return true
}

// matchesCategory is an OR within the group: any shared category qualifies.
func (c *Criteria) matchesCategory(ev *models.Event) bool {
	for _, id := range ev.CategoryIDs {
		if _, ok := c.categoryIDs[id]; ok {
			return true
		}
	}
	return false
}

// matchesLocation does a case-insensitive substring search across the
// event's place name, first address line, city, district and the formatted
// full address. Any hit qualifies. Folding is Turkish-aware so that İ/i and
// I/ı pair up the way users expect.
func (c *Criteria) matchesLocation(ev *models.Event) bool {
	lower := cases.Lower(language.Turkish)
	needle := lower.String(strings.TrimSpace(c.Location))
	if needle == "" {
		return true
	}
	for _, hay := range []string{
		ev.Location.Name,
		ev.Location.AddressLine1,
		ev.Location.City,
		ev.Location.District,
		ev.Location.FullAddress(),
	} {
		if strings.Contains(lower.String(hay), needle) {
			return true
		}
	}
	return false
}

// Apply returns the events passing the criteria, in input order. The input
// slice is never mutated.
func (c *Criteria) Apply(events []models.Event) []models.Event {
	out := make([]models.Event, 0, len(events))
	for i := range events {
		if c.Matches(&events[i]) {
			out = append(out, events[i])
		}
	}
	return out
}
