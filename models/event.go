package models

import (
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Location is the denormalized place an event happens at. Latitude and
// longitude are kept as text because they come straight from the map picker
// and are never computed server side.
type Location struct {
	Name         string `bson:"name" json:"name"`
	AddressLine1 string `bson:"address_line1,omitempty" json:"address_line1,omitempty"`
	AddressLine2 string `bson:"address_line2,omitempty" json:"address_line2,omitempty"`
	City         string `bson:"city,omitempty" json:"city,omitempty"`
	District     string `bson:"district,omitempty" json:"district,omitempty"`
	Latitude     string `bson:"lat,omitempty" json:"lat,omitempty"`
	Longitude    string `bson:"lng,omitempty" json:"lng,omitempty"`
}

// FullAddress joins the non-empty address parts into one display string.
func (l Location) FullAddress() string {
	var parts []string
	for _, p := range []string{l.Name, l.AddressLine1, l.AddressLine2, l.District, l.City} {
		if strings.TrimSpace(p) != "" {
			parts = append(parts, strings.TrimSpace(p))
		}
	}
	return strings.Join(parts, ", ")
}

// Participants tracks capacity. Max == 0 means unlimited.
type Participants struct {
	Max           int  `bson:"max" json:"max"`
	Current       int  `bson:"current" json:"current"`
	ShowRemaining bool `bson:"show_remaining" json:"show_remaining"`
}

// Remaining returns the number of open spots, or -1 when unlimited.
func (p Participants) Remaining() int {
	if p.Max <= 0 {
		return -1
	}
	left := p.Max - p.Current
	if left < 0 {
		return 0
	}
	return left
}

// IsFull reports whether the event has no open spots. Unlimited events are
// never full.
func (p Participants) IsFull() bool {
	return p.Max > 0 && p.Current >= p.Max
}

type AgeRestriction struct {
	Min *int `bson:"min,omitempty" json:"min,omitempty"`
	Max *int `bson:"max,omitempty" json:"max,omitempty"`
}

type Organizer struct {
	Name    string `bson:"name" json:"name"`
	Email   string `bson:"email,omitempty" json:"email,omitempty"`
	Phone   string `bson:"phone,omitempty" json:"phone,omitempty"`
	Website string `bson:"website,omitempty" json:"website,omitempty"`
}

// Pricing carries the entry fee. Amount <= 0 is treated as free.
type Pricing struct {
	Amount   float64 `bson:"amount" json:"amount"`
	Currency string  `bson:"currency" json:"currency"`
}

func (p Pricing) IsFree() bool {
	return p.Amount <= 0
}

// Display renders the price for listings, e.g. "250.00 TRY" or "Free".
func (p Pricing) Display() string {
	if p.IsFree() {
		return "Free"
	}
	cur := p.Currency
	if cur == "" {
		cur = "TRY"
	}
	return fmt.Sprintf("%.2f %s", p.Amount, cur)
}

type Event struct {
	ID                   primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	CreatorID            primitive.ObjectID   `bson:"creator_id" json:"creator_id"`
	Title                string               `bson:"title" json:"title"`
	Description          string               `bson:"description,omitempty" json:"description,omitempty"`
	CategoryIDs          []string             `bson:"category_ids" json:"category_ids"`
	StartDate            time.Time            `bson:"start_date" json:"start_date"`
	EndDate              *time.Time           `bson:"end_date,omitempty" json:"end_date,omitempty"`
	RegistrationDeadline *time.Time           `bson:"registration_deadline,omitempty" json:"registration_deadline,omitempty"`
	Location             Location             `bson:"location" json:"location"`
	Participants         Participants         `bson:"participants" json:"participants"`
	AgeRestriction       *AgeRestriction      `bson:"age_restriction,omitempty" json:"age_restriction,omitempty"`
	Organizer            Organizer            `bson:"organizer" json:"organizer"`
	Pricing              Pricing              `bson:"pricing" json:"pricing"`
	Images               []string             `bson:"images" json:"images"`
	Requirements         string               `bson:"requirements,omitempty" json:"requirements,omitempty"`
	SocialLinks          string               `bson:"social_links,omitempty" json:"social_links,omitempty"`
	ContactInfo          string               `bson:"contact_info,omitempty" json:"contact_info,omitempty"`
	AttendeeIDs          []primitive.ObjectID `bson:"attendee_ids,omitempty" json:"attendee_ids,omitempty"`
	CreatedAt            time.Time            `bson:"created_at" json:"created_at"`
	UpdatedAt            time.Time            `bson:"updated_at" json:"updated_at"`
}

// HasCategory reports whether the event is tagged with the given category.
func (e *Event) HasCategory(id string) bool {
	for _, c := range e.CategoryIDs {
		if c == id {
			return true
		}
	}
	return false
}
