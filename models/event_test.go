package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParticipantsDerivations(t *testing.T) {
	tests := []struct {
		name          string
		p             Participants
		wantRemaining int
		wantFull      bool
	}{
		{"unlimited", Participants{Max: 0, Current: 500}, -1, false},
		{"open_spots", Participants{Max: 100, Current: 40}, 60, false},
		{"exactly_full", Participants{Max: 50, Current: 50}, 0, true},
		{"over_capacity", Participants{Max: 50, Current: 55}, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantRemaining, tt.p.Remaining())
			assert.Equal(t, tt.wantFull, tt.p.IsFull())
		})
	}
}

func TestPricingDerivations(t *testing.T) {
	assert.True(t, Pricing{Amount: 0}.IsFree())
	assert.True(t, Pricing{Amount: -10}.IsFree())
	assert.False(t, Pricing{Amount: 0.01}.IsFree())

	assert.Equal(t, "Free", Pricing{Amount: 0, Currency: "TRY"}.Display())
	assert.Equal(t, "250.00 TRY", Pricing{Amount: 250, Currency: "TRY"}.Display())
	assert.Equal(t, "19.90 EUR", Pricing{Amount: 19.9, Currency: "EUR"}.Display())
	assert.Equal(t, "100.00 TRY", Pricing{Amount: 100}.Display(), "currency defaults to TRY")
}

func TestLocationFullAddressSkipsEmptyParts(t *testing.T) {
	loc := Location{
		Name:     "Moda Sahnesi",
		City:     "İstanbul",
		District: "Kadıköy",
	}
	assert.Equal(t, "Moda Sahnesi, Kadıköy, İstanbul", loc.FullAddress())

	assert.Equal(t, "", Location{}.FullAddress())
}

func TestUserPasswordRoundTrip(t *testing.T) {
	u := &User{}
	assert.NoError(t, u.SetPassword("sup3rsecret"))
	assert.NotEqual(t, "sup3rsecret", u.PasswordHash)
	assert.True(t, u.CheckPassword("sup3rsecret"))
	assert.False(t, u.CheckPassword("wrong"))
}

func TestHasCategory(t *testing.T) {
	ev := Event{CategoryIDs: []string{"music", "outdoor"}}
	assert.True(t, ev.HasCategory("outdoor"))
	assert.False(t, ev.HasCategory("sports"))
}
