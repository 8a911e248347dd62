package filter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Wednesday.
var refNow = time.Date(2025, 6, 18, 14, 30, 0, 0, time.UTC)

func TestDatePresetRanges(t *testing.T) {
	tests := []struct {
		preset    DatePreset
		wantStart time.Time
		wantEnd   time.Time
	}{
		{DateToday,
			time.Date(2025, 6, 18, 0, 0, 0, 0, time.UTC),
			time.Date(2025, 6, 18, 23, 59, 59, 0, time.UTC)},
		{DateTomorrow,
			time.Date(2025, 6, 19, 0, 0, 0, 0, time.UTC),
			time.Date(2025, 6, 19, 23, 59, 59, 0, time.UTC)},
		{DateThisWeek,
			time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC),
			time.Date(2025, 6, 22, 23, 59, 59, 0, time.UTC)},
		{DateThisWeekend,
			time.Date(2025, 6, 21, 0, 0, 0, 0, time.UTC),
			time.Date(2025, 6, 22, 23, 59, 59, 0, time.UTC)},
		{DateThisMonth,
			time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2025, 6, 30, 23, 59, 59, 0, time.UTC)},
	}
	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			start, end := tt.preset.Range(refNow)
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.wantEnd, end)
		})
	}
}

func TestApplyPresetTagsTheGroup(t *testing.T) {
	c := NewCriteria()
	c.ApplyPricePreset(PriceMid)

	require.NotNil(t, c.MinPrice)
	require.NotNil(t, c.MaxPrice)
	assert.Equal(t, 100.0, *c.MinPrice)
	assert.Equal(t, 500.0, *c.MaxPrice)
	assert.True(t, c.PriceSelection().IsPreset())
	assert.Equal(t, string(PriceMid), c.PriceSelection().Preset)
}

func TestManualEditClearsPresetButKeepsOtherBound(t *testing.T) {
	c := NewCriteria()
	c.ApplyPricePreset(PriceMid) // 100 - 500

	c.SetMaxPrice(fptr(300))

	require.NotNil(t, c.MinPrice)
	assert.Equal(t, 100.0, *c.MinPrice, "preset-filled min must survive the manual max edit")
	assert.Equal(t, 300.0, *c.MaxPrice)
	assert.False(t, c.PriceSelection().IsPreset())
	assert.True(t, c.PriceSelection().Manual)
}

func TestPresetReplacesEarlierPresetInSameGroup(t *testing.T) {
	c := NewCriteria()
	c.ApplyPricePreset(PricePremium)
	c.ApplyPricePreset(PriceFree)

	require.NotNil(t, c.MaxPrice)
	assert.Equal(t, 0.0, *c.MaxPrice)
	assert.Equal(t, string(PriceFree), c.PriceSelection().Preset)
}

func TestParticipantsPresetUsesAttendanceBands(t *testing.T) {
	min, max := ParticipantsCrowded.Bounds()
	require.NotNil(t, min)
	assert.Equal(t, 50, *min)
	assert.Nil(t, max)
}

func TestDatePresetAppliesRange(t *testing.T) {
	c := NewCriteria()
	c.ApplyDatePreset(DateThisWeekend, refNow)

	require.NotNil(t, c.StartDate)
	require.NotNil(t, c.EndDate)
	assert.Equal(t, time.Saturday, c.StartDate.Weekday())
	assert.Equal(t, time.Sunday, c.EndDate.Weekday())
	assert.Equal(t, string(DateThisWeekend), c.DateSelection().Preset)
	assert.Equal(t, 1, c.ActiveFilterCount())
}
