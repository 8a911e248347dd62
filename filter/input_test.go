package filter

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePrice(t *testing.T) {
	tests := []struct {
		in      string
		want    *float64
		wantErr bool
	}{
		{"", nil, false},
		{"  ", nil, false},
		{"250", fptr(250), false},
		{"19.99", fptr(19.99), false},
		{"0", fptr(0), false},
		{"abc", nil, true},
		{"-5", nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParsePrice(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			if tt.want == nil {
				assert.Nil(t, got)
			} else {
				require.NotNil(t, got)
				assert.Equal(t, *tt.want, *got)
			}
		})
	}
}

func TestParseCountRejectsJunk(t *testing.T) {
	_, err := ParseCount("ten")
	assert.Error(t, err)
	_, err = ParseCount("-1")
	assert.Error(t, err)
	_, err = ParseCount("3.5")
	assert.Error(t, err)

	got, err := ParseCount("12")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 12, *got)
}

func TestParseDateAcceptsFallbackLayouts(t *testing.T) {
	for _, in := range []string{"2025-06-18", "2025-06-18 14:30", "2025-06-18T14:30:00Z"} {
		got, err := ParseDate(in)
		require.NoError(t, err, in)
		require.NotNil(t, got)
	}
	_, err := ParseDate("18/06/2025")
	assert.Error(t, err)
}

func TestFromQueryBuildsCriteria(t *testing.T) {
	q := url.Values{}
	q.Set("categories", "music,theatre")
	q.Set("start_date", "2025-06-01")
	q.Set("end_date", "2025-06-30")
	q.Set("min_price", "0")
	q.Set("max_price", "500")
	q.Set("location", "Kadıköy")
	q.Set("min_participants", "10")
	q.Set("sort", "price_asc")

	c, sortOpt, err := FromQuery(q)
	require.NoError(t, err)
	assert.Equal(t, SortPriceAsc, sortOpt)
	assert.Equal(t, []string{"music", "theatre"}, c.Categories())
	assert.Equal(t, 5, c.ActiveFilterCount())
	assert.Equal(t, "Kadıköy", c.Location)
}

func TestFromQueryRejectsInvertedRanges(t *testing.T) {
	q := url.Values{}
	q.Set("min_price", "500")
	q.Set("max_price", "100")
	_, _, err := FromQuery(q)
	assert.ErrorContains(t, err, "inverted")

	q = url.Values{}
	q.Set("start_date", "2025-07-01")
	q.Set("end_date", "2025-06-01")
	_, _, err = FromQuery(q)
	assert.ErrorContains(t, err, "inverted")

	q = url.Values{}
	q.Set("min_participants", "50")
	q.Set("max_participants", "10")
	_, _, err = FromQuery(q)
	assert.ErrorContains(t, err, "inverted")
}

func TestFromQueryRejectsMalformedNumbers(t *testing.T) {
	q := url.Values{}
	q.Set("min_price", "cheap")
	_, _, err := FromQuery(q)
	assert.Error(t, err)
}

func TestFromQueryEmptyYieldsInactiveCriteria(t *testing.T) {
	c, sortOpt, err := FromQuery(url.Values{})
	require.NoError(t, err)
	assert.False(t, c.IsActive())
	assert.Equal(t, DefaultSort, sortOpt)
}
