package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-07-07")
	require.NoError(t, err)
	assert.Equal(t, Date{Year: 2026, Month: time.July, Day: 7}, d)

	for _, bad := range []string{"", "2026-7-7", "07/07/2026", "2026-02-30"} {
		_, err := ParseDate(bad)
		assert.Error(t, err, bad)
	}
}

func TestDateOf_UsesExplicitZone(t *testing.T) {
	// 23:30 UTC on June 30 is already July 1 in Tokyo.
	ts := time.Date(2026, time.June, 30, 23, 30, 0, 0, time.UTC)
	tokyo := time.FixedZone("JST", 9*60*60)

	assert.Equal(t, NewDate(2026, time.June, 30), DateOf(ts, time.UTC))
	assert.Equal(t, NewDate(2026, time.July, 1), DateOf(ts, tokyo))
	assert.Equal(t, NewDate(2026, time.June, 30), DateOf(ts, nil))
}

func TestNewDate_Normalizes(t *testing.T) {
	assert.Equal(t, Date{Year: 2026, Month: time.July, Day: 1}, NewDate(2026, time.June, 31))
}

func TestDaysUntil(t *testing.T) {
	tests := []struct {
		name string
		from Date
		to   Date
		want int
	}{
		{"one night", NewDate(2026, 7, 7), NewDate(2026, 7, 8), 1},
		{"week across month end", NewDate(2026, 6, 30), NewDate(2026, 7, 7), 7},
		{"same day", NewDate(2026, 7, 7), NewDate(2026, 7, 7), 0},
		{"inverted", NewDate(2026, 7, 7), NewDate(2026, 6, 30), -7},
		{"leap year", NewDate(2028, 2, 28), NewDate(2028, 3, 1), 2},
		{"year boundary", NewDate(2026, 12, 31), NewDate(2027, 1, 1), 1},
		{"four centuries", NewDate(2000, 1, 1), NewDate(2400, 1, 1), 146097},
		{"four centuries inverted", NewDate(2400, 1, 1), NewDate(2000, 1, 1), -146097},
		{"whole calendar", NewDate(1, 1, 1), NewDate(9999, 12, 31), 3652058},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.DaysUntil(tt.to))
		})
	}
}

func TestDateComparisons(t *testing.T) {
	a := NewDate(2026, 7, 7)
	b := NewDate(2026, 7, 8)

	assert.True(t, a.Before(b))
	assert.False(t, b.Before(a))
	assert.True(t, b.After(a))
	assert.False(t, a.Before(a))
	assert.Equal(t, b, a.AddDays(1))
}

func TestDateIsZero(t *testing.T) {
	assert.True(t, Date{}.IsZero())
	assert.False(t, NewDate(2026, 1, 1).IsZero())
}

func TestDateJSON(t *testing.T) {
	in := DateRange{CheckIn: NewDate(2026, 7, 7), CheckOut: NewDate(2026, 7, 9)}
	data, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{"check_in":"2026-07-07","check_out":"2026-07-09"}`, string(data))

	var out DateRange
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, in, out)

	var missing DateRange
	require.NoError(t, json.Unmarshal([]byte(`{"check_in":"","check_out":"2026-07-09"}`), &missing))
	assert.True(t, missing.CheckIn.IsZero())

	assert.Error(t, json.Unmarshal([]byte(`{"check_in":"tomorrow"}`), &out))
}

func TestDateRange_Nights(t *testing.T) {
	r := DateRange{CheckIn: NewDate(2026, 6, 30), CheckOut: NewDate(2026, 7, 7)}
	assert.Equal(t, 7, r.Nights())
	assert.Equal(t, "2026-06-30 -> 2026-07-07", r.String())

	long := DateRange{CheckIn: NewDate(2000, 1, 1), CheckOut: NewDate(2400, 1, 1)}
	assert.Equal(t, 146097, long.Nights())
}

func TestDateRange_Overlaps(t *testing.T) {
	d := func(day int) Date { return NewDate(2026, 7, day) }
	existing := DateRange{CheckIn: d(7), CheckOut: d(9)}

	tests := []struct {
		name  string
		other DateRange
		want  bool
	}{
		{"identical", DateRange{d(7), d(9)}, true},
		{"starts inside", DateRange{d(8), d(10)}, true},
		{"ends inside", DateRange{d(5), d(8)}, true},
		{"contains", DateRange{d(6), d(10)}, true},
		{"contained", DateRange{d(7), d(8)}, true},
		{"adjacent after", DateRange{d(9), d(11)}, false},
		{"adjacent before", DateRange{d(5), d(7)}, false},
		{"disjoint", DateRange{d(1), d(3)}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, existing.Overlaps(tt.other))
			assert.Equal(t, tt.want, tt.other.Overlaps(existing), "overlap must be symmetric")
		})
	}
}

func TestDateRange_OverlapSymmetryExhaustive(t *testing.T) {
	base := NewDate(2026, 7, 1)
	for a1 := 0; a1 < 6; a1++ {
		for a2 := a1 + 1; a2 <= 6; a2++ {
			for b1 := 0; b1 < 6; b1++ {
				for b2 := b1 + 1; b2 <= 6; b2++ {
					a := DateRange{base.AddDays(a1), base.AddDays(a2)}
					b := DateRange{base.AddDays(b1), base.AddDays(b2)}
					require.Equal(t, a.Overlaps(b), b.Overlaps(a), "%s vs %s", a, b)
				}
			}
		}
	}
}

func TestParseRoomType(t *testing.T) {
	rt, ok := ParseRoomType("junior_suite")
	assert.True(t, ok)
	assert.Equal(t, RoomTypeJuniorSuite, rt)

	_, ok = ParseRoomType("PENTHOUSE")
	assert.False(t, ok)

	_, ok = ParseRoomType("")
	assert.False(t, ok)
}
