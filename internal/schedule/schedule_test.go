package schedule

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(month time.Month, day, hour, minute int) time.Time {
	return time.Date(2024, month, day, hour, minute, 0, 0, time.UTC)
}

func TestFindNearest(t *testing.T) {
	list := []time.Time{
		at(time.March, 11, 4, 43),
		at(time.March, 12, 4, 41),
		at(time.March, 13, 4, 38),
	}
	now := at(time.March, 11, 12, 0)

	tests := []struct {
		name   string
		list   []time.Time
		now    time.Time
		policy Policy
		want   time.Time
		ok     bool
	}{
		{"upcoming skips past entries", list, now, PolicyUpcoming, list[1], true},
		{"absolute looks backwards", list, now, PolicyAbsolute, list[0], true},
		{"exact match is upcoming", list, list[2], PolicyUpcoming, list[2], true},
		{"before first entry", list, at(time.March, 1, 0, 0), PolicyUpcoming, list[0], true},
		{"after last entry upcoming", list, at(time.April, 1, 0, 0), PolicyUpcoming, time.Time{}, false},
		{"after last entry absolute", list, at(time.April, 1, 0, 0), PolicyAbsolute, list[2], true},
		{"empty list", nil, now, PolicyAbsolute, time.Time{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FindNearest(tt.list, tt.now, tt.policy)
			assert.Equal(t, tt.ok, ok)
			assert.True(t, tt.want.Equal(got), "got %v, want %v", got, tt.want)
		})
	}
}

func TestFindNearestTieKeepsFirst(t *testing.T) {
	now := at(time.March, 12, 12, 0)
	before := now.Add(-time.Hour)
	after := now.Add(time.Hour)

	got, ok := FindNearest([]time.Time{after, before}, now, PolicyAbsolute)
	require.True(t, ok)
	assert.True(t, got.Equal(after))

	got, ok = FindNearest([]time.Time{before, after}, now, PolicyAbsolute)
	require.True(t, ok)
	assert.True(t, got.Equal(before))
}

func TestFindNearestUnsorted(t *testing.T) {
	list := []time.Time{
		at(time.March, 20, 4, 23),
		at(time.March, 12, 4, 41),
		at(time.March, 15, 4, 34),
	}
	got, ok := FindNearest(list, at(time.March, 11, 0, 0), PolicyUpcoming)
	require.True(t, ok)
	assert.True(t, got.Equal(list[1]))
}

func TestFindNearestReturnsListElement(t *testing.T) {
	tt, err := Default()
	require.NoError(t, err)

	list := tt.Times(Suhoor)
	for _, policy := range []Policy{PolicyUpcoming, PolicyAbsolute} {
		for h := 0; h < 24*35; h += 7 {
			now := list[0].Add(time.Duration(h) * time.Hour)
			got, ok := FindNearest(list, now, policy)
			if !ok {
				continue
			}
			assert.Contains(t, list, got)
			if policy == PolicyUpcoming {
				assert.False(t, got.Before(now))
			}
		}
	}
}

func TestSameDay(t *testing.T) {
	list := []time.Time{
		at(time.March, 29, 4, 6),
		at(time.March, 29, 4, 4),
		at(time.March, 30, 4, 2),
	}
	got := SameDay(list, at(time.March, 29, 15, 0), time.UTC)
	assert.Equal(t, list[:2], got)

	assert.Empty(t, SameDay(list, at(time.March, 1, 0, 0), time.UTC))
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		in      string
		want    Kind
		wantErr bool
	}{
		{"suhoor", Suhoor, false},
		{"SEHRI", Suhoor, false},
		{" iftar ", Iftar, false},
		{"lunch", Suhoor, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseKind(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownKind)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParsePolicy(t *testing.T) {
	for in, want := range map[string]Policy{
		"":         PolicyUpcoming,
		"upcoming": PolicyUpcoming,
		"Next":     PolicyUpcoming,
		"absolute": PolicyAbsolute,
		"nearest":  PolicyAbsolute,
	} {
		got, err := ParsePolicy(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParsePolicy("sideways")
	assert.ErrorIs(t, err, ErrUnknownPolicy)
}

func TestEventJSON(t *testing.T) {
	data, err := json.Marshal(Event{Kind: Iftar, At: at(time.March, 11, 18, 2)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"kind":"iftar","at":"2024-03-11T18:02:00Z"}`, string(data))

	var e Event
	require.NoError(t, json.Unmarshal([]byte(`{"kind":"suhoor","at":"2024-03-11T04:43:00Z"}`), &e))
	assert.Equal(t, Suhoor, e.Kind)
}

func TestFixedClock(t *testing.T) {
	now := at(time.March, 11, 12, 0)
	var c Clock = FixedClock{At: now}
	assert.True(t, c.Now().Equal(now))
	assert.True(t, c.Now().Equal(c.Now()))

	before := time.Now()
	assert.False(t, RealClock{}.Now().Before(before))
}
