package report

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wethinkt/go-suhoor/internal/i18n"
	"github.com/wethinkt/go-suhoor/internal/schedule"
)

func fixtures(t *testing.T) (*i18n.Catalog, *schedule.Timetable) {
	t.Helper()
	cat, err := i18n.NewCatalog()
	require.NoError(t, err)

	tt, err := schedule.New("Test", time.UTC,
		[]time.Time{
			time.Date(2024, 3, 11, 4, 43, 0, 0, time.UTC),
			time.Date(2024, 3, 12, 4, 41, 0, 0, time.UTC),
			time.Date(2024, 3, 13, 4, 38, 0, 0, time.UTC),
		},
		[]time.Time{
			time.Date(2024, 3, 11, 18, 2, 0, 0, time.UTC),
			time.Date(2024, 3, 12, 18, 4, 0, 0, time.UTC),
			time.Date(2024, 3, 13, 18, 5, 0, 0, time.UTC),
		})
	require.NoError(t, err)
	return cat, tt
}

func TestBuildNextUpcoming(t *testing.T) {
	cat, tt := fixtures(t)
	now := time.Date(2024, 3, 11, 12, 0, 0, 0, time.UTC)

	n := BuildNext(cat, tt, now, i18n.English, schedule.PolicyUpcoming)
	assert.Equal(t, schedule.StatusActive, n.Status)
	assert.Equal(t, "en", n.Language)
	assert.Equal(t, "upcoming", n.Policy)
	require.Len(t, n.Events, 2)

	assert.Equal(t, schedule.Suhoor, n.Events[0].Kind)
	assert.Equal(t, "March 12, 04:41", n.Events[0].Display)
	assert.Equal(t, "in 16h 41m", n.Events[0].Countdown)
	assert.Equal(t, "Iftar", n.Events[1].Label)
	assert.Equal(t, "March 11, 18:02", n.Events[1].Display)
}

func TestBuildNextAbsolute(t *testing.T) {
	cat, tt := fixtures(t)
	now := time.Date(2024, 3, 11, 12, 0, 0, 0, time.UTC)

	n := BuildNext(cat, tt, now, i18n.English, schedule.PolicyAbsolute)
	require.Len(t, n.Events, 2)
	assert.Equal(t, "March 11, 04:43", n.Events[0].Display)
	assert.Empty(t, n.Events[0].Countdown)
}

func TestBuildNextLocalized(t *testing.T) {
	cat, tt := fixtures(t)
	now := time.Date(2024, 3, 11, 12, 0, 0, 0, time.UTC)

	n := BuildNext(cat, tt, now, i18n.Arabic, schedule.PolicyUpcoming)
	require.Len(t, n.Events, 2)
	assert.Equal(t, "ar", n.Language)
	assert.Contains(t, n.Events[1].Display, "مارس ١١")
	assert.NotContains(t, n.Events[1].Display, "March")
}

func TestBuildNextOutsidePeriod(t *testing.T) {
	cat, tt := fixtures(t)

	before := BuildNext(cat, tt, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), i18n.English, schedule.PolicyUpcoming)
	assert.Equal(t, schedule.StatusBefore, before.Status)
	assert.Equal(t, "It's not Ramadan", before.Notice)
	assert.NotEmpty(t, before.Detail)
	assert.Len(t, before.Events, 2)

	after := BuildNext(cat, tt, time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC), i18n.English, schedule.PolicyUpcoming)
	assert.Equal(t, schedule.StatusEnded, after.Status)
	assert.Equal(t, cat.Phrase(i18n.PhrasePeriodEnded, i18n.English), after.Notice)
	assert.Empty(t, after.Events)

	data, err := json.Marshal(after)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"status":"ended"`)
	assert.Contains(t, string(data), `"events":[]`)
}

func TestBuildNextSameDay(t *testing.T) {
	cat, _ := fixtures(t)
	tt, err := schedule.New("Dup", time.UTC,
		[]time.Time{
			time.Date(2024, 3, 29, 4, 6, 0, 0, time.UTC),
			time.Date(2024, 3, 29, 4, 4, 0, 0, time.UTC),
		},
		[]time.Time{time.Date(2024, 3, 29, 18, 33, 0, 0, time.UTC)})
	require.NoError(t, err)

	n := BuildNext(cat, tt, time.Date(2024, 3, 29, 0, 0, 0, 0, time.UTC), i18n.Hindi, schedule.PolicyUpcoming)
	require.NotEmpty(t, n.Events)
	assert.Equal(t, []string{"०४:०६"}, n.Events[0].SameDay)
}

func TestBuildSchedule(t *testing.T) {
	cat, tt := fixtures(t)

	all := BuildSchedule(cat, tt, i18n.English)
	require.Len(t, all, 6)
	for i := 1; i < len(all); i++ {
		assert.False(t, all[i].At.Before(all[i-1].At))
	}
	assert.Equal(t, "March 11", all[0].Date)
	assert.Equal(t, "04:43", all[0].Time)

	iftar := BuildSchedule(cat, tt, i18n.Turkish, schedule.Iftar)
	require.Len(t, iftar, 3)
	for _, e := range iftar {
		assert.Equal(t, schedule.Iftar, e.Kind)
	}
	assert.Equal(t, "Mart 11", iftar[0].Date)
}
