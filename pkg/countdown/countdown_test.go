package countdown_test

import (
	"testing"
	"time"

	"github.com/limbo/flowmotion/pkg/countdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type attrs map[string]string

func (a attrs) Attr(name string) (string, bool) {
	v, ok := a[name]
	return v, ok
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDaysRemaining(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		Desc     string
		Start    time.Time
		Duration int
		Base     time.Time
		Result   int
	}{
		{
			Desc:     "same day",
			Start:    date(2024, 1, 1),
			Duration: 5,
			Base:     time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
			Result:   5,
		},
		{
			Desc:     "same day just before utc midnight",
			Start:    date(2024, 1, 1),
			Duration: 5,
			Base:     time.Date(2024, 1, 1, 23, 59, 0, 0, time.UTC),
			Result:   5,
		},
		{
			Desc:     "two days later",
			Start:    date(2024, 1, 1),
			Duration: 5,
			Base:     time.Date(2024, 1, 3, 0, 1, 0, 0, time.UTC),
			Result:   3,
		},
		{
			Desc:     "expired clamps to zero",
			Start:    date(2024, 1, 1),
			Duration: 5,
			Base:     date(2024, 3, 1),
			Result:   0,
		},
		{
			Desc:     "across a month boundary",
			Start:    date(2024, 1, 30),
			Duration: 10,
			Base:     date(2024, 2, 2),
			Result:   6,
		},
		{
			Desc:     "zero duration",
			Start:    date(2024, 1, 1),
			Duration: 0,
			Base:     date(2024, 1, 1),
			Result:   0,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			assert.Equal(t, tc.Result, countdown.DaysRemaining(tc.Start, tc.Duration, tc.Base))
		})
	}
}

func TestDaysRemainingIgnoresLocalOffset(t *testing.T) {
	t.Parallel()
	start := date(2024, 1, 1)
	base := time.Date(2024, 1, 1, 23, 59, 0, 0, time.UTC)
	for _, offset := range []int{-12, -5, 0, 3, 9, 14} {
		loc := time.FixedZone("test", offset*3600)
		assert.Equal(t, 5, countdown.DaysRemaining(start.In(loc), 5, base.In(loc)), "offset %d", offset)
	}
}

func TestDaysRemainingNeverNegative(t *testing.T) {
	t.Parallel()
	start := date(2024, 1, 1)
	for duration := 0; duration < 20; duration++ {
		for days := 0; days < 40; days++ {
			got := countdown.DaysRemaining(start, duration, start.AddDate(0, 0, days))
			assert.GreaterOrEqual(t, got, 0)
			if days == 0 {
				assert.Equal(t, duration, got)
			}
		}
	}
}

func TestNextOccurrence(t *testing.T) {
	t.Parallel()
	now := time.Date(2024, 5, 10, 14, 30, 15, 0, time.UTC)

	t.Run("later today", func(t *testing.T) {
		got := countdown.NextOccurrence(18, 0, now)
		assert.Equal(t, time.Date(2024, 5, 10, 18, 0, 0, 0, time.UTC), got)
	})

	t.Run("earlier rolls exactly one day", func(t *testing.T) {
		for h := 0; h < 14; h++ {
			for _, m := range []int{0, 15, 59} {
				got := countdown.NextOccurrence(h, m, now)
				assert.Equal(t, time.Date(2024, 5, 11, h, m, 0, 0, time.UTC), got)
				assert.Positive(t, countdown.Remaining(h, m, now))
			}
		}
	})

	t.Run("exactly now rolls", func(t *testing.T) {
		exact := time.Date(2024, 5, 10, 14, 30, 0, 0, time.UTC)
		assert.Equal(t, 24*time.Hour, countdown.Remaining(14, 30, exact))
	})

	t.Run("keeps location", func(t *testing.T) {
		loc := time.FixedZone("plus3", 3*3600)
		got := countdown.NextOccurrence(9, 0, now.In(loc))
		assert.Equal(t, loc, got.Location())
		assert.Equal(t, 9, got.Hour())
	})
}

func TestFormat(t *testing.T) {
	t.Parallel()
	d := 3*time.Hour + 5*time.Minute + 9*time.Second + 400*time.Millisecond
	assert.Equal(t, "03:05 remaining", countdown.FormatCompact(d, false))
	assert.Equal(t, "03:05:09 remaining", countdown.FormatCompact(d, true))
	assert.Equal(t, "03h 05m remaining", countdown.FormatVerbose(d, false))
	assert.Equal(t, "03h 05m 09s remaining", countdown.FormatVerbose(d, true))
	assert.Equal(t, "00:00:00 remaining", countdown.FormatCompact(-time.Second, true))
	assert.Equal(t, "24h 00m remaining", countdown.FormatVerbose(24*time.Hour, false))
}

func TestParse(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		Desc  string
		Attrs attrs
		Mode  countdown.Mode
		Error error
		Check func(t *testing.T, d countdown.Descriptor)
	}{
		{
			Desc:  "days mode",
			Attrs: attrs{"data-start": "2024-01-01", "data-duration": "5"},
			Mode:  countdown.ModeDays,
			Check: func(t *testing.T, d countdown.Descriptor) {
				assert.Equal(t, date(2024, 1, 1), d.Start)
				assert.Equal(t, 5, d.Duration)
				assert.Nil(t, d.ServerTime)
			},
		},
		{
			Desc: "days mode with server time",
			Attrs: attrs{
				"data-start":       "2024-01-01",
				"data-duration":    "5",
				"data-server-time": "2024-01-01T23:59",
			},
			Mode: countdown.ModeDays,
			Check: func(t *testing.T, d countdown.Descriptor) {
				require.NotNil(t, d.ServerTime)
				assert.Equal(t, time.Date(2024, 1, 1, 23, 59, 0, 0, time.UTC), *d.ServerTime)
			},
		},
		{
			Desc: "rfc3339 server time",
			Attrs: attrs{
				"data-start":       "2024-01-01T08:00:00+02:00",
				"data-duration":    "3",
				"data-server-time": "2024-01-02T10:00:00Z",
			},
			Mode: countdown.ModeDays,
			Check: func(t *testing.T, d countdown.Descriptor) {
				require.NotNil(t, d.ServerTime)
				assert.Equal(t, 2, countdown.DaysRemaining(d.Start, d.Duration, *d.ServerTime))
			},
		},
		{
			Desc:  "bad duration falls through to time mode",
			Attrs: attrs{"data-start": "2024-01-01", "data-duration": "five", "data-time": "07:45"},
			Mode:  countdown.ModeTimeOfDay,
			Check: func(t *testing.T, d countdown.Descriptor) {
				assert.Equal(t, 7, d.Hour)
				assert.Equal(t, 45, d.Minute)
			},
		},
		{
			Desc:  "days mode wins over time",
			Attrs: attrs{"data-start": "2024-01-01", "data-duration": "5", "data-time": "07:45"},
			Mode:  countdown.ModeDays,
		},
		{
			Desc:  "invalid clock",
			Attrs: attrs{"data-time": "25:00"},
			Error: countdown.ErrNoCountdown,
		},
		{
			Desc:  "nothing",
			Attrs: attrs{},
			Error: countdown.ErrNoCountdown,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			d, err := countdown.Parse(tc.Attrs)
			if tc.Error != nil {
				assert.ErrorIs(t, err, tc.Error)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.Mode, d.Mode)
			if tc.Check != nil {
				tc.Check(t, d)
			}
		})
	}
}

func TestParseInstant(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		Desc  string
		Raw   string
		Want  time.Time
		Error bool
	}{
		{Desc: "rfc3339", Raw: "2024-01-01T23:59:30Z", Want: time.Date(2024, 1, 1, 23, 59, 30, 0, time.UTC)},
		{Desc: "minutes with zulu", Raw: "2024-01-01T23:59Z", Want: time.Date(2024, 1, 1, 23, 59, 0, 0, time.UTC)},
		{Desc: "minutes with offset", Raw: "2024-01-02T01:59+02:00", Want: time.Date(2024, 1, 1, 23, 59, 0, 0, time.UTC)},
		{Desc: "seconds without offset", Raw: "2024-01-01T23:59:30", Want: time.Date(2024, 1, 1, 23, 59, 30, 0, time.UTC)},
		{Desc: "minutes without offset", Raw: "2024-01-01T23:59", Want: time.Date(2024, 1, 1, 23, 59, 0, 0, time.UTC)},
		{Desc: "date", Raw: " 2024-01-01 ", Want: date(2024, 1, 1)},
		{Desc: "garbage", Raw: "yesterday", Error: true},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			got, err := countdown.ParseInstant(tc.Raw)
			if tc.Error {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tc.Want.Equal(got), "got %s", got)
		})
	}
}

func TestReminderWindows(t *testing.T) {
	t.Parallel()
	ref := date(2024, 6, 1)
	w := countdown.ReminderWindows(0, 2, 5*time.Minute, 5*time.Minute, ref)
	assert.Equal(t, time.Date(2024, 5, 31, 23, 57, 0, 0, time.UTC), w.Pre)
	assert.Equal(t, time.Date(2024, 6, 1, 0, 2, 0, 0, time.UTC), w.Main)
	assert.Equal(t, time.Date(2024, 6, 1, 0, 7, 0, 0, time.UTC), w.Post)
}
