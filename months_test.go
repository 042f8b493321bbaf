package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveMonthRange(t *testing.T) {
	t.Run("explicit year-month form", func(t *testing.T) {
		r, err := resolveMonthRange("2023-07")

		require.NoError(t, err)
		assert.Equal(t, time.Date(2023, time.July, 1, 0, 0, 0, 0, time.UTC), r.Start)
		assert.Equal(t, time.Date(2023, time.July, 31, 23, 59, 59, 999000000, time.UTC), r.End)
	})

	t.Run("numeric and name forms resolve identically", func(t *testing.T) {
		byNumber, err := resolveMonthRange("3")
		require.NoError(t, err)

		byName, err := resolveMonthRange("march")
		require.NoError(t, err)

		byUpperName, err := resolveMonthRange("March")
		require.NoError(t, err)

		assert.Equal(t, byNumber, byName)
		assert.Equal(t, byNumber, byUpperName)
		assert.Equal(t, time.Date(2022, time.March, 1, 0, 0, 0, 0, time.UTC), byNumber.Start)
		assert.Equal(t, time.Date(2022, time.March, 31, 23, 59, 59, 999000000, time.UTC), byNumber.End)
	})

	t.Run("end bound is last instant of the month", func(t *testing.T) {
		cases := map[string]time.Time{
			"2022-01": time.Date(2022, time.January, 31, 23, 59, 59, 999000000, time.UTC),
			"2022-04": time.Date(2022, time.April, 30, 23, 59, 59, 999000000, time.UTC),
			"2022-12": time.Date(2022, time.December, 31, 23, 59, 59, 999000000, time.UTC),
		}
		for selector, want := range cases {
			r, err := resolveMonthRange(selector)
			require.NoError(t, err, selector)
			assert.Equal(t, want, r.End, selector)
		}
	})

	t.Run("february end bound follows leap years", func(t *testing.T) {
		leap, err := resolveMonthRange("2024-02")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, time.February, 29, 23, 59, 59, 999000000, time.UTC), leap.End)

		regular, err := resolveMonthRange("2022-02")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2022, time.February, 28, 23, 59, 59, 999000000, time.UTC), regular.End)
	})

	t.Run("december range does not spill into next year", func(t *testing.T) {
		r, err := resolveMonthRange("12")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2022, time.December, 1, 0, 0, 0, 0, time.UTC), r.Start)
		assert.Equal(t, 2022, r.End.Year())
	})

	t.Run("invalid selectors fail, never default", func(t *testing.T) {
		for _, selector := range []string{"13", "0", "2022-13", "2022-00", "notamonth", "", "march 2022"} {
			_, err := resolveMonthRange(selector)
			assert.ErrorIs(t, err, ErrInvalidMonth, selector)
		}
	})
}
