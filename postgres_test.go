package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildWhere(t *testing.T) {
	start := time.Date(2022, time.March, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2022, time.March, 31, 23, 59, 59, 999000000, time.UTC)

	t.Run("date window is always present with inclusive bounds", func(t *testing.T) {
		where, args := buildWhere(TransactionFilter{Start: start, End: end})

		assert.Equal(t, "WHERE date_of_sale >= $1 AND date_of_sale <= $2", where)
		assert.Equal(t, []any{start, end}, args)
	})

	t.Run("numeric search enables the exact price branch", func(t *testing.T) {
		where, args := buildWhere(TransactionFilter{Start: start, End: end, Search: "29.99"})

		assert.Contains(t, where, "(title ILIKE $3 OR description ILIKE $3 OR price = $4)")
		require.Len(t, args, 4)
		assert.Equal(t, "%29.99%", args[2])
		assert.Equal(t, 29.99, args[3])
	})

	t.Run("non-numeric search leaves the price branch unmatchable", func(t *testing.T) {
		_, args := buildWhere(TransactionFilter{Start: start, End: end, Search: "shirt"})

		require.Len(t, args, 4)
		assert.Equal(t, "%shirt%", args[2])
		assert.Equal(t, -1.0, args[3])
	})

	t.Run("price bounds and sold flag append in order", func(t *testing.T) {
		min, max := 101.0, 200.0
		sold := true
		where, args := buildWhere(TransactionFilter{
			Start:    start,
			End:      end,
			PriceMin: &min,
			PriceMax: &max,
			Sold:     &sold,
		})

		assert.Equal(t,
			"WHERE date_of_sale >= $1 AND date_of_sale <= $2 AND price >= $3 AND price <= $4 AND sold = $5",
			where)
		assert.Equal(t, []any{start, end, min, max, sold}, args)
	})
}
