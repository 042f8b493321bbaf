package main

import (
	"context"
	"time"
)

// TransactionFilter selects a subset of the dataset. The date window is
// always present; the remaining fields narrow it further when set.
type TransactionFilter struct {
	Start time.Time
	End   time.Time

	// Search matches title or description as a case-insensitive
	// substring, or the price exactly when the term parses as a
	// number. A non-numeric term leaves the price branch unmatchable
	// rather than failing.
	Search string

	// Inclusive price bounds, used by the histogram buckets.
	PriceMin *float64
	PriceMax *float64

	// Sold narrows to sold/unsold transactions when set.
	Sold *bool
}

// TransactionStore is the read surface the engine queries. Results from
// FindTransactions come back ordered by date of sale, newest first;
// ties keep whatever stable order the backing store provides.
type TransactionStore interface {
	FindTransactions(ctx context.Context, f TransactionFilter, skip, limit int) ([]Transaction, error)
	CountTransactions(ctx context.Context, f TransactionFilter) (int64, error)
	SumPrice(ctx context.Context, f TransactionFilter) (float64, error)
	CountByCategory(ctx context.Context, f TransactionFilter) (map[string]int64, error)
}

// TransactionLoader is the write surface used only by the one-time
// dataset load. Nothing mutates transactions after that.
type TransactionLoader interface {
	CountAll(ctx context.Context) (int64, error)
	InsertTransactions(ctx context.Context, transactions []Transaction) error
}
