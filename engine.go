package main

import (
	"context"
	"fmt"
	"math"
	"sort"

	"golang.org/x/sync/errgroup"
)

// priceRange is one fixed histogram bucket. The last bucket is open
// ended; its Max is a large finite sentinel so the inclusive
// price <= max predicate still applies.
type priceRange struct {
	Label string
	Min   float64
	Max   float64
}

const openEndedPriceMax = 999999

var priceRanges = []priceRange{
	{"0-100", 0, 100},
	{"101-200", 101, 200},
	{"201-300", 201, 300},
	{"301-400", 301, 400},
	{"401-500", 401, 500},
	{"501-600", 501, 600},
	{"601-700", 601, 700},
	{"701-800", 701, 800},
	{"801-900", 801, 900},
	{"901-above", 901, openEndedPriceMax},
}

// Engine answers month-scoped listing and aggregation queries against a
// transaction store. It holds no state beyond the store handle, so a
// single instance serves all requests.
type Engine struct {
	store TransactionStore
}

func NewEngine(store TransactionStore) *Engine {
	return &Engine{store: store}
}

// ListTransactions returns one page of transactions in the date window,
// optionally narrowed by a search term. The total is counted with a
// second query over the same predicate so the pagination metadata stays
// correct regardless of page size; a page past the end yields an empty
// row set, not an error.
func (e *Engine) ListTransactions(ctx context.Context, r DateRange, search string, page, limit int) (TransactionPage, error) {
	filter := TransactionFilter{Start: r.Start, End: r.End, Search: search}
	skip := (page - 1) * limit

	transactions, err := e.store.FindTransactions(ctx, filter, skip, limit)
	if err != nil {
		return TransactionPage{}, fmt.Errorf("list transactions: %w", err)
	}

	total, err := e.store.CountTransactions(ctx, filter)
	if err != nil {
		return TransactionPage{}, fmt.Errorf("count listing total: %w", err)
	}

	return TransactionPage{
		Transactions: transactions,
		Page:         page,
		TotalPages:   int(math.Ceil(float64(total) / float64(limit))),
		TotalItems:   total,
	}, nil
}

// Statistics computes total sales and sold/unsold counts for the date
// window. An empty window yields an all-zero row, never an absent one.
// The sum is rounded to 2 decimals here, at the boundary, so rounding
// error never compounds.
func (e *Engine) Statistics(ctx context.Context, r DateRange) (Statistics, error) {
	filter := TransactionFilter{Start: r.Start, End: r.End}

	total, err := e.store.SumPrice(ctx, filter)
	if err != nil {
		return Statistics{}, fmt.Errorf("statistics: %w", err)
	}

	sold := true
	soldCount, err := e.store.CountTransactions(ctx, TransactionFilter{Start: r.Start, End: r.End, Sold: &sold})
	if err != nil {
		return Statistics{}, fmt.Errorf("statistics sold count: %w", err)
	}

	unsold := false
	unsoldCount, err := e.store.CountTransactions(ctx, TransactionFilter{Start: r.Start, End: r.End, Sold: &unsold})
	if err != nil {
		return Statistics{}, fmt.Errorf("statistics unsold count: %w", err)
	}

	return Statistics{
		TotalSales:  math.Round(total*100) / 100,
		SoldItems:   soldCount,
		UnsoldItems: unsoldCount,
	}, nil
}

// PriceHistogram counts transactions per fixed price range. The ten
// bucket counts are independent reads, so they run concurrently; the
// result always has all ten buckets in their fixed order, zero counts
// included.
func (e *Engine) PriceHistogram(ctx context.Context, r DateRange) ([]PriceRangeCount, error) {
	histogram := make([]PriceRangeCount, len(priceRanges))

	g, gctx := errgroup.WithContext(ctx)
	for i, pr := range priceRanges {
		i, pr := i, pr
		g.Go(func() error {
			min, max := pr.Min, pr.Max
			count, err := e.store.CountTransactions(gctx, TransactionFilter{
				Start:    r.Start,
				End:      r.End,
				PriceMin: &min,
				PriceMax: &max,
			})
			if err != nil {
				return fmt.Errorf("histogram bucket %s: %w", pr.Label, err)
			}
			histogram[i] = PriceRangeCount{Range: pr.Label, Count: count}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return histogram, nil
}

// CategoryDistribution groups transactions in the date window by
// category. Categories are data-driven: absent ones produce no row, and
// an empty window yields an empty slice. Rows come back name-sorted so
// the output is deterministic.
func (e *Engine) CategoryDistribution(ctx context.Context, r DateRange) ([]CategoryCount, error) {
	counts, err := e.store.CountByCategory(ctx, TransactionFilter{Start: r.Start, End: r.End})
	if err != nil {
		return nil, fmt.Errorf("category distribution: %w", err)
	}

	distribution := make([]CategoryCount, 0, len(counts))
	for category, count := range counts {
		distribution = append(distribution, CategoryCount{Category: category, Count: count})
	}
	sort.Slice(distribution, func(i, j int) bool {
		return distribution[i].Category < distribution[j].Category
	})

	return distribution, nil
}
