package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// postgresStore implements TransactionStore and TransactionLoader over
// an explicit pgx pool handle passed in at construction.
type postgresStore struct {
	pool *pgxpool.Pool
}

func newPostgresStore(pool *pgxpool.Pool) *postgresStore {
	return &postgresStore{pool: pool}
}

// buildWhere renders a TransactionFilter as a WHERE clause with
// positional arguments. Every query primitive goes through it so the
// listing, counts and aggregates all see the same predicate.
func buildWhere(f TransactionFilter) (string, []any) {
	conditions := []string{}
	args := []any{}

	arg := func(v any) string {
		args = append(args, v)
		return "$" + strconv.Itoa(len(args))
	}

	conditions = append(conditions, "date_of_sale >= "+arg(f.Start))
	conditions = append(conditions, "date_of_sale <= "+arg(f.End))

	if f.Search != "" {
		// The price branch compares exact equality with the numeric
		// parse of the term; -1 can never match a non-negative price,
		// so a non-numeric term simply disables that branch.
		price := -1.0
		if p, err := strconv.ParseFloat(f.Search, 64); err == nil {
			price = p
		}
		pattern := arg("%" + f.Search + "%")
		conditions = append(conditions,
			"(title ILIKE "+pattern+" OR description ILIKE "+pattern+" OR price = "+arg(price)+")")
	}

	if f.PriceMin != nil {
		conditions = append(conditions, "price >= "+arg(*f.PriceMin))
	}
	if f.PriceMax != nil {
		conditions = append(conditions, "price <= "+arg(*f.PriceMax))
	}
	if f.Sold != nil {
		conditions = append(conditions, "sold = "+arg(*f.Sold))
	}

	return "WHERE " + strings.Join(conditions, " AND "), args
}

func (s *postgresStore) FindTransactions(ctx context.Context, f TransactionFilter, skip, limit int) ([]Transaction, error) {
	where, args := buildWhere(f)

	// Ties on date_of_sale keep Postgres' own stable scan order; there
	// is deliberately no secondary sort key.
	query := `
		SELECT source_id, title, price, description, category, image, sold, date_of_sale
		FROM transactions ` + where + `
		ORDER BY date_of_sale DESC
		OFFSET ` + strconv.Itoa(skip) + ` LIMIT ` + strconv.Itoa(limit)

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("find transactions: %w", err)
	}
	defer rows.Close()

	transactions := make([]Transaction, 0)
	for rows.Next() {
		var t Transaction
		if err := rows.Scan(&t.SourceID, &t.Title, &t.Price, &t.Description,
			&t.Category, &t.Image, &t.Sold, &t.DateOfSale); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		transactions = append(transactions, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("find transactions: %w", err)
	}

	return transactions, nil
}

func (s *postgresStore) CountTransactions(ctx context.Context, f TransactionFilter) (int64, error) {
	where, args := buildWhere(f)

	var count int64
	err := s.pool.QueryRow(ctx, "SELECT COUNT(*) FROM transactions "+where, args...).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count transactions: %w", err)
	}
	return count, nil
}

func (s *postgresStore) SumPrice(ctx context.Context, f TransactionFilter) (float64, error) {
	where, args := buildWhere(f)

	var sum float64
	err := s.pool.QueryRow(ctx, "SELECT COALESCE(SUM(price), 0) FROM transactions "+where, args...).Scan(&sum)
	if err != nil {
		return 0, fmt.Errorf("sum price: %w", err)
	}
	return sum, nil
}

func (s *postgresStore) CountByCategory(ctx context.Context, f TransactionFilter) (map[string]int64, error) {
	where, args := buildWhere(f)

	rows, err := s.pool.Query(ctx,
		"SELECT category, COUNT(*) FROM transactions "+where+" GROUP BY category", args...)
	if err != nil {
		return nil, fmt.Errorf("count by category: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int64)
	for rows.Next() {
		var category string
		var count int64
		if err := rows.Scan(&category, &count); err != nil {
			return nil, fmt.Errorf("scan category count: %w", err)
		}
		counts[category] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("count by category: %w", err)
	}

	return counts, nil
}

func (s *postgresStore) CountAll(ctx context.Context) (int64, error) {
	var count int64
	if err := s.pool.QueryRow(ctx, "SELECT COUNT(*) FROM transactions").Scan(&count); err != nil {
		return 0, fmt.Errorf("count all transactions: %w", err)
	}
	return count, nil
}

func (s *postgresStore) InsertTransactions(ctx context.Context, transactions []Transaction) error {
	columns := []string{"id", "source_id", "title", "price", "description", "category", "image", "sold", "date_of_sale"}

	_, err := s.pool.CopyFrom(ctx, pgx.Identifier{"transactions"}, columns,
		pgx.CopyFromSlice(len(transactions), func(i int) ([]any, error) {
			t := transactions[i]
			return []any{uuid.New(), t.SourceID, t.Title, t.Price, t.Description,
				t.Category, t.Image, t.Sold, t.DateOfSale}, nil
		}))
	if err != nil {
		return fmt.Errorf("bulk insert transactions: %w", err)
	}
	return nil
}
