package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
)

const defaultSeedURL = "https://s3.amazonaws.com/roxiler.com/product_transaction.json"

// seedTransactions populates the store from the remote dataset. It is
// an explicit, idempotent setup step: when the store already holds any
// rows the load is skipped entirely, so reboots never duplicate data.
func seedTransactions(ctx context.Context, loader TransactionLoader, url string) error {
	count, err := loader.CountAll(ctx)
	if err != nil {
		return fmt.Errorf("check existing transactions: %w", err)
	}
	if count > 0 {
		log.Printf("Store already populated with %d transactions, skipping seed", count)
		return nil
	}

	transactions, err := fetchTransactions(ctx, url)
	if err != nil {
		return err
	}

	log.Printf("Inserting %d transactions from %s", len(transactions), url)
	if err := loader.InsertTransactions(ctx, transactions); err != nil {
		return fmt.Errorf("seed transactions: %w", err)
	}

	return nil
}

// fetchTransactions downloads and decodes the source dataset, a JSON
// array of transaction records.
func fetchTransactions(ctx context.Context, url string) ([]Transaction, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build seed request: %w", err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch seed data: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch seed data: unexpected status %s", resp.Status)
	}

	var transactions []Transaction
	if err := json.NewDecoder(resp.Body).Decode(&transactions); err != nil {
		return nil, fmt.Errorf("decode seed data: %w", err)
	}
	if transactions == nil {
		return nil, fmt.Errorf("decode seed data: expected a JSON array")
	}

	return transactions, nil
}
