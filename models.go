package main

import "time"

// Transaction represents a product sale record from the source dataset.
// SourceID is the identifier carried by the dataset itself; the storage
// key is assigned separately at load time.
type Transaction struct {
	SourceID    int64     `json:"id"`
	Title       string    `json:"title"`
	Price       float64   `json:"price"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Image       string    `json:"image"`
	Sold        bool      `json:"sold"`
	DateOfSale  time.Time `json:"dateOfSale"`
}

// TransactionPage is one page of a filtered transaction listing
type TransactionPage struct {
	Transactions []Transaction `json:"transactions"`
	Page         int           `json:"page"`
	TotalPages   int           `json:"totalPages"`
	TotalItems   int64         `json:"totalItems"`
}

// Statistics holds the aggregate sales figures for a month
type Statistics struct {
	TotalSales  float64 `json:"totalSales"`
	SoldItems   int64   `json:"soldItems"`
	UnsoldItems int64   `json:"unsoldItems"`
}

// PriceRangeCount is one histogram bar: a fixed price range label and
// the number of transactions whose price falls inside it
type PriceRangeCount struct {
	Range string `json:"range"`
	Count int64  `json:"count"`
}

// CategoryCount is one pie chart slice
type CategoryCount struct {
	Category string `json:"category"`
	Count    int64  `json:"count"`
}

// MonthSummary is the combined response: all four views computed over
// the same resolved month window
type MonthSummary struct {
	Month        string            `json:"month"`
	Transactions TransactionPage   `json:"transactions"`
	Statistics   Statistics        `json:"statistics"`
	BarChart     []PriceRangeCount `json:"barChart"`
	PieChart     []CategoryCount   `json:"pieChart"`
}
