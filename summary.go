package main

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

// The transactions sub-view of a summary is a fixed preview: first
// page, ten rows, no search.
const (
	summaryPreviewPage  = 1
	summaryPreviewLimit = 10
)

// Summarize builds the combined dashboard response. The month is
// resolved once and the same window feeds all four sub-computations, so
// every view reflects the identical interval. The four reads are
// independent and run concurrently; the first failure aborts the whole
// summary rather than returning a partial result.
func (e *Engine) Summarize(ctx context.Context, selector string) (MonthSummary, error) {
	r, err := resolveMonthRange(selector)
	if err != nil {
		return MonthSummary{}, err
	}

	summary := MonthSummary{Month: selector}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		summary.Transactions, err = e.ListTransactions(gctx, r, "", summaryPreviewPage, summaryPreviewLimit)
		return err
	})
	g.Go(func() error {
		var err error
		summary.Statistics, err = e.Statistics(gctx, r)
		return err
	})
	g.Go(func() error {
		var err error
		summary.BarChart, err = e.PriceHistogram(gctx, r)
		return err
	})
	g.Go(func() error {
		var err error
		summary.PieChart, err = e.CategoryDistribution(gctx, r)
		return err
	})
	if err := g.Wait(); err != nil {
		return MonthSummary{}, err
	}

	return summary, nil
}

// @Summary Get combined month summary
// @Description Retrieve the transaction preview, statistics, bar chart and pie chart for a month in a single response
// @Tags summary
// @Produce json
// @Param month query string false "Month selector: YYYY-MM, month number or English month name" default(march)
// @Success 200 {object} MonthSummary "Combined summary"
// @Failure 400 {object} map[string]interface{} "Invalid month selector"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/summary [get]
func (a *api) getSummary(c *gin.Context) {
	month := monthParam(c)

	summary, err := a.engine.Summarize(c.Request.Context(), month)
	if err != nil {
		status, message := mapQueryError(err, "Error fetching summary data")
		log.Printf("Error fetching summary for month %q: %v", month, err)
		c.JSON(status, gin.H{"error": message})
		return
	}

	c.JSON(http.StatusOK, summary)
}
