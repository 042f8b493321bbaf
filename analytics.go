package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Analytics handler functions: statistics, bar chart, pie chart. Each
// resolves the month itself so the endpoints stay independently
// callable; a failure in one never affects the others.

// @Summary Get sales statistics for a month
// @Description Retrieve total sales amount and sold/unsold item counts for the selected month
// @Tags analytics
// @Produce json
// @Param month query string false "Month selector: YYYY-MM, month number or English month name" default(march)
// @Success 200 {object} Statistics "Aggregate sales statistics"
// @Failure 400 {object} map[string]interface{} "Invalid month selector"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/statistics [get]
func (a *api) getStatistics(c *gin.Context) {
	month := monthParam(c)

	r, err := resolveMonthRange(month)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid month"})
		return
	}

	stats, err := a.engine.Statistics(c.Request.Context(), r)
	if err != nil {
		log.Printf("Error fetching statistics for month %q: %v", month, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching statistics"})
		return
	}

	c.JSON(http.StatusOK, stats)
}

// @Summary Get price range histogram for a month
// @Description Retrieve transaction counts per fixed price range for the selected month; all ten ranges are always present, in order
// @Tags analytics
// @Produce json
// @Param month query string false "Month selector: YYYY-MM, month number or English month name" default(march)
// @Success 200 {array} PriceRangeCount "Ordered histogram buckets"
// @Failure 400 {object} map[string]interface{} "Invalid month selector"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/bar-chart [get]
func (a *api) getBarChart(c *gin.Context) {
	month := monthParam(c)

	r, err := resolveMonthRange(month)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid month"})
		return
	}

	histogram, err := a.engine.PriceHistogram(c.Request.Context(), r)
	if err != nil {
		log.Printf("Error fetching bar chart data for month %q: %v", month, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching bar chart data"})
		return
	}

	c.JSON(http.StatusOK, histogram)
}

// @Summary Get category distribution for a month
// @Description Retrieve transaction counts grouped by category for the selected month; only categories present in the data appear
// @Tags analytics
// @Produce json
// @Param month query string false "Month selector: YYYY-MM, month number or English month name" default(march)
// @Success 200 {array} CategoryCount "Category counts"
// @Failure 400 {object} map[string]interface{} "Invalid month selector"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/pie-chart [get]
func (a *api) getPieChart(c *gin.Context) {
	month := monthParam(c)

	r, err := resolveMonthRange(month)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid month"})
		return
	}

	distribution, err := a.engine.CategoryDistribution(c.Request.Context(), r)
	if err != nil {
		log.Printf("Error fetching pie chart data for month %q: %v", month, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching pie chart data"})
		return
	}

	c.JSON(http.StatusOK, distribution)
}
