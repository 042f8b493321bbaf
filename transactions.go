package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Transaction listing handler

// @Summary List transactions for a month
// @Description Retrieve a paginated listing of transactions whose date of sale falls in the selected month, optionally narrowed by a search term matching title, description or exact price
// @Tags transactions
// @Produce json
// @Param month query string false "Month selector: YYYY-MM, month number or English month name" default(march)
// @Param search query string false "Search term"
// @Param page query int false "Page number (1-based)" default(1)
// @Param limit query int false "Page size" default(10)
// @Success 200 {object} TransactionPage "One page of transactions with pagination metadata"
// @Failure 400 {object} map[string]interface{} "Invalid month selector"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/transactions [get]
func (a *api) getTransactions(c *gin.Context) {
	month := monthParam(c)
	search := c.Query("search")
	page, limit := pageParams(c)

	r, err := resolveMonthRange(month)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid month"})
		return
	}

	result, err := a.engine.ListTransactions(c.Request.Context(), r, search, page, limit)
	if err != nil {
		log.Printf("Error fetching transactions for month %q: %v", month, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching transactions"})
		return
	}

	c.JSON(http.StatusOK, result)
}
