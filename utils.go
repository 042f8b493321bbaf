package main

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// Request parsing and error mapping helpers shared by the handlers.

const defaultMonth = "march"

// monthParam reads the month selector, falling back to the default
// month when the parameter is absent. A present-but-invalid selector is
// not defaulted; it fails downstream in the resolver.
func monthParam(c *gin.Context) string {
	month := c.Query("month")
	if month == "" {
		return defaultMonth
	}
	return month
}

// pageParams reads page and limit, defaulting to the first page of ten.
// Values are not validated against the result size: an out-of-range
// page simply produces an empty listing.
func pageParams(c *gin.Context) (page, limit int) {
	page = 1
	limit = 10
	if v, err := strconv.Atoi(c.Query("page")); err == nil && v >= 1 {
		page = v
	}
	if v, err := strconv.Atoi(c.Query("limit")); err == nil && v >= 1 {
		limit = v
	}
	return page, limit
}

// mapQueryError converts an engine error to an HTTP status and client
// message. Unresolvable month selectors are the caller's fault; every
// other failure is a server-side store problem.
func mapQueryError(err error, serverMessage string) (int, string) {
	if errors.Is(err, ErrInvalidMonth) {
		return http.StatusBadRequest, "Invalid month"
	}
	return http.StatusInternalServerError, serverMessage
}
