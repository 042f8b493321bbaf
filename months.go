package main

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidMonth indicates a month selector that cannot be resolved to
// a calendar month. Handlers map it to a 400 response.
var ErrInvalidMonth = errors.New("invalid month")

// defaultYear is assumed when the selector carries no year ("3",
// "march"). Callers needing another year must use the "YYYY-MM" form.
const defaultYear = 2022

// DateRange is an inclusive timestamp interval covering one calendar month.
type DateRange struct {
	Start time.Time
	End   time.Time
}

var yearMonthRe = regexp.MustCompile(`^(\d{4})-(\d{2})$`)

var monthNames = []string{
	"january", "february", "march", "april", "may", "june",
	"july", "august", "september", "october", "november", "december",
}

// resolveMonthRange turns a month selector into its date window. Three
// forms are accepted, tried in order: "YYYY-MM", a bare month number
// ("1".."12"), or an English month name (any case). The order matters:
// a bare "3" must parse as March of the default year, not be rejected
// as a malformed year-month.
func resolveMonthRange(selector string) (DateRange, error) {
	year := defaultYear
	var month int

	if m := yearMonthRe.FindStringSubmatch(selector); m != nil {
		year, _ = strconv.Atoi(m[1])
		month, _ = strconv.Atoi(m[2])
		if month < 1 || month > 12 {
			return DateRange{}, fmt.Errorf("%w: %q", ErrInvalidMonth, selector)
		}
	} else if n, err := strconv.Atoi(selector); err == nil {
		if n < 1 || n > 12 {
			return DateRange{}, fmt.Errorf("%w: %q", ErrInvalidMonth, selector)
		}
		month = n
	} else {
		idx := -1
		for i, name := range monthNames {
			if strings.EqualFold(selector, name) {
				idx = i
				break
			}
		}
		if idx == -1 {
			return DateRange{}, fmt.Errorf("%w: %q", ErrInvalidMonth, selector)
		}
		month = idx + 1
	}

	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	// Day 0 of the following month is the last calendar day of the
	// resolved month, leap Februaries included.
	end := time.Date(year, time.Month(month)+1, 0, 23, 59, 59, 999000000, time.UTC)

	return DateRange{Start: start, End: end}, nil
}
