package dto

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// The web client expects prices as JSON numbers (price: 5.5), not strings.
func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// ErrorResponse is the HTTP error body.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// FlexInt is an integer that tolerates the loosely-typed payloads the web
// client sends: JSON numbers, numeric strings ("10", "5.0") and null all
// decode; fractional values truncate toward zero. It never clamps — sign
// handling belongs to whoever interprets the value (a delta may be negative,
// a stock count may not).
type FlexInt int

func (n *FlexInt) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		*n = 0
		return nil
	}
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = strings.TrimSpace(s[1 : len(s)-1])
	}
	if s == "" {
		*n = 0
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("not a number: %q", s)
	}
	*n = FlexInt(int(f))
	return nil
}

// Int returns the plain value.
func (n FlexInt) Int() int { return int(n) }
