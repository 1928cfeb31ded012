package handlers

import (
	"bytes"
	"encoding/json"
	"math"

	"github.com/shopspring/decimal"
)

var maxAmount = decimal.NewFromInt(math.MaxInt64)

// parseWholeAmount accepts only a bare JSON number holding a whole value
// that fits in int64. Quoted numbers, booleans and other literals are rejected.
func parseWholeAmount(raw json.RawMessage, allowZero bool) (int64, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] == '"' {
		return 0, false
	}

	amount, err := decimal.NewFromString(string(raw))
	if err != nil || amount.IsNegative() || !amount.IsInteger() || amount.GreaterThan(maxAmount) {
		return 0, false
	}
	if amount.IsZero() && !allowZero {
		return 0, false
	}
	return amount.IntPart(), true
}

func parsePositiveAmount(raw json.RawMessage) (int64, bool) {
	return parseWholeAmount(raw, false)
}

func isNullOrEmpty(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	return len(raw) == 0 || bytes.Equal(raw, []byte("null"))
}
