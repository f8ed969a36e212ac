// Package utils provides small, generic helper functions used across
// different layers of the application. These utilities are independent
// of domain or business logic.
package utils

import "strconv"

// ParseID parses a path or query parameter as a store-assigned id. Ids are
// positive integers; anything else reports ok=false.
//
// Example:
//
//	id, ok := utils.ParseID("42") // 42, true
//	id, ok = utils.ParseID("0")   // 0, false
//	id, ok = utils.ParseID("x")   // 0, false
func ParseID(s string) (int, bool) {
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}
