// Package fixtures contains the test data and a fake Management API used in
// the unit tests.
package fixtures

import (
	"encoding/json"
)

const (
	TestSpaceID = "288110"
	TestToken   = "mgmt-test-token-fffffffffffffffa915fe069d70a8ad8"
)

// Load loads a json data into T, or panics.
func Load[T any](js string) T {
	var ret T
	if err := json.Unmarshal([]byte(js), &ret); err != nil {
		panic(err)
	}
	return ret
}

// LoadPtr loads a json data into *T, or panics.
func LoadPtr[T any](js string) *T {
	v := Load[T](js)
	return &v
}
