// Package attr maps the string tokens seen by applications to the integer
// codes understood by the capture device.
//
// Each semantic axis (white balance, flash, ISO, scene mode, ...) has one
// static Table. Tables are small, so Lookup is a linear scan and the first
// matching entry wins.
package attr

import "strings"

// NotFound is returned by Lookup when no entry matches.
const NotFound = -1

// Entry pairs an application token with a device code.
// An entry with an empty Token is never published.
type Entry struct {
	Token string
	Code  int
}

// Table is an ordered, read-only list of entries for one attribute.
type Table []Entry

// Lookup returns the code of the first entry whose token equals token.
// An empty token returns NotFound without scanning.
func Lookup(t Table, token string) int {
	if token == "" {
		return NotFound
	}
	for _, e := range t {
		if e.Token == token {
			return e.Code
		}
	}
	return NotFound
}

// Token returns the first published token for code.
func Token(t Table, code int) (string, bool) {
	for _, e := range t {
		if e.Code == code && e.Token != "" {
			return e.Token, true
		}
	}
	return "", false
}

// Describe returns every published token of t in table order, comma joined.
func Describe(t Table) string {
	tokens := make([]string, 0, len(t))
	for _, e := range t {
		if e.Token != "" {
			tokens = append(tokens, e.Token)
		}
	}
	return strings.Join(tokens, ",")
}

// DescribeCodes renders the tokens for codes in the order of codes.
// Codes without a published token are skipped. Duplicates are kept.
func DescribeCodes(codes []int, t Table) string {
	tokens := make([]string, 0, len(codes))
	for _, c := range codes {
		if tok, ok := Token(t, c); ok {
			tokens = append(tokens, tok)
		}
	}
	return strings.Join(tokens, ",")
}

// Tokens returns the published tokens of t in table order.
func Tokens(t Table) []string {
	out := make([]string, 0, len(t))
	for _, e := range t {
		if e.Token != "" {
			out = append(out, e.Token)
		}
	}
	return out
}
