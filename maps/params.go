package maps

import (
	"net/url"
	"sort"
	"strings"
)

// Pair is a single query parameter.
type Pair struct {
	Key   string
	Value string
}

// Params is the set of query parameters attached to a request. It is a sealed
// tagged variant with two implementations:
//
//   - [Map]: a keyed mapping, sorted lexicographically by key before encoding
//     so that canonicalization is deterministic;
//   - [Pairs]: an already-ordered list, encoded in the given order.
//
// Deterministic ordering matters: the encoded query string is the payload the
// URL signature is computed over, so the same logical parameters must always
// produce the same bytes.
type Params interface {
	pairs() []Pair
}

// Map is an unordered parameter mapping. Keys are sorted in ascending byte
// order at canonicalization time.
type Map map[string]string

func (m Map) pairs() []Pair {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	ordered := make([]Pair, 0, len(m))
	for _, k := range keys {
		ordered = append(ordered, Pair{Key: k, Value: m[k]})
	}
	return ordered
}

// Pairs is an ordered parameter list. The order is preserved exactly as
// given; no re-sorting takes place.
type Pairs []Pair

func (p Pairs) pairs() []Pair {
	// capacity is clamped so that appending credential pairs downstream never
	// writes into the caller's backing array
	return p[:len(p):len(p)]
}

// canonicalPairs resolves params into its ordered pair form. A nil Params is
// treated as an empty list.
func canonicalPairs(params Params) []Pair {
	if params == nil {
		return nil
	}
	return params.pairs()
}

// canonicalize encodes params into their deterministic www-form query string.
// Pure: the same input always yields the same output.
func canonicalize(params Params) string {
	return encodePairs(canonicalPairs(params))
}

// encodePairs percent-encodes each key and value with www-form encoding
// (space becomes '+', reserved characters are escaped) and then unescapes the
// RFC 3986 unreserved set back to literal characters. The signing servers
// unescape unreserved characters before verifying signatures, so the encoded
// form must match byte for byte.
func encodePairs(ordered []Pair) string {
	var b strings.Builder
	for i, p := range ordered {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(unescapeUnreserved(url.QueryEscape(p.Key)))
		b.WriteByte('=')
		b.WriteString(unescapeUnreserved(url.QueryEscape(p.Value)))
	}
	return b.String()
}

// unescapeUnreserved scans s for %XX escape sequences and replaces those that
// decode to an RFC 3986 unreserved byte (A-Z a-z 0-9 - . _ ~) with the
// literal character. All other escapes, including malformed ones, are left
// untouched.
func unescapeUnreserved(s string) string {
	if !strings.Contains(s, "%") {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '%' && i+2 < len(s) {
			hi, okHi := unhex(s[i+1])
			lo, okLo := unhex(s[i+2])
			if okHi && okLo {
				if c := hi<<4 | lo; isUnreserved(c) {
					b.WriteByte(c)
					i += 2
					continue
				}
			}
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

func isUnreserved(c byte) bool {
	switch {
	case 'A' <= c && c <= 'Z', 'a' <= c && c <= 'z', '0' <= c && c <= '9':
		return true
	case c == '-' || c == '.' || c == '_' || c == '~':
		return true
	}
	return false
}

func unhex(c byte) (byte, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
