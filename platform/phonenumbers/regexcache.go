package phonenumbers

import (
	"regexp"
	"sync"
)

// regexCache memoizes compiled patterns. The universe of patterns is
// bounded by the metadata, so the cache only grows until every rule has
// been compiled once. Insert-if-absent keeps concurrent first use safe.
type regexCache struct {
	m sync.Map
}

// cacheEntry wraps the compiled regexp so a failed compile can be cached
// as nil instead of being retried on every call.
type cacheEntry struct {
	re *regexp.Regexp
}

func newRegexCache() *regexCache {
	return &regexCache{}
}

// get returns the compiled pattern, or nil when the pattern does not
// compile. Metadata patterns are compile-checked at load time, so nil is
// only ever seen for caller-supplied patterns (FormatByPattern).
func (c *regexCache) get(pattern string) *regexp.Regexp {
	if v, ok := c.m.Load(pattern); ok {
		return v.(cacheEntry).re
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		re = nil
	}
	v, _ := c.m.LoadOrStore(pattern, cacheEntry{re: re})
	return v.(cacheEntry).re
}

// entire returns a variant of pattern anchored to match the whole input.
func (c *regexCache) entire(pattern string) *regexp.Regexp {
	return c.get("^(?:" + pattern + ")$")
}

// atStart returns a variant of pattern anchored to match at the beginning.
func (c *regexCache) atStart(pattern string) *regexp.Regexp {
	return c.get("^(?:" + pattern + ")")
}

func (c *regexCache) matchEntire(pattern, s string) bool {
	re := c.entire(pattern)
	return re != nil && re.MatchString(s)
}

func (c *regexCache) matchStart(pattern, s string) bool {
	re := c.atStart(pattern)
	return re != nil && re.MatchString(s)
}
