package atomcss

import "strings"

// Entry is one cached rule.
type Entry struct {
	ClassName string `json:"class"`
	Body      string `json:"body"`
}

// RuleCache maps class names to compiled rule bodies and remembers the
// order in which they were first inserted.
type RuleCache struct {
	order  []string
	bodies map[string]string
}

// NewRuleCache creates an empty cache.
func NewRuleCache() *RuleCache {
	return &RuleCache{bodies: make(map[string]string)}
}

// Has reports whether className is cached.
func (c *RuleCache) Has(className string) bool {
	_, ok := c.bodies[className]
	return ok
}

// Get returns the body cached for className.
func (c *RuleCache) Get(className string) (string, bool) {
	body, ok := c.bodies[className]
	return body, ok
}

// Set caches body under className. An existing entry is kept as is.
func (c *RuleCache) Set(className, body string) {
	if _, ok := c.bodies[className]; ok {
		return
	}
	c.bodies[className] = body
	c.order = append(c.order, className)
}

// Len returns the number of cached rules.
func (c *RuleCache) Len() int {
	return len(c.order)
}

// Entries returns the cached rules in insertion order.
func (c *RuleCache) Entries() []Entry {
	entries := make([]Entry, len(c.order))
	for i, cn := range c.order {
		entries[i] = Entry{ClassName: cn, Body: c.bodies[cn]}
	}
	return entries
}

// Serialize renders every rule as "." + class name + body, with no
// separator, in insertion order.
func (c *RuleCache) Serialize() string {
	var b strings.Builder
	for _, cn := range c.order {
		b.WriteByte('.')
		b.WriteString(cn)
		b.WriteString(c.bodies[cn])
	}
	return b.String()
}
