// Package sqlgen holds the clause-level pieces shared by the statement
// builder and the schema objects: linked condition chains and sort specs.
package sqlgen

import "strings"

// Keyword links a fragment to the one that follows it.
type Keyword string

// Link keywords.
const (
	And Keyword = "AND"
	Or  Keyword = "OR"
)

// Link pairs a rendered fragment with the keyword that joins it to the next
// link.
type Link struct {
	Fragment string
	Keyword  Keyword
}

// Chain is an ordered sequence of links. It renders WHERE, HAVING, CHECK and
// JOIN ... ON bodies; insertion order is rendering order and AND/OR are never
// regrouped.
type Chain []Link

// And appends fragments linked with AND. Blank fragments are ignored.
func (c *Chain) And(fragments ...string) {
	c.add(And, fragments)
}

// Or appends fragments linked with OR.
func (c *Chain) Or(fragments ...string) {
	c.add(Or, fragments)
}

func (c *Chain) add(kw Keyword, fragments []string) {
	for _, f := range fragments {
		if strings.TrimSpace(f) == "" {
			continue
		}
		*c = append(*c, Link{Fragment: f, Keyword: kw})
	}
}

// Len returns the number of links.
func (c Chain) Len() int { return len(c) }

// IsEmpty reports whether the chain has no links.
func (c Chain) IsEmpty() bool { return len(c) == 0 }

// Compile renders the chain. Each link contributes " fragment keyword"; the
// keyword of the last link is then removed together with any surrounding
// whitespace. An empty chain compiles to "".
func (c Chain) Compile() string {
	if len(c) == 0 {
		return ""
	}

	var b strings.Builder
	for _, l := range c {
		b.WriteString(" ")
		b.WriteString(l.Fragment)
		b.WriteString(" ")
		b.WriteString(string(l.Keyword))
	}

	out := strings.TrimSpace(b.String())
	out = strings.TrimSuffix(out, string(c[len(c)-1].Keyword))
	return strings.TrimSpace(out)
}
