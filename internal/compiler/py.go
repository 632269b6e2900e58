package compiler

import "strings"

// A tiny Python expression tree. Builtin handlers assemble these nodes instead
// of interpolating quotes by hand; render is the single place that performs
// string quoting and escaping.

type pyExpr interface {
	writeTo(b *strings.Builder)
}

// pyRaw is verbatim host text: identifiers, numbers, operators, or fragments
// already rendered by a nested compilation.
type pyRaw string

func (r pyRaw) writeTo(b *strings.Builder) { b.WriteString(string(r)) }

// pyStr is a text literal. Quoting happens here and nowhere else.
type pyStr string

func (s pyStr) writeTo(b *strings.Builder) {
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '"', '\\':
			b.WriteByte('\\')
			b.WriteByte(c)
		default:
			b.WriteByte(c)
		}
	}
	b.WriteByte('"')
}

type pyCall struct {
	fn   string
	args []pyExpr
}

func (c pyCall) writeTo(b *strings.Builder) {
	b.WriteString(c.fn)
	b.WriteByte('(')
	for i, a := range c.args {
		if i > 0 {
			b.WriteString(", ")
		}
		a.writeTo(b)
	}
	b.WriteByte(')')
}

type pyList []pyExpr

func (l pyList) writeTo(b *strings.Builder) {
	b.WriteByte('[')
	for i, it := range l {
		if i > 0 {
			b.WriteString(", ")
		}
		it.writeTo(b)
	}
	b.WriteByte(']')
}

type pyPair struct {
	key   pyExpr
	value pyExpr
}

// pyDict preserves pair order, so generated mappings keep source key order.
type pyDict []pyPair

func (d pyDict) writeTo(b *strings.Builder) {
	b.WriteByte('{')
	for i, p := range d {
		if i > 0 {
			b.WriteString(", ")
		}
		p.key.writeTo(b)
		b.WriteString(": ")
		p.value.writeTo(b)
	}
	b.WriteByte('}')
}

func render(e pyExpr) string {
	var b strings.Builder
	e.writeTo(&b)
	return b.String()
}

// quoteText renders a text literal, leaving it untouched when the source
// already carries its own quotes.
func quoteText(s string) string {
	if isQuoted(s) {
		return s
	}
	return render(pyStr(s))
}

func isQuoted(s string) bool {
	return len(s) >= 2 &&
		((s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\''))
}
