package compiler

import "strings"

// SourceLine is one statement after comment and whitespace normalization.
// Blank and comment-only lines never become SourceLines.
type SourceLine struct {
	Number int    // 1-based position in the original source
	Raw    string // original text, kept for diagnostics
	Text   string // comment-stripped, trimmed statement text
}

// normalizeLines performs the single normalization pass over the raw source.
// '#' begins a trailing comment and is stripped to end of line.
func normalizeLines(source string) []SourceLine {
	var out []SourceLine
	for i, raw := range strings.Split(source, "\n") {
		raw = strings.TrimSuffix(raw, "\r")
		line := raw
		if idx := strings.IndexByte(line, '#'); idx >= 0 {
			line = line[:idx]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		out = append(out, SourceLine{Number: i + 1, Raw: raw, Text: line})
	}
	return out
}

// normalizeBooleans maps case-insensitive boolean literals to the Python
// spellings, leaving every other token alone.
func normalizeBooleans(tokens []string) []string {
	out := make([]string, len(tokens))
	for i, tok := range tokens {
		switch strings.ToLower(tok) {
		case "true":
			out[i] = "True"
		case "false":
			out[i] = "False"
		default:
			out[i] = tok
		}
	}
	return out
}

// processCondition rewrites condition text for emission: boolean literals are
// normalized and 'text <word>' pairs become quoted literals.
func processCondition(cond string) (string, error) {
	tokens := strings.Fields(cond)
	var out []string
	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]
		switch {
		case tok == "text":
			if i+1 >= len(tokens) {
				return "", errf(MalformedBuiltinCall, "expected literal after 'text' in condition")
			}
			out = append(out, quoteText(tokens[i+1]))
			i++
		case strings.EqualFold(tok, "true"):
			out = append(out, "True")
		case strings.EqualFold(tok, "false"):
			out = append(out, "False")
		default:
			out = append(out, tok)
		}
	}
	return strings.Join(out, " "), nil
}
