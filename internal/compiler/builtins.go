package compiler

import "strings"

// builtinFn validates one operation's token grammar and emits the equivalent
// Python fragment. tokens[0] is always the operation name. Handlers that need
// to compile nested expressions (createdictionary values) receive the Compiler.
type builtinFn func(c *Compiler, tokens []string) (string, error)

type builtin struct {
	compile builtinFn
	core    bool // available in ProfileCore as well as ProfileFull
}

// The registry is built once at package init and never mutated afterwards, so
// concurrent compilations may share it freely. Adding an operation is a table
// entry in one of the builtin_*.go files.
var builtins = map[string]builtin{}

func register(name string, fn builtinFn) {
	builtins[name] = builtin{compile: fn, core: true}
}

// registerExtended marks an operation as absent from the reduced profile.
func registerExtended(name string, fn builtinFn) {
	builtins[name] = builtin{compile: fn, core: false}
}

func init() {
	registerMathBuiltins()
	registerTextBuiltins()
	registerListBuiltins()
	registerDictBuiltins()
	registerMiscBuiltins()
}

// isBuiltin reports whether name is a registered operation under the profile.
func (p Profile) isBuiltin(name string) bool {
	b, ok := builtins[name]
	return ok && (p == ProfileFull || b.core)
}

// compileBuiltin dispatches a token sequence whose first token names a builtin
// operation. Boolean literals are normalized before the handler sees them.
func (c *Compiler) compileBuiltin(tokens []string) (string, error) {
	tokens = normalizeBooleans(tokens)
	name := tokens[0]
	b, ok := builtins[name]
	if !ok || (c.profile != ProfileFull && !b.core) {
		return "", errf(UnknownFunction, "unknown function: '%s'", name)
	}
	return b.compile(c, tokens)
}

// --- shared grammar helpers ---

// oneArg enforces the single-trailing-token shape shared by the unary
// transforms and returns that token.
func oneArg(tokens []string, what string) (string, error) {
	if len(tokens) != 2 {
		return "", errf(ArityError, "%s function requires one argument%s", tokens[0], what)
	}
	return tokens[1], nil
}

// commaPair splits the remainder on a comma and requires exactly two
// non-empty parts.
func commaPair(tokens []string, usage string) (string, string, error) {
	parts := strings.SplitN(strings.Join(tokens[1:], " "), ",", 2)
	if len(parts) != 2 {
		return "", "", errf(ArityError, "%s function requires two arguments %s", tokens[0], usage)
	}
	a := strings.TrimSpace(parts[0])
	b := strings.TrimSpace(parts[1])
	if a == "" || b == "" {
		return "", "", errf(ArityError, "%s function requires two arguments %s", tokens[0], usage)
	}
	return a, b, nil
}

// subject handles the two surface forms of keyword-framed operations: a
// literal-text subject ('<op> text <literal> ...') or a variable subject
// ('<op> <variable> ...'). It returns the rendered subject expression and the
// tokens that follow it.
func subject(tokens []string) (expr string, rest []string, err error) {
	if len(tokens) < 2 {
		return "", nil, errf(MalformedBuiltinCall, "%s requires a subject", tokens[0])
	}
	if len(tokens) >= 3 && tokens[1] == "text" {
		return render(pyStr(tokens[2])), tokens[3:], nil
	}
	return tokens[1], tokens[2:], nil
}

// listSubject enforces the '<op> list|array <name>' frame used by the
// list-like operations and returns the subject plus following tokens.
func listSubject(tokens []string, usage string) (string, []string, error) {
	if len(tokens) < 3 || (tokens[1] != "list" && tokens[1] != "array") {
		return "", nil, errf(MalformedBuiltinCall, "%s requires: %s", tokens[0], usage)
	}
	return tokens[2], tokens[3:], nil
}

// keywordValue enforces a '<keyword> <value...>' tail with a non-empty value.
func keywordValue(tokens []string, name, keyword, usage string) (string, error) {
	if len(tokens) < 2 || tokens[0] != keyword {
		return "", errf(MalformedBuiltinCall, "%s syntax must include '%s': %s", name, keyword, usage)
	}
	val := strings.Join(tokens[1:], " ")
	if val == "" {
		return "", errf(MalformedBuiltinCall, "%s requires: %s", name, usage)
	}
	return val, nil
}
