package compiler

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// Compiler translates Easy source text into Python source text in a single
// sequential pass. All mutable state (nesting depth, output buffer, random
// flag) is local to one Compiler, so independent compilations may run
// concurrently as long as each uses its own instance.
type Compiler struct {
	profile    Profile
	lines      []string
	depth      int
	randomUsed bool
}

func New(profile Profile) *Compiler {
	return &Compiler{profile: profile}
}

// Compile is the convenience entry point with the full builtin catalogue.
func Compile(source string) (string, error) {
	return New(ProfileFull).Compile(source)
}

// allowedTypes is the fixed set of declarable storage types.
var allowedTypes = map[string]bool{
	"number": true, "integer": true, "float": true, "text": true,
	"boolean": true, "array": true, "dictionary": true,
}

// timeBuiltins may appear as a single bare token after 'print'.
var timeBuiltins = map[string]bool{
	"currenttime": true, "currentdate": true, "currenttimestamp": true,
}

// Compile translates the whole source and returns the generated Python
// program, or the first error encountered. The compiler halts on the first
// failing line; no partial program is returned.
func (c *Compiler) Compile(source string) (string, error) {
	c.lines = nil
	c.depth = 0
	c.randomUsed = false

	var last SourceLine
	for _, ln := range normalizeLines(source) {
		last = ln
		if err := c.compileLine(ln); err != nil {
			var cerr *Error
			if errors.As(err, &cerr) {
				return "", cerr.at(ln.Number, ln.Raw)
			}
			return "", &Error{Line: ln.Number, Text: ln.Raw, Message: err.Error()}
		}
	}

	if c.depth != 0 {
		return "", &Error{
			Line: last.Number, Text: last.Raw, Code: UnclosedBlock,
			Message: "unclosed block statements detected: some blocks are not terminated with 'end'",
		}
	}

	header := []string{"import math", "import sys", "import datetime", "import os"}
	if c.randomUsed {
		header = append(header, "import random")
	}
	return strings.Join(append(header, c.lines...), "\n") + "\n", nil
}

// emit appends one generated line indented at the current nesting depth.
func (c *Compiler) emit(line string) {
	c.lines = append(c.lines, strings.Repeat("    ", c.depth)+line)
}

// compileLine classifies one normalized statement and dispatches it. The
// cases run in a fixed priority order; the first match wins.
func (c *Compiler) compileLine(ln SourceLine) error {
	text := ln.Text
	tokens := strings.Fields(text)

	switch {
	case strings.EqualFold(text, "end program"):
		c.emit("sys.exit()")
		return nil

	case strings.EqualFold(text, "end"):
		if c.depth == 0 {
			return errf(UnmatchedBlockEnd, "unmatched 'end' statement")
		}
		c.depth--
		return nil

	case strings.HasPrefix(text, "if "):
		return c.compileIf(text[3:])

	case strings.HasPrefix(text, "while "):
		return c.compileWhile(text[6:])

	case strings.HasPrefix(text, "for "):
		return c.compileFor(tokens)

	case tokens[0] == "print":
		return c.compilePrint(tokens[1:])

	case tokens[0] == "storage":
		return c.compileDeclaration(tokens[1:])

	case strings.Contains(text, "="):
		// Covers both '<name> = <value>' and '<name>[<idx>] = <value>'.
		return c.compileAssignment(text)

	default:
		return c.compileBareCall(text, tokens)
	}
}

// --- control constructs ---

func (c *Compiler) compileIf(cond string) error {
	// Suffixes are stripped before leading whitespace so that a condition
	// consisting only of 'is true' reads as empty.
	cond = strings.TrimRight(cond, " \t")
	cond = strings.TrimRight(strings.TrimSuffix(cond, ":"), " \t")
	if strings.TrimSpace(cond) == "" {
		return errf(EmptyCondition, "missing condition in if statement")
	}

	negated := false
	if rest, ok := strings.CutSuffix(cond, " is true"); ok {
		cond = rest
	} else if rest, ok := strings.CutSuffix(cond, " is false"); ok {
		cond = rest
		negated = true
	}
	cond = strings.TrimSpace(cond)
	if cond == "" {
		return errf(EmptyCondition, "empty condition in if statement")
	}

	expr, err := processCondition(cond)
	if err != nil {
		return err
	}
	if negated {
		c.emit(fmt.Sprintf("if not (%s):", expr))
	} else {
		c.emit(fmt.Sprintf("if %s:", expr))
	}
	c.depth++
	return nil
}

func (c *Compiler) compileWhile(cond string) error {
	cond = strings.TrimRight(cond, " \t")
	if rest, ok := strings.CutSuffix(cond, " do"); ok {
		cond = rest
	}
	cond = strings.TrimSpace(cond)
	if cond == "" {
		return errf(EmptyCondition, "missing condition in while loop")
	}
	expr, err := processCondition(cond)
	if err != nil {
		return err
	}
	c.emit(fmt.Sprintf("while %s:", expr))
	c.depth++
	return nil
}

func (c *Compiler) compileFor(tokens []string) error {
	if len(tokens) != 5 || tokens[2] != "to" || tokens[4] != "do" {
		return errf(MalformedForLoop, "invalid for loop syntax. Expected: for <start> to <end> do")
	}
	// The loop binds the implicit variable i over an inclusive range.
	c.emit(fmt.Sprintf("for i in range(%s, %s + 1):", tokens[1], tokens[3]))
	c.depth++
	return nil
}

// --- output ---

func (c *Compiler) compilePrint(rest []string) error {
	if len(rest) == 0 {
		return errf(EmptyPrintExpression, "missing expression in print command")
	}

	var expr string
	switch {
	case len(rest) == 1 && timeBuiltins[rest[0]]:
		compiled, err := c.compileBuiltin(rest)
		if err != nil {
			return err
		}
		expr = compiled

	case len(rest) == 1:
		expr = rest[0]

	case rest[0] == "text":
		expr = quoteText(strings.Join(rest[1:], " "))

	case rest[0] == "storage":
		expr = strings.Join(rest[1:], " ")

	case rest[0] == "random":
		compiled, err := c.compileRandom(rest)
		if err != nil {
			return err
		}
		expr = compiled

	case c.profile.isBuiltin(rest[0]):
		compiled, err := c.compileBuiltin(rest)
		if err != nil {
			return err
		}
		expr = compiled

	default:
		expr = strings.Join(rest, " ")
	}

	c.emit(fmt.Sprintf("print(%s)", expr))
	return nil
}

// --- declarations ---

func (c *Compiler) compileDeclaration(parts []string) error {
	if len(parts) < 3 {
		return errf(IncompleteDeclaration, "incomplete 'storage' command. Expected: 'storage <type> <variable> = <value>'")
	}
	typ := strings.ToLower(parts[0])
	if !allowedTypes[typ] {
		return errf(UnknownType,
			"invalid storage type '%s'. Allowed types are: number, integer, float, text, boolean, array, dictionary", parts[0])
	}
	name := parts[1]
	if !isIdentifier(name) {
		return errf(InvalidIdentifier,
			"invalid variable name '%s'. Variable names must start with a letter or underscore, followed by letters, numbers, or underscores", name)
	}
	if parts[2] != "=" {
		return errf(MissingAssignment, "missing '=' in 'storage' command. The correct format is 'storage <type> <variable> = <value>'")
	}
	exprTokens := parts[3:]
	if len(exprTokens) == 0 {
		return errf(MissingAssignment, "missing value expression after '=' in 'storage' command")
	}

	value, err := c.compileValue(typ, exprTokens)
	if err != nil {
		return err
	}
	switch typ {
	case "float":
		value = fmt.Sprintf("float(%s)", value)
	case "number", "integer":
		value = fmt.Sprintf("int(%s)", value)
	}
	c.emit(fmt.Sprintf("%s = %s", name, value))
	return nil
}

// compileValue compiles a declaration's value expression in priority order:
// arithmetic passthrough, random/text delegation, builtin delegation, then
// typed literal coercion.
func (c *Compiler) compileValue(typ string, tokens []string) (string, error) {
	for _, tok := range tokens {
		switch tok {
		case "+", "-", "*", "/", "%":
			return strings.Join(normalizeBooleans(tokens), " "), nil
		}
	}

	switch {
	case tokens[0] == "random":
		return c.compileRandom(tokens)
	case tokens[0] == "text":
		return render(pyStr(strings.Join(tokens[1:], " "))), nil
	case c.profile.isBuiltin(tokens[0]):
		return c.compileBuiltin(tokens)
	}

	value := strings.Join(normalizeBooleans(tokens), " ")
	switch typ {
	case "text":
		if !strings.HasPrefix(value, `"`) && !strings.HasPrefix(value, "'") {
			value = render(pyStr(value))
		}
	case "boolean":
		switch strings.ToLower(value) {
		case "true":
			value = "True"
		case "false":
			value = "False"
		default:
			return "", errf(InvalidBooleanLiteral, "invalid boolean value: '%s'. For boolean storage, use 'true' or 'false'", value)
		}
	}
	return value, nil
}

// --- assignments ---

func (c *Compiler) compileAssignment(text string) error {
	lhs, rhs, _ := strings.Cut(text, "=")
	lhs = strings.TrimSpace(lhs)
	if lhs == "" {
		return errf(UnknownCommand, "unknown command: '%s'", text)
	}
	rhsTokens := strings.Fields(rhs)
	if len(rhsTokens) == 0 {
		return errf(MissingAssignment, "missing value after '=' in assignment")
	}

	var expr string
	if rhsTokens[0] == "text" {
		compiled, err := c.compileBuiltin(rhsTokens)
		if err != nil {
			return err
		}
		expr = compiled
	} else {
		expr = strings.Join(normalizeBooleans(rhsTokens), " ")
	}
	c.emit(fmt.Sprintf("%s = %s", lhs, expr))
	return nil
}

// --- bare calls ---

func (c *Compiler) compileBareCall(text string, tokens []string) error {
	first := tokens[0]
	var second string
	if len(tokens) > 1 {
		second = tokens[1]
	}

	switch {
	case listOps[second]:
		// '<variable> append value 3' sugar for 'append array <variable> value 3'.
		rewritten := append([]string{second, "array", first}, tokens[2:]...)
		return c.emitBuiltin(rewritten)

	case first == "random":
		compiled, err := c.compileRandom(tokens)
		if err != nil {
			return err
		}
		c.emit(compiled)
		return nil

	case c.profile.isBuiltin(first):
		return c.emitBuiltin(tokens)

	case first == "clear":
		if second == "screen" {
			return c.emitBuiltin([]string{"clearscreen"})
		}
		return errf(UnknownCommand, "unknown command: '%s'. Did you mean 'clear screen'?", text)

	case first == "exit":
		if second == "program" {
			return c.emitBuiltin([]string{"exitprogram"})
		}
		return errf(UnknownCommand, "unknown command: '%s'. Did you mean 'exit program'?", text)
	}
	return errf(UnknownCommand, "unknown command: '%s'", text)
}

func (c *Compiler) emitBuiltin(tokens []string) error {
	compiled, err := c.compileBuiltin(tokens)
	if err != nil {
		return err
	}
	c.emit(compiled)
	return nil
}

// isIdentifier mirrors the host language's identifier rules.
func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if r == '_' || unicode.IsLetter(r) {
			continue
		}
		if i > 0 && unicode.IsDigit(r) {
			continue
		}
		return false
	}
	return true
}
