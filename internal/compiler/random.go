package compiler

import (
	"fmt"
	"strings"
)

// compileRandom handles the three randomization forms. A successful compile
// marks the Compiler so the assembler knows to emit the random import. The
// call expression is emitted as-is; nothing is evaluated at compile time.
func (c *Compiler) compileRandom(tokens []string) (string, error) {
	if len(tokens) < 2 {
		return "", errf(UnknownRandomType, "random requires a type: 'number', 'text', or 'boolean'")
	}
	switch tokens[1] {
	case "number":
		if len(tokens) != 5 || tokens[3] != "to" {
			return "", errf(MalformedBuiltinCall, "random number syntax: random number <min> to <max>")
		}
		c.randomUsed = true
		return fmt.Sprintf("random.randint(%s, %s)", tokens[2], tokens[4]), nil
	case "text":
		if len(tokens) == 2 {
			return "", errf(MalformedBuiltinCall, "random text syntax: random text <option1>, <option2>, ...")
		}
		// Every comma segment becomes an option, empty segments included.
		raw := strings.Split(strings.Join(tokens[2:], " "), ",")
		options := make(pyList, len(raw))
		for i, opt := range raw {
			options[i] = pyStr(strings.TrimSpace(opt))
		}
		c.randomUsed = true
		return fmt.Sprintf("random.choice(%s)", render(options)), nil
	case "boolean":
		if len(tokens) != 2 {
			return "", errf(MalformedBuiltinCall, "random boolean syntax: random boolean")
		}
		c.randomUsed = true
		return "random.choice([True, False])", nil
	}
	return "", errf(UnknownRandomType, "unknown random type: '%s'. Expected 'number', 'text', or 'boolean'", tokens[1])
}
