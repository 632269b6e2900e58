package compiler

import (
	"fmt"
	"strings"
)

// Math and numeric operations.

func registerMathBuiltins() {
	for _, name := range []string{"sqrt", "ceil", "floor", "sin", "cos", "tan"} {
		register(name, mathUnary(name))
	}

	register("mod", func(_ *Compiler, tokens []string) (string, error) {
		a, b, err := commaPair(tokens, "separated by a comma")
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("(%s) %% (%s)", a, b), nil
	})

	register("log", func(_ *Compiler, tokens []string) (string, error) {
		num, base, err := commaPair(tokens, "(number, base) separated by a comma")
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("math.log(%s, %s)", num, base), nil
	})

	register("exponent", func(_ *Compiler, tokens []string) (string, error) {
		if len(tokens) != 3 {
			return "", errf(ArityError, "exponent function requires two arguments (base, exponent)")
		}
		return fmt.Sprintf("(%s)**(%s)", tokens[1], tokens[2]), nil
	})

	register("abs", pyUnary("abs", ""))
	register("round", pyUnary("round", ""))
	register("sumof", pyUnary("sum", " (array)"))

	register("maxof", variadic("max"))
	register("minof", variadic("min"))

	register("range", func(_ *Compiler, tokens []string) (string, error) {
		args := strings.Split(strings.Join(tokens[1:], " "), ",")
		for i := range args {
			args[i] = strings.TrimSpace(args[i])
		}
		switch {
		case len(args) == 1 && args[0] != "":
			return fmt.Sprintf("list(range(%s))", args[0]), nil
		case len(args) == 2 && args[0] != "" && args[1] != "":
			// Two-argument form is inclusive of the end value.
			return fmt.Sprintf("list(range(%s, %s + 1))", args[0], args[1]), nil
		}
		return "", errf(ArityError, "range function requires one or two arguments (end) or (start, end)")
	})
}

func mathUnary(name string) builtinFn {
	return func(_ *Compiler, tokens []string) (string, error) {
		arg, err := oneArg(tokens, "")
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("math.%s(%s)", name, arg), nil
	}
}

// pyUnary emits a one-argument call to a Python global.
func pyUnary(fn, argNote string) builtinFn {
	return func(_ *Compiler, tokens []string) (string, error) {
		arg, err := oneArg(tokens, argNote)
		if err != nil {
			return "", err
		}
		return render(pyCall{fn: fn, args: []pyExpr{pyRaw(arg)}}), nil
	}
}

// variadic emits fn(a, b, ...) over one or more arguments.
func variadic(fn string) builtinFn {
	return func(_ *Compiler, tokens []string) (string, error) {
		if len(tokens) < 2 {
			return "", errf(ArityError, "%s function requires at least one argument", tokens[0])
		}
		args := make([]pyExpr, len(tokens)-1)
		for i, t := range tokens[1:] {
			args[i] = pyRaw(t)
		}
		return render(pyCall{fn: fn, args: args}), nil
	}
}
