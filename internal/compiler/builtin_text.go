package compiler

import (
	"fmt"
	"strings"
)

// Text operations.

func registerTextBuiltins() {
	register("text", textLiteral)
	register("createtext", textLiteral)

	register("substring", func(_ *Compiler, tokens []string) (string, error) {
		subj, rest, err := subject(tokens)
		if err != nil {
			return "", err
		}
		if tokens[1] == "text" {
			if len(tokens) != 7 {
				return "", errf(MalformedBuiltinCall, "substring with literal requires: substring text <literal> start <start> length <length>")
			}
		} else if len(tokens) != 6 {
			return "", errf(MalformedBuiltinCall, "substring with variable requires: substring <variable> start <start> length <length>")
		}
		if rest[0] != "start" || rest[2] != "length" {
			return "", errf(MalformedBuiltinCall, "substring syntax must include 'start' and 'length'")
		}
		start, length := rest[1], rest[3]
		return fmt.Sprintf("(%s)[%s:%s+%s]", subj, start, start, length), nil
	})

	register("replace", func(_ *Compiler, tokens []string) (string, error) {
		subj, rest, err := subject(tokens)
		if err != nil {
			return "", err
		}
		literal := tokens[1] == "text"
		if literal {
			if len(tokens) != 7 {
				return "", errf(MalformedBuiltinCall, "replace with literal requires: replace text <literal> old <old> new <new>")
			}
		} else if len(tokens) != 6 {
			return "", errf(MalformedBuiltinCall, "replace with variable requires: replace <variable> old <old> new <new>")
		}
		if rest[0] != "old" || rest[2] != "new" {
			return "", errf(MalformedBuiltinCall, "replace syntax must include 'old' and 'new'")
		}
		oldArg, newArg := rest[1], rest[3]
		if literal {
			oldArg = render(pyStr(oldArg))
			newArg = render(pyStr(newArg))
		}
		return fmt.Sprintf("(%s).replace(%s, %s)", subj, oldArg, newArg), nil
	})

	register("split", func(_ *Compiler, tokens []string) (string, error) {
		subj, rest, err := subject(tokens)
		if err != nil {
			return "", err
		}
		if tokens[1] == "text" {
			if len(tokens) != 5 {
				return "", errf(MalformedBuiltinCall, "split with literal requires: split text <literal> by <separator>")
			}
		} else if len(tokens) != 4 {
			return "", errf(MalformedBuiltinCall, "split with variable requires: split <variable> by <separator>")
		}
		if rest[0] != "by" {
			return "", errf(MalformedBuiltinCall, "split syntax must include 'by'")
		}
		return fmt.Sprintf("(%s).split(%s)", subj, render(pyStr(rest[1]))), nil
	})

	register("join", func(_ *Compiler, tokens []string) (string, error) {
		var listExpr, sep string
		if len(tokens) >= 2 && tokens[1] == "list" {
			if len(tokens) != 5 {
				return "", errf(MalformedBuiltinCall, "join with literal separator requires: join list <list> by <separator>")
			}
			if tokens[3] != "by" {
				return "", errf(MalformedBuiltinCall, "join syntax must include 'by'")
			}
			listExpr, sep = tokens[2], tokens[4]
		} else {
			if len(tokens) != 4 {
				return "", errf(MalformedBuiltinCall, "join with variable requires: join <list> by <separator>")
			}
			if tokens[2] != "by" {
				return "", errf(MalformedBuiltinCall, "join syntax must include 'by'")
			}
			listExpr, sep = tokens[1], tokens[3]
		}
		// The separator is quoted unless the source already quoted it.
		return fmt.Sprintf("%s.join([str(item) for item in %s])", quoteText(sep), listExpr), nil
	})

	register("reverse", func(_ *Compiler, tokens []string) (string, error) {
		switch {
		case len(tokens) >= 2 && tokens[1] == "text":
			if len(tokens) != 3 {
				return "", errf(MalformedBuiltinCall, "reverse text requires: reverse text <literal_or_variable>")
			}
			return fmt.Sprintf(`("".join(reversed(%s)))`, render(pyStr(tokens[2]))), nil
		case len(tokens) >= 2 && (tokens[1] == "list" || tokens[1] == "array"):
			if len(tokens) != 3 {
				return "", errf(MalformedBuiltinCall, "reverse list/array requires: reverse list <list> or reverse array <array>")
			}
			return fmt.Sprintf("%s[::-1]", tokens[2]), nil
		case len(tokens) == 2:
			return fmt.Sprintf(`("".join(reversed(%s)))`, tokens[1]), nil
		}
		return "", errf(MalformedBuiltinCall, "reverse requires either 'text' or 'list/array' and one argument")
	})

	register("uppercase", textMethod("upper"))
	register("lowercase", textMethod("lower"))

	register("concat", func(_ *Compiler, tokens []string) (string, error) {
		if len(tokens) < 3 {
			return "", errf(ArityError, "concat function requires at least two arguments (texts)")
		}
		args := make([]string, len(tokens)-1)
		for i, t := range tokens[1:] {
			args[i] = fmt.Sprintf("str(%s)", t)
		}
		return fmt.Sprintf("('').join([%s])", strings.Join(args, ", ")), nil
	})

	register("lengthof", pyUnary("len", " (text or array)"))

	register("typeof", func(_ *Compiler, tokens []string) (string, error) {
		arg, err := oneArg(tokens, "")
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("type(%s).__name__", arg), nil
	})
}

func textLiteral(_ *Compiler, tokens []string) (string, error) {
	if len(tokens) < 2 {
		return "", errf(ArityError, "%s requires at least one argument (text literal)", tokens[0])
	}
	return render(pyStr(strings.Join(tokens[1:], " "))), nil
}

func textMethod(method string) builtinFn {
	return func(_ *Compiler, tokens []string) (string, error) {
		arg, err := oneArg(tokens, " (text)")
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("(%s).%s()", arg, method), nil
	}
}
