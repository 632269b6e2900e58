package compiler

import (
	"fmt"
	"strings"
)

// Logic, casting, file, and utility operations.

func registerMiscBuiltins() {
	register("logicalnot", func(_ *Compiler, tokens []string) (string, error) {
		arg, err := oneArg(tokens, "")
		if err != nil {
			return "", err
		}
		return "not " + arg, nil
	})
	register("logicaland", logicBinary("(%s) and (%s)"))
	register("logicalor", logicBinary("(%s) or (%s)"))
	register("logicalxor", logicBinary("((%s) and (not %s)) or ((not %s) and (%s))"))

	// Casting operations: one argument, a Python constructor call.
	register("integer", pyUnary("int", ""))
	register("float", pyUnary("float", ""))
	register("string", pyUnary("str", ""))
	register("list", pyUnary("list", ""))
	register("tuple", pyUnary("tuple", ""))
	register("set", pyUnary("set", ""))
	register("dictionaryof", pyUnary("dict", ""))

	registerExtended("readfile", func(_ *Compiler, tokens []string) (string, error) {
		if len(tokens) != 3 || tokens[1] != "file" {
			return "", errf(MalformedBuiltinCall, "readfile file requires: readfile file <path>")
		}
		return fmt.Sprintf("open(%s).read()", render(pyStr(tokens[2]))), nil
	})
	registerExtended("writefile", fileWrite("writefile", "w"))
	registerExtended("appendfile", fileWrite("appendfile", "a"))

	register("clearscreen", zeroArg("os.system('cls' if os.name == 'nt' else 'clear')"))
	register("exitprogram", zeroArg("sys.exit()"))
	register("currenttime", zeroArg("datetime.datetime.now().strftime('%H:%M:%S')"))
	register("currentdate", zeroArg("datetime.datetime.now().strftime('%Y-%m-%d')"))
	register("currenttimestamp", zeroArg("str(datetime.datetime.now().timestamp())"))

	register("helpfunction", func(_ *Compiler, tokens []string) (string, error) {
		arg, err := oneArg(tokens, " (function name)")
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("help(%s)", arg), nil
	})
	register("directoryof", func(_ *Compiler, tokens []string) (string, error) {
		arg, err := oneArg(tokens, " (module name)")
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("dir(%s)", arg), nil
	})
}

func logicBinary(template string) builtinFn {
	return func(_ *Compiler, tokens []string) (string, error) {
		if len(tokens) != 3 {
			return "", errf(ArityError, "%s function requires two arguments", tokens[0])
		}
		n := strings.Count(template, "%s")
		args := make([]any, n)
		for i := range args {
			args[i] = tokens[1+i%2]
		}
		return fmt.Sprintf(template, args...), nil
	}
}

func fileWrite(name, mode string) builtinFn {
	return func(_ *Compiler, tokens []string) (string, error) {
		if len(tokens) < 5 || tokens[1] != "file" || tokens[3] != "text" {
			return "", errf(MalformedBuiltinCall, "%s file requires: %s file <path> text <content>", name, name)
		}
		path := render(pyStr(tokens[2]))
		content := render(pyStr(strings.Join(tokens[4:], " ")))
		return fmt.Sprintf("open(%s, \"%s\").write(%s)", path, mode, content), nil
	}
}

func zeroArg(emit string) builtinFn {
	return func(_ *Compiler, tokens []string) (string, error) {
		if len(tokens) != 1 {
			return "", errf(ArityError, "%s function does not require any arguments", tokens[0])
		}
		return emit, nil
	}
}
