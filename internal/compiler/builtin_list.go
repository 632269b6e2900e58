package compiler

import "fmt"

// List and array operations. These all use the 'op list|array <subject>' frame.

// listOps names the operations eligible for the bare two-word call sugar
// ('<variable> append value 3').
var listOps = map[string]bool{
	"append": true, "remove": true, "pop": true, "indexof": true,
	"countof": true, "sortlist": true, "uniquelist": true, "reverse": true,
}

func registerListBuiltins() {
	register("append", listMutation("append", "value", "append list|array <list_or_array> value <value>"))
	register("remove", listMutation("remove", "value", "remove list|array <list_or_array> value <value>"))
	register("pop", listMutation("pop", "index", "pop list|array <list_or_array> index <index>"))
	register("indexof", listMutation("index", "value", "indexof list|array <list_or_array> value <value>"))
	register("countof", listMutation("count", "value", "countof list|array <list_or_array> value <value>"))

	register("sortlist", func(_ *Compiler, tokens []string) (string, error) {
		subj, rest, err := listSubject(tokens, "sortlist list|array <list_or_array>")
		if err != nil || len(rest) != 0 {
			return "", errf(MalformedBuiltinCall, "sortlist list/array requires: sortlist list|array <list_or_array>")
		}
		return subj + ".sort()", nil
	})

	register("uniquelist", func(_ *Compiler, tokens []string) (string, error) {
		subj, rest, err := listSubject(tokens, "uniquelist list|array <list_or_array>")
		if err != nil || len(rest) != 0 {
			return "", errf(MalformedBuiltinCall, "uniquelist list/array requires: uniquelist list|array <list_or_array>")
		}
		return fmt.Sprintf("list(dict.fromkeys(%s))", subj), nil
	})

	register("createarray", func(_ *Compiler, tokens []string) (string, error) {
		if len(tokens) < 2 {
			return "", errf(ArityError, "createarray function requires at least one argument (array elements)")
		}
		items := make(pyList, len(tokens)-1)
		for i, t := range tokens[1:] {
			items[i] = pyRaw(t)
		}
		return render(items), nil
	})

	register("enumeratearray", func(_ *Compiler, tokens []string) (string, error) {
		arg, err := oneArg(tokens, " (array)")
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("list(enumerate(%s))", arg), nil
	})
}

// listMutation emits '<subject>.<method>(<arg>)' after validating the
// '<op> list|array <subject> <keyword> <arg...>' frame.
func listMutation(method, keyword, usage string) builtinFn {
	return func(_ *Compiler, tokens []string) (string, error) {
		subj, rest, err := listSubject(tokens, usage)
		if err != nil {
			return "", err
		}
		arg, err := keywordValue(rest, tokens[0], keyword, usage)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%s.%s(%s)", subj, method, arg), nil
	}
}
