package compiler

import (
	"fmt"
	"strings"
)

// Dictionary operations. These use the 'op dictionary <subject>' frame with
// the subject always first; removekeyfromdictionary follows the same
// convention as get/set rather than its historical key-first order.

func registerDictBuiltins() {
	registerExtended("keysfromdictionary", dictView("keys"))
	registerExtended("valuesfromdictionary", dictView("values"))

	registerExtended("getvaluefromdictionary", func(_ *Compiler, tokens []string) (string, error) {
		if len(tokens) != 5 || tokens[1] != "dictionary" || tokens[3] != "key" {
			return "", errf(MalformedBuiltinCall, "getvaluefromdictionary requires: getvaluefromdictionary dictionary <dictionary> key <key>")
		}
		return fmt.Sprintf("%s.get(%s)", tokens[2], tokens[4]), nil
	})

	registerExtended("setvalueindictionary", func(_ *Compiler, tokens []string) (string, error) {
		if len(tokens) < 7 || tokens[1] != "dictionary" || tokens[3] != "key" || tokens[5] != "value" {
			return "", errf(MalformedBuiltinCall, "setvalueindictionary requires: setvalueindictionary dictionary <dictionary> key <key> value <value>")
		}
		valueTokens := tokens[6:]
		var value string
		if valueTokens[0] == "text" {
			value = render(pyStr(strings.Join(valueTokens[1:], " ")))
		} else {
			value = strings.Join(valueTokens, " ")
		}
		return fmt.Sprintf("%s[%s] = %s", tokens[2], tokens[4], value), nil
	})

	registerExtended("removekeyfromdictionary", func(_ *Compiler, tokens []string) (string, error) {
		if len(tokens) != 5 || tokens[1] != "dictionary" || tokens[3] != "key" {
			return "", errf(MalformedBuiltinCall, "removekeyfromdictionary requires: removekeyfromdictionary dictionary <dictionary> key <key>")
		}
		return fmt.Sprintf("del %s[%s]", tokens[2], tokens[4]), nil
	})

	registerExtended("createdictionary", compileCreateDictionary)
}

func dictView(method string) builtinFn {
	return func(_ *Compiler, tokens []string) (string, error) {
		if len(tokens) != 3 || tokens[1] != "dictionary" {
			return "", errf(MalformedBuiltinCall, "%s requires: %s dictionary <dictionary>", tokens[0], tokens[0])
		}
		return fmt.Sprintf("list(%s.%s())", tokens[2], method), nil
	}
}

// compileCreateDictionary parses repeating 'key <k> value <v...>' pairs. Each
// value segment is itself compiled through the registry when its first token
// names a builtin, otherwise it becomes a quoted text literal. Pair order is
// preserved in the emitted mapping.
func compileCreateDictionary(c *Compiler, tokens []string) (string, error) {
	var pairs pyDict
	i := 1
	for i < len(tokens) {
		if tokens[i] != "key" {
			return "", errf(MalformedBuiltinCall,
				"syntax error in 'createdictionary': expected keyword 'key' at position %d, but found '%s'", i, tokens[i])
		}
		if i+1 >= len(tokens) {
			return "", errf(MalformedBuiltinCall,
				"syntax error in 'createdictionary': missing key name after 'key' keyword")
		}
		key := tokens[i+1]
		if i+2 >= len(tokens) || tokens[i+2] != "value" {
			found := "end of input"
			if i+2 < len(tokens) {
				found = "'" + tokens[i+2] + "'"
			}
			return "", errf(MalformedBuiltinCall,
				"syntax error in 'createdictionary': expected keyword 'value' after key '%s', but found %s", key, found)
		}

		var valueTokens []string
		i += 3
		for i < len(tokens) && tokens[i] != "key" && tokens[i] != "value" {
			valueTokens = append(valueTokens, tokens[i])
			i++
		}
		if len(valueTokens) == 0 {
			return "", errf(MalformedBuiltinCall,
				"syntax error in 'createdictionary': missing value after 'value' keyword for key '%s'", key)
		}
		if i < len(tokens) && tokens[i] == "value" {
			return "", errf(MalformedBuiltinCall,
				"syntax error in 'createdictionary': unexpected 'value' after value for key '%s'; expected 'key' for the next pair", key)
		}

		var value string
		if c.profile.isBuiltin(valueTokens[0]) {
			compiled, err := c.compileBuiltin(valueTokens)
			if err != nil {
				return "", err
			}
			value = compiled
		} else {
			value = render(pyStr(strings.Join(valueTokens, " ")))
		}
		pairs = append(pairs, pyPair{key: pyStr(key), value: pyRaw(value)})
	}
	if len(pairs) == 0 {
		return "", errf(MalformedBuiltinCall,
			"syntax error in 'createdictionary': expected key-value pairs like 'key <key> value <value> ...'")
	}
	return render(pairs), nil
}
