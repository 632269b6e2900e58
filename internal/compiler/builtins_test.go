package compiler

import (
	"strings"
	"testing"
)

// compileExpr runs a token sequence through the builtin compiler directly.
func compileExpr(t *testing.T, expr string) string {
	t.Helper()
	out, err := New(ProfileFull).compileBuiltin(strings.Fields(expr))
	if err != nil {
		t.Fatalf("compileBuiltin(%q) returned error: %v", expr, err)
	}
	return out
}

func exprErr(t *testing.T, expr string, code Code) {
	t.Helper()
	_, err := New(ProfileFull).compileBuiltin(strings.Fields(expr))
	if err == nil {
		t.Fatalf("compileBuiltin(%q) expected %s error, got success", expr, code)
	}
	cerr, ok := err.(*Error)
	if !ok {
		t.Fatalf("compileBuiltin(%q) returned %T, want *Error", expr, err)
	}
	if cerr.Code != code {
		t.Fatalf("compileBuiltin(%q) code = %s, want %s (message: %s)", expr, cerr.Code, code, cerr.Message)
	}
}

func TestMathBuiltins(t *testing.T) {
	cases := []struct{ expr, want string }{
		{"sqrt 9", "math.sqrt(9)"},
		{"ceil x", "math.ceil(x)"},
		{"floor x", "math.floor(x)"},
		{"sin 0", "math.sin(0)"},
		{"cos 0", "math.cos(0)"},
		{"tan 0", "math.tan(0)"},
		{"mod 7, 3", "(7) % (3)"},
		{"log 8, 2", "math.log(8, 2)"},
		{"exponent 2 10", "(2)**(10)"},
		{"abs x", "abs(x)"},
		{"round 2.5", "round(2.5)"},
		{"sumof xs", "sum(xs)"},
		{"maxof 1 2 3", "max(1, 2, 3)"},
		{"minof a b", "min(a, b)"},
		{"range 5", "list(range(5))"},
		{"range 2, 5", "list(range(2, 5 + 1))"},
	}
	for _, tc := range cases {
		if got := compileExpr(t, tc.expr); got != tc.want {
			t.Errorf("%q = %q, want %q", tc.expr, got, tc.want)
		}
	}
}

func TestMathBuiltinErrors(t *testing.T) {
	exprErr(t, "sqrt", ArityError)
	exprErr(t, "sqrt 1 2", ArityError)
	exprErr(t, "mod 7 3", ArityError)
	exprErr(t, "log 8", ArityError)
	exprErr(t, "exponent 2", ArityError)
	exprErr(t, "maxof", ArityError)
	exprErr(t, "range", ArityError)
	exprErr(t, "range 1, 2, 3", ArityError)
}

func TestTextBuiltins(t *testing.T) {
	cases := []struct{ expr, want string }{
		{"text hello world", `"hello world"`},
		{"createtext a b c", `"a b c"`},
		{"substring s start 1 length 3", "(s)[1:1+3]"},
		{"substring text hello start 0 length 2", `("hello")[0:0+2]`},
		{"replace s old a new b", "(s).replace(a, b)"},
		{"replace text hi old h new j", `("hi").replace("h", "j")`},
		{"split s by ,", `(s).split(",")`},
		{"split text a,b by ,", `("a,b").split(",")`},
		{"join xs by -", `"-".join([str(item) for item in xs])`},
		{"join list xs by -", `"-".join([str(item) for item in xs])`},
		{"reverse s", `("".join(reversed(s)))`},
		{"reverse text abc", `("".join(reversed("abc")))`},
		{"reverse list xs", "xs[::-1]"},
		{"uppercase s", "(s).upper()"},
		{"lowercase s", "(s).lower()"},
		{"concat a b c", "('').join([str(a), str(b), str(c)])"},
		{"lengthof s", "len(s)"},
		{"typeof x", "type(x).__name__"},
	}
	for _, tc := range cases {
		if got := compileExpr(t, tc.expr); got != tc.want {
			t.Errorf("%q = %q, want %q", tc.expr, got, tc.want)
		}
	}
}

func TestTextBuiltinErrors(t *testing.T) {
	exprErr(t, "text", ArityError)
	exprErr(t, "substring s start 1", MalformedBuiltinCall)
	exprErr(t, "substring s begin 1 length 3", MalformedBuiltinCall)
	exprErr(t, "replace s old a", MalformedBuiltinCall)
	exprErr(t, "split s from ,", MalformedBuiltinCall)
	exprErr(t, "join xs with -", MalformedBuiltinCall)
	exprErr(t, "reverse", MalformedBuiltinCall)
	exprErr(t, "concat a", ArityError)
	exprErr(t, "uppercase", ArityError)
}

// A keyword-framed operation with no arguments at all must fail like any
// other malformed call rather than reading past the token list.
func TestSubjectBuiltinsWithoutArguments(t *testing.T) {
	for _, expr := range []string{"substring", "replace", "split"} {
		exprErr(t, expr, MalformedBuiltinCall)
	}
}

func TestQuotedJoinSeparatorPreserved(t *testing.T) {
	got := compileExpr(t, `join xs by ","`)
	want := `",".join([str(item) for item in xs])`
	if got != want {
		t.Errorf("pre-quoted separator = %q, want %q", got, want)
	}
}

func TestListBuiltins(t *testing.T) {
	cases := []struct{ expr, want string }{
		{"append list xs value 5", "xs.append(5)"},
		{"append array xs value 5", "xs.append(5)"},
		{"remove list xs value 5", "xs.remove(5)"},
		{"pop list xs index 0", "xs.pop(0)"},
		{"indexof list xs value 5", "xs.index(5)"},
		{"countof list xs value 5", "xs.count(5)"},
		{"sortlist list xs", "xs.sort()"},
		{"uniquelist list xs", "list(dict.fromkeys(xs))"},
		{"createarray 1 2 3", "[1, 2, 3]"},
		{"enumeratearray xs", "list(enumerate(xs))"},
	}
	for _, tc := range cases {
		if got := compileExpr(t, tc.expr); got != tc.want {
			t.Errorf("%q = %q, want %q", tc.expr, got, tc.want)
		}
	}
}

func TestListBuiltinErrors(t *testing.T) {
	exprErr(t, "append xs value 5", MalformedBuiltinCall)
	exprErr(t, "append list xs 5", MalformedBuiltinCall)
	exprErr(t, "pop list xs value 0", MalformedBuiltinCall)
	exprErr(t, "sortlist list xs extra", MalformedBuiltinCall)
	exprErr(t, "createarray", ArityError)
}

func TestDictBuiltins(t *testing.T) {
	cases := []struct{ expr, want string }{
		{"keysfromdictionary dictionary d", "list(d.keys())"},
		{"valuesfromdictionary dictionary d", "list(d.values())"},
		{"getvaluefromdictionary dictionary d key k", "d.get(k)"},
		{"setvalueindictionary dictionary d key k value 5", "d[k] = 5"},
		{"setvalueindictionary dictionary d key k value text a b", `d[k] = "a b"`},
		{"removekeyfromdictionary dictionary d key k", "del d[k]"},
	}
	for _, tc := range cases {
		if got := compileExpr(t, tc.expr); got != tc.want {
			t.Errorf("%q = %q, want %q", tc.expr, got, tc.want)
		}
	}
}

func TestCreateDictionary(t *testing.T) {
	got := compileExpr(t, "createdictionary key a value 1 key b value 2")
	want := `{"a": "1", "b": "2"}`
	if got != want {
		t.Errorf("createdictionary = %q, want %q (key order must be preserved)", got, want)
	}

	// Value segments naming a builtin are compiled recursively.
	got = compileExpr(t, "createdictionary key n value maxof 1 2")
	want = `{"n": max(1, 2)}`
	if got != want {
		t.Errorf("nested builtin value = %q, want %q", got, want)
	}
}

func TestCreateDictionaryErrors(t *testing.T) {
	exprErr(t, "createdictionary", MalformedBuiltinCall)
	exprErr(t, "createdictionary value 1", MalformedBuiltinCall)
	exprErr(t, "createdictionary key a", MalformedBuiltinCall)
	exprErr(t, "createdictionary key a notvalue 1", MalformedBuiltinCall)
	exprErr(t, "createdictionary key a value", MalformedBuiltinCall)
	exprErr(t, "createdictionary key a value 1 value 2", MalformedBuiltinCall)
}

func TestLogicBuiltins(t *testing.T) {
	cases := []struct{ expr, want string }{
		{"logicalnot x", "not x"},
		{"logicaland a b", "(a) and (b)"},
		{"logicalor a b", "(a) or (b)"},
		{"logicalxor a b", "((a) and (not b)) or ((not a) and (b))"},
		{"logicalnot true", "not True"},
	}
	for _, tc := range cases {
		if got := compileExpr(t, tc.expr); got != tc.want {
			t.Errorf("%q = %q, want %q", tc.expr, got, tc.want)
		}
	}
	exprErr(t, "logicaland a", ArityError)
}

func TestCastBuiltins(t *testing.T) {
	cases := []struct{ expr, want string }{
		{"integer x", "int(x)"},
		{"float x", "float(x)"},
		{"string x", "str(x)"},
		{"list x", "list(x)"},
		{"tuple x", "tuple(x)"},
		{"set x", "set(x)"},
		{"dictionaryof x", "dict(x)"},
	}
	for _, tc := range cases {
		if got := compileExpr(t, tc.expr); got != tc.want {
			t.Errorf("%q = %q, want %q", tc.expr, got, tc.want)
		}
	}
}

func TestFileBuiltins(t *testing.T) {
	cases := []struct{ expr, want string }{
		{"readfile file notes.txt", `open("notes.txt").read()`},
		{"writefile file out.txt text hello world", `open("out.txt", "w").write("hello world")`},
		{"appendfile file log.txt text entry", `open("log.txt", "a").write("entry")`},
	}
	for _, tc := range cases {
		if got := compileExpr(t, tc.expr); got != tc.want {
			t.Errorf("%q = %q, want %q", tc.expr, got, tc.want)
		}
	}
	exprErr(t, "readfile notes.txt", MalformedBuiltinCall)
	exprErr(t, "writefile file out.txt hello", MalformedBuiltinCall)
}

func TestUtilityBuiltins(t *testing.T) {
	cases := []struct{ expr, want string }{
		{"clearscreen", "os.system('cls' if os.name == 'nt' else 'clear')"},
		{"exitprogram", "sys.exit()"},
		{"currenttime", "datetime.datetime.now().strftime('%H:%M:%S')"},
		{"currentdate", "datetime.datetime.now().strftime('%Y-%m-%d')"},
		{"currenttimestamp", "str(datetime.datetime.now().timestamp())"},
		{"helpfunction print", "help(print)"},
		{"directoryof math", "dir(math)"},
	}
	for _, tc := range cases {
		if got := compileExpr(t, tc.expr); got != tc.want {
			t.Errorf("%q = %q, want %q", tc.expr, got, tc.want)
		}
	}
	exprErr(t, "clearscreen now", ArityError)
	exprErr(t, "currenttime please", ArityError)
}

func TestUnknownFunction(t *testing.T) {
	exprErr(t, "transmogrify x", UnknownFunction)
}

func TestBooleanLiteralNormalizationInArgs(t *testing.T) {
	got := compileExpr(t, "createarray true FALSE x")
	want := "[True, False, x]"
	if got != want {
		t.Errorf("boolean args = %q, want %q", got, want)
	}
}

func TestStringEscapingCentralized(t *testing.T) {
	got := render(pyStr(`say "hi" \now`))
	want := `"say \"hi\" \\now"`
	if got != want {
		t.Errorf("render(pyStr) = %q, want %q", got, want)
	}
}
