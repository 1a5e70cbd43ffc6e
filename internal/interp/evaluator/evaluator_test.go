package evaluator

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/alexrr04/mini-scheme-interpreter/internal/interp/runtime"
	"github.com/alexrr04/mini-scheme-interpreter/internal/lexer"
	"github.com/alexrr04/mini-scheme-interpreter/internal/parser"
)

// testEval parses src and evaluates its top-level expressions in order,
// returning the last expression's value and everything written to the
// output stream. stdin feeds (read).
func testEval(t *testing.T, src, stdin string) (runtime.Value, string, error) {
	t.Helper()
	p := parser.New(lexer.New(src))
	program := p.ParseProgram()
	if len(p.Errors()) > 0 {
		t.Fatalf("parse errors for %q: %v", src, p.Errors())
	}

	var out bytes.Buffer
	env := runtime.NewEnvironment()
	e := New(env, strings.NewReader(stdin), &out, DefaultConfig())

	var result runtime.Value = runtime.Unit
	for _, expr := range program.Expressions {
		var err error
		result, err = e.Eval(expr)
		if err != nil {
			return nil, out.String(), err
		}
	}
	return result, out.String(), nil
}

func mustEval(t *testing.T, src string) runtime.Value {
	t.Helper()
	v, _, err := testEval(t, src, "")
	if err != nil {
		t.Fatalf("eval %q: %v", src, err)
	}
	return v
}

func wantRendered(t *testing.T, src, want string) {
	t.Helper()
	if got := mustEval(t, src).String(); got != want {
		t.Errorf("eval %q: want %q, got %q", src, want, got)
	}
}

func wantError(t *testing.T, src string, target any) {
	t.Helper()
	_, _, err := testEval(t, src, "")
	if err == nil {
		t.Fatalf("eval %q: expected an error", src)
	}
	if !errors.As(err, target) {
		t.Errorf("eval %q: want %T, got %T (%v)", src, target, err, err)
	}
}

func TestArithmetic(t *testing.T) {
	tests := []struct{ src, want string }{
		{"(+ 1 2 3)", "6"},
		{"(- 10 3 2)", "5"},
		{"(* 2 3 4)", "24"},
		{"(/ 7 2)", "3"},
		{"(/ 20 2 5)", "2"},
		{"(mod 10 3)", "1"},
		{"(+ 1 2.5)", "3.5"},
		{"(* 2 0.5)", "1"},
		{"(/ 7 2.0)", "3.5"},
	}
	for _, tt := range tests {
		wantRendered(t, tt.src, tt.want)
	}
}

func TestFloorDivisionOnNegatives(t *testing.T) {
	tests := []struct{ src, want string }{
		{"(/ 7 2)", "3"},
		{"(/ -7 2)", "-4"},
		{"(/ 7 -2)", "-4"},
		{"(/ -7 -2)", "3"},
	}
	for _, tt := range tests {
		wantRendered(t, tt.src, tt.want)
	}
}

func TestModuloSignFollowsLeftOperand(t *testing.T) {
	tests := []struct{ src, want string }{
		{"(mod 7 3)", "1"},
		{"(mod -7 3)", "-1"},
		{"(mod 7 -3)", "1"},
	}
	for _, tt := range tests {
		wantRendered(t, tt.src, tt.want)
	}
}

func TestArithmeticAssociativity(t *testing.T) {
	// (+ a b c) equals (+ (+ a b) c)
	left := mustEval(t, "(+ 1 2 3)")
	nested := mustEval(t, "(+ (+ 1 2) 3)")
	if left.String() != nested.String() {
		t.Errorf("left fold mismatch: %s vs %s", left, nested)
	}
}

func TestArithmeticErrors(t *testing.T) {
	var arith *runtime.ArithError
	wantError(t, "(/ 1 0)", &arith)
	wantError(t, "(mod 1 0)", &arith)
	var typ *runtime.TypeError
	wantError(t, `(+ 1 "two")`, &typ)
}

func TestRelationalChaining(t *testing.T) {
	tests := []struct{ src, want string }{
		{"(< 1 2 3)", "#t"},
		{"(< 1 3 2)", "#f"},
		{"(<= 1 1 2)", "#t"},
		{"(> 3 2 1)", "#t"},
		{"(>= 3 3 1)", "#t"},
		{"(= 1 1 1)", "#t"},
		{"(= 1 2)", "#f"},
		{"(<> 1 2)", "#t"},
		{"(<> 1 1)", "#f"},
		{"(< 1 2.5)", "#t"},
		{"(= 1 1.0)", "#t"},
		{`(= "a" "a")`, "#t"},
		{`(< "a" "b")`, "#t"},
		{"(= #t #t)", "#t"},
		{"(<> #t #f)", "#t"},
	}
	for _, tt := range tests {
		wantRendered(t, tt.src, tt.want)
	}
}

func TestCrossTypeComparisonFails(t *testing.T) {
	var typ *runtime.TypeError
	wantError(t, `(= 1 "1")`, &typ)
	wantError(t, `(< 1 "2")`, &typ)
	wantError(t, "(< #t #f)", &typ)
}

func TestTruthiness(t *testing.T) {
	// Only #f is false; 0, "" and '() are all truthy.
	tests := []struct{ src, want string }{
		{"(if #f 1 2)", "2"},
		{"(if #t 1 2)", "1"},
		{"(if 0 1 2)", "1"},
		{`(if "" 1 2)`, "1"},
		{"(if '() 1 2)", "1"},
		{"(not #f)", "#t"},
		{"(not 0)", "#f"},
	}
	for _, tt := range tests {
		wantRendered(t, tt.src, tt.want)
	}
}

func TestIfWithBeginBranch(t *testing.T) {
	v, out, err := testEval(t, `(if #t (begin (display "a") 1) 2)`, "")
	if err != nil {
		t.Fatal(err)
	}
	if v.String() != "1" {
		t.Errorf("begin branch value: want 1, got %s", v)
	}
	if out != "a" {
		t.Errorf("begin branch effects: want %q, got %q", "a", out)
	}
}

func TestCond(t *testing.T) {
	tests := []struct{ src, want string }{
		{`(cond ((= 1 2) "a") ((= 1 1) "b") (else "c"))`, "b"},
		{`(cond ((= 1 2) "a") (else "c"))`, "c"},
		{`(cond ((= 1 1) 1 2 3))`, "3"}, // last expression of the clause
	}
	for _, tt := range tests {
		wantRendered(t, tt.src, tt.want)
	}
}

func TestCondWithoutMatchYieldsUnit(t *testing.T) {
	v := mustEval(t, "(cond ((= 1 2) 1))")
	if !runtime.IsUnit(v) {
		t.Errorf("cond without match: want unit, got %s %s", v.Type(), v)
	}
}

func TestAndOrShortCircuit(t *testing.T) {
	tests := []struct{ src, want string }{
		{"(and #t #t)", "#t"},
		{"(and #t #f)", "#f"},
		{"(and 1 2 3)", "#t"},
		{"(or #f #f)", "#f"},
		{"(or #f 1)", "#t"},
	}
	for _, tt := range tests {
		wantRendered(t, tt.src, tt.want)
	}

	// The right operand is never evaluated when the left decides.
	_, out, err := testEval(t, `(and #f (display "never"))`, "")
	if err != nil {
		t.Fatal(err)
	}
	if out != "" {
		t.Errorf("and must short-circuit: output %q", out)
	}
	_, out, err = testEval(t, `(or #t (display "never"))`, "")
	if err != nil {
		t.Fatal(err)
	}
	if out != "" {
		t.Errorf("or must short-circuit: output %q", out)
	}
}

func TestDefineAndLookup(t *testing.T) {
	wantRendered(t, "(define x 10) x", "10")
	wantRendered(t, "(define x 10) (define y (+ x 5)) y", "15")
}

func TestDefineYieldsUnit(t *testing.T) {
	v := mustEval(t, "(define x 1)")
	if !runtime.IsUnit(v) {
		t.Errorf("define: want unit, got %s", v.Type())
	}
}

func TestRedefinitionInSameFrameFails(t *testing.T) {
	var redef *runtime.RedefinitionError
	wantError(t, "(define x 1) (define x 2)", &redef)
	wantError(t, "(let ((x 1) (x 2)) x)", &redef)
}

func TestUndefinedIdentifier(t *testing.T) {
	var undef *runtime.UndefinedError
	wantError(t, "x", &undef)
	wantError(t, "(f 1)", &undef)
}

func TestFunctionCall(t *testing.T) {
	wantRendered(t, "(define (sq x) (* x x)) (sq 4)", "16")
	wantRendered(t, "(define (add a b) (+ a b)) (add 2 3)", "5")
	// body sequence: last expression wins
	wantRendered(t, "(define (f) 1 2 3) (f)", "3")
}

func TestRecursion(t *testing.T) {
	wantRendered(t, "(define (fact n) (if (<= n 1) 1 (* n (fact (- n 1))))) (fact 5)", "120")
	wantRendered(t, "(define (fib n) (if (< n 2) n (+ (fib (- n 1)) (fib (- n 2))))) (fib 10)", "55")
}

func TestArityMismatch(t *testing.T) {
	var arity *runtime.ArityError
	wantError(t, "(define (f x) x) (f 1 2)", &arity)
	wantError(t, "(define (f x) x) (f)", &arity)
}

func TestCallingANonFunction(t *testing.T) {
	var typ *runtime.TypeError
	wantError(t, "(define x 1) (x 2)", &typ)
}

func TestArgumentsEvaluateLeftToRight(t *testing.T) {
	src := `(define (f a b) a) (f (begin (display "1") 10) (begin (display "2") 20))`
	v, out, err := testEval(t, src, "")
	if err != nil {
		t.Fatal(err)
	}
	if out != "12" {
		t.Errorf("argument order: want output 12, got %q", out)
	}
	if v.String() != "10" {
		t.Errorf("call result: want 10, got %s", v)
	}
}

func TestCalleeDoesNotSeeCallerLocals(t *testing.T) {
	// g is called while f's local frame binds y; g must not see it.
	src := `(define (g) y) (define (f y) (g)) (f 1)`
	var undef *runtime.UndefinedError
	wantError(t, src, &undef)
}

func TestCalleeSeesGlobals(t *testing.T) {
	wantRendered(t, "(define base 100) (define (f x) (+ base x)) (f 1)", "101")
}

func TestScopeDepthRestoredAfterCall(t *testing.T) {
	p := parser.New(lexer.New("(define (boom) (car '())) (boom)"))
	program := p.ParseProgram()
	if len(p.Errors()) > 0 {
		t.Fatalf("parse errors: %v", p.Errors())
	}
	env := runtime.NewEnvironment()
	e := New(env, strings.NewReader(""), &bytes.Buffer{}, DefaultConfig())

	if _, err := e.Eval(program.Expressions[0]); err != nil {
		t.Fatal(err)
	}
	depthBefore := env.Depth()
	if _, err := e.Eval(program.Expressions[1]); err == nil {
		t.Fatal("call should fail")
	}
	if env.Depth() != depthBefore {
		t.Errorf("depth after failed call: want %d, got %d", depthBefore, env.Depth())
	}
}

func TestRecursionDepthLimit(t *testing.T) {
	p := parser.New(lexer.New("(define (loop) (loop)) (loop)"))
	program := p.ParseProgram()
	if len(p.Errors()) > 0 {
		t.Fatalf("parse errors: %v", p.Errors())
	}
	env := runtime.NewEnvironment()
	e := New(env, strings.NewReader(""), &bytes.Buffer{}, &Config{MaxRecursionDepth: 100})

	if _, err := e.Eval(program.Expressions[0]); err != nil {
		t.Fatal(err)
	}
	_, err := e.Eval(program.Expressions[1])
	var overflow *runtime.StackOverflowError
	if !errors.As(err, &overflow) {
		t.Fatalf("want *StackOverflowError, got %T (%v)", err, err)
	}
	if env.Depth() != 1 {
		t.Errorf("depth after overflow: want 1, got %d", env.Depth())
	}
}

func TestLet(t *testing.T) {
	wantRendered(t, "(let ((x 10) (y 20)) (+ x y))", "30")
	// bindings evaluate in the enclosing scope, with no mutual visibility
	var undef *runtime.UndefinedError
	wantError(t, "(let ((x 1) (y (+ x 1))) y)", &undef)
	// body sequence: last expression wins
	wantRendered(t, "(let ((x 1)) x (+ x 1))", "2")
}

func TestLetBindingsDoNotLeak(t *testing.T) {
	var undef *runtime.UndefinedError
	wantError(t, "(let ((x 10)) x) x", &undef)
}

func TestLetShadowsAndRestores(t *testing.T) {
	wantRendered(t, "(define x 1) (let ((x 2)) x)", "2")
	wantRendered(t, "(define x 1) (let ((x 2)) x) x", "1")
}

func TestListPrimitives(t *testing.T) {
	tests := []struct{ src, want string }{
		{"'(1 2 3)", "(1 2 3)"},
		{"(car '(1 2 3))", "1"},
		{"(cdr '(1 2 3))", "(2 3)"},
		{"(cons 1 '(2 3))", "(1 2 3)"},
		{"(cons 1 '())", "(1)"},
		{"(null? '())", "#t"},
		{"(null? '(1))", "#f"},
		{"(null? 5)", "#f"},
		{"(cons (car '(1 2)) (cdr '(1 2)))", "(1 2)"},
	}
	for _, tt := range tests {
		wantRendered(t, tt.src, tt.want)
	}
}

func TestListErrors(t *testing.T) {
	var rng *runtime.RangeError
	wantError(t, "(car '())", &rng)
	wantError(t, "(cdr '())", &rng)
	var typ *runtime.TypeError
	wantError(t, "(car 5)", &typ)
	wantError(t, "(cdr 5)", &typ)
	wantError(t, "(cons 1 2)", &typ)
}

func TestQuotedListElements(t *testing.T) {
	tests := []struct{ src, want string }{
		{`'(1 2.5 "s" #t)`, "(1 2.5 s #t)"},
		{"'(a b c)", "(a b c)"}, // identifiers stay as symbols
		{"'(1 '(2 3) 4)", "(1 (2 3) 4)"},
	}
	for _, tt := range tests {
		wantRendered(t, tt.src, tt.want)
	}
}

func TestQuotedIdentifiersAreNotLookedUp(t *testing.T) {
	// x is unbound; quoting must not evaluate it.
	wantRendered(t, "'(x)", "(x)")
}

func TestDisplayAndNewline(t *testing.T) {
	_, out, err := testEval(t, `(display "hi") (newline) (display '(1 2)) (display 3)`, "")
	if err != nil {
		t.Fatal(err)
	}
	if out != "hi\n(1 2)3" {
		t.Errorf("output: want %q, got %q", "hi\n(1 2)3", out)
	}
}

func TestDisplayYieldsUnit(t *testing.T) {
	v, _, err := testEval(t, `(display "x")`, "")
	if err != nil {
		t.Fatal(err)
	}
	if !runtime.IsUnit(v) {
		t.Errorf("display: want unit, got %s", v.Type())
	}
}

func TestRead(t *testing.T) {
	tests := []struct {
		stdin string
		want  string
	}{
		{"42\n", "42"},
		{"  42  \n", "42"},
		{"3.5\n", "3.5"},
		{"hello\n", "hello"},
		{"'(1 2 3)\n", "(1 2 3)"},
	}
	for _, tt := range tests {
		v, _, err := testEval(t, "(read)", tt.stdin)
		if err != nil {
			t.Fatalf("read %q: %v", tt.stdin, err)
		}
		if v.String() != tt.want {
			t.Errorf("read %q: want %q, got %q", tt.stdin, tt.want, v.String())
		}
	}
}

func TestReadTypes(t *testing.T) {
	tests := []struct {
		stdin string
		want  string
	}{
		{"42\n", "integer"},
		{"3.5\n", "float"},
		{"3.5.7\n", "string"},
		{"hello world\n", "string"},
		{"'(1 2)\n", "list"},
	}
	for _, tt := range tests {
		v, _, err := testEval(t, "(read)", tt.stdin)
		if err != nil {
			t.Fatal(err)
		}
		if v.Type() != tt.want {
			t.Errorf("read %q: want kind %s, got %s", tt.stdin, tt.want, v.Type())
		}
	}
}

func TestFormatEvalRoundTrip(t *testing.T) {
	// format(eval(format(v))) == format(v)
	sources := []string{"42", "-7", "3.5", "#t", "#f", "'(1 2 3)", `'(1 2.5 #t)`}
	for _, src := range sources {
		first := mustEval(t, src).String()
		rendered := first
		if strings.HasPrefix(rendered, "(") {
			rendered = "'" + rendered
		}
		second := mustEval(t, rendered).String()
		if first != second {
			t.Errorf("round trip of %q: %q != %q", src, first, second)
		}
	}
}

func TestInteractiveModePrintsNonUnitResults(t *testing.T) {
	p := parser.New(lexer.New(`(define x 10) (+ x 5) (display "!")`))
	program := p.ParseProgram()
	if len(p.Errors()) > 0 {
		t.Fatalf("parse errors: %v", p.Errors())
	}
	var out bytes.Buffer
	cfg := DefaultConfig()
	cfg.Interactive = true
	e := New(runtime.NewEnvironment(), strings.NewReader(""), &out, cfg)
	if _, err := e.Eval(program); err != nil {
		t.Fatal(err)
	}
	if out.String() != "15\n!" {
		t.Errorf("interactive output: want %q, got %q", "15\n!", out.String())
	}
}

func TestScriptModeDiscardsResults(t *testing.T) {
	p := parser.New(lexer.New("(+ 1 2)"))
	program := p.ParseProgram()
	var out bytes.Buffer
	e := New(runtime.NewEnvironment(), strings.NewReader(""), &out, DefaultConfig())
	if _, err := e.Eval(program); err != nil {
		t.Fatal(err)
	}
	if out.String() != "" {
		t.Errorf("script mode must not print results: got %q", out.String())
	}
}
