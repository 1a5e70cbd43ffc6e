package parser

import (
	"fmt"
	"strings"
	"testing"

	"github.com/alexrr04/mini-scheme-interpreter/internal/lexer"
	"github.com/alexrr04/mini-scheme-interpreter/pkg/ast"
)

func parseProgram(t *testing.T, input string) *ast.Program {
	t.Helper()
	p := New(lexer.New(input))
	program := p.ParseProgram()
	if len(p.Errors()) > 0 {
		t.Fatalf("parser errors for %q: %v", input, p.Errors())
	}
	return program
}

func parseOne(t *testing.T, input string) ast.Expression {
	t.Helper()
	program := parseProgram(t, input)
	if len(program.Expressions) != 1 {
		t.Fatalf("expected 1 expression, got %d", len(program.Expressions))
	}
	return program.Expressions[0]
}

func TestConstantDefinition(t *testing.T) {
	expr := parseOne(t, "(define x 10)")
	cd, ok := expr.(*ast.ConstantDefinition)
	if !ok {
		t.Fatalf("expected *ast.ConstantDefinition, got %T", expr)
	}
	if cd.Name != "x" {
		t.Errorf("name: want x, got %s", cd.Name)
	}
	if _, ok := cd.Value.(*ast.IntegerLiteral); !ok {
		t.Errorf("value: want *ast.IntegerLiteral, got %T", cd.Value)
	}
}

func TestFunctionDefinition(t *testing.T) {
	expr := parseOne(t, "(define (add a b) (+ a b))")
	fd, ok := expr.(*ast.FunctionDefinition)
	if !ok {
		t.Fatalf("expected *ast.FunctionDefinition, got %T", expr)
	}
	if fd.Name != "add" {
		t.Errorf("name: want add, got %s", fd.Name)
	}
	if len(fd.Parameters) != 2 || fd.Parameters[0] != "a" || fd.Parameters[1] != "b" {
		t.Errorf("parameters: want [a b], got %v", fd.Parameters)
	}
	if len(fd.Body) != 1 {
		t.Fatalf("body: want 1 expression, got %d", len(fd.Body))
	}
	if _, ok := fd.Body[0].(*ast.ArithmeticExpression); !ok {
		t.Errorf("body[0]: want *ast.ArithmeticExpression, got %T", fd.Body[0])
	}
}

func TestSpecialFormsDispatch(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"(if (= 1 1) 1 2)", "*ast.IfExpression"},
		{"(begin 1 2 3)", "*ast.BeginExpression"},
		{`(cond ((= 1 2) "a") (else "b"))`, "*ast.CondExpression"},
		{"(and #t #f)", "*ast.AndExpression"},
		{"(or #t #f)", "*ast.OrExpression"},
		{"(not #t)", "*ast.NotExpression"},
		{"(let ((x 1)) x)", "*ast.LetExpression"},
		{"(+ 1 2)", "*ast.ArithmeticExpression"},
		{"(mod 5 2)", "*ast.ArithmeticExpression"},
		{"(<> 1 2)", "*ast.RelationalExpression"},
		{"(car '(1))", "*ast.CarExpression"},
		{"(cdr '(1))", "*ast.CdrExpression"},
		{"(cons 1 '())", "*ast.ConsExpression"},
		{"(null? '())", "*ast.NullCheckExpression"},
		{"(display 1)", "*ast.DisplayExpression"},
		{"(newline)", "*ast.NewlineExpression"},
		{"(read)", "*ast.ReadExpression"},
		{"'(1 2)", "*ast.QuotedList"},
		{"(f 1 2)", "*ast.CallExpression"},
		{"x", "*ast.Identifier"},
		{"42", "*ast.IntegerLiteral"},
		{"4.2", "*ast.FloatLiteral"},
		{`"s"`, "*ast.StringLiteral"},
		{"#f", "*ast.BooleanLiteral"},
	}
	for _, tt := range tests {
		expr := parseOne(t, tt.input)
		if got := fmt.Sprintf("%T", expr); got != tt.want {
			t.Errorf("parsing %q: want %s, got %s", tt.input, tt.want, got)
		}
	}
}

func TestCondClauses(t *testing.T) {
	expr := parseOne(t, `(cond ((= 1 2) "a") ((= 1 1) "b" "c") (else "d"))`)
	ce := expr.(*ast.CondExpression)
	if len(ce.Clauses) != 2 {
		t.Fatalf("clauses: want 2, got %d", len(ce.Clauses))
	}
	if len(ce.Clauses[1].Body) != 2 {
		t.Errorf("second clause body: want 2 expressions, got %d", len(ce.Clauses[1].Body))
	}
	if ce.Else == nil || len(ce.Else) != 1 {
		t.Errorf("else branch: want 1 expression, got %v", ce.Else)
	}
}

func TestCondWithoutElse(t *testing.T) {
	expr := parseOne(t, "(cond ((= 1 1) 2))")
	ce := expr.(*ast.CondExpression)
	if ce.Else != nil {
		t.Errorf("else branch: want nil, got %v", ce.Else)
	}
}

func TestLetBindings(t *testing.T) {
	expr := parseOne(t, "(let ((x 10) (y 20)) (+ x y))")
	le := expr.(*ast.LetExpression)
	if len(le.Bindings) != 2 {
		t.Fatalf("bindings: want 2, got %d", len(le.Bindings))
	}
	if le.Bindings[0].Name != "x" || le.Bindings[1].Name != "y" {
		t.Errorf("binding names: want x, y; got %s, %s", le.Bindings[0].Name, le.Bindings[1].Name)
	}
}

func TestQuotedListElements(t *testing.T) {
	expr := parseOne(t, `'(1 2.5 "s" #t foo '(3 4))`)
	ql := expr.(*ast.QuotedList)
	if len(ql.Elements) != 6 {
		t.Fatalf("elements: want 6, got %d", len(ql.Elements))
	}
	if _, ok := ql.Elements[4].(*ast.Identifier); !ok {
		t.Errorf("elements[4]: want *ast.Identifier, got %T", ql.Elements[4])
	}
	nested, ok := ql.Elements[5].(*ast.QuotedList)
	if !ok {
		t.Fatalf("elements[5]: want *ast.QuotedList, got %T", ql.Elements[5])
	}
	if len(nested.Elements) != 2 {
		t.Errorf("nested elements: want 2, got %d", len(nested.Elements))
	}
}

func TestEmptyQuotedList(t *testing.T) {
	expr := parseOne(t, "'()")
	ql := expr.(*ast.QuotedList)
	if len(ql.Elements) != 0 {
		t.Errorf("elements: want 0, got %d", len(ql.Elements))
	}
}

func TestSyntaxErrors(t *testing.T) {
	tests := []struct {
		input string
	}{
		{"(if (= 1 1) 1)"},       // if needs three operands
		{"(not 1 2)"},            // not is unary
		{"(cons 1)"},             // cons is binary
		{"(define)"},             // define needs a shape
		{"(define (f))"},         // function body required
		{"(let (x 1) x)"},        // malformed binding list
		{"(+ 1"},                 // unterminated form
		{`(display "open`},       // unterminated string
		{"()"},                   // empty form
		{"(1 2 3)"},              // head must be an identifier
		{"(+ 1) "},               // arithmetic needs two operands
	}
	for _, tt := range tests {
		p := New(lexer.New(tt.input))
		p.ParseProgram()
		if len(p.Errors()) == 0 {
			t.Errorf("parsing %q: expected syntax errors, got none", tt.input)
		}
	}
}

func TestErrorsCarryPositions(t *testing.T) {
	p := New(lexer.New("\n\n(if 1 2)"))
	p.ParseProgram()
	if len(p.Errors()) == 0 {
		t.Fatal("expected syntax errors")
	}
	if !strings.HasPrefix(p.Errors()[0], "line 3:") {
		t.Errorf("error should carry position: %q", p.Errors()[0])
	}
}

func TestMultipleTopLevelExpressions(t *testing.T) {
	program := parseProgram(t, "(define x 1) (define y 2) (+ x y)")
	if len(program.Expressions) != 3 {
		t.Fatalf("expressions: want 3, got %d", len(program.Expressions))
	}
}

func TestStringRoundTrip(t *testing.T) {
	tests := []string{
		"(define x 10)",
		"(define (add a b) (+ a b))",
		"(if (= 1 1) 1 2)",
		"(let ((x 10) (y 20)) (+ x y))",
		`'(1 2 3)`,
		"(cons 1 '())",
	}
	for _, src := range tests {
		first := parseOne(t, src).String()
		second := parseOne(t, first).String()
		if first != second {
			t.Errorf("round trip of %q: %q != %q", src, first, second)
		}
	}
}
