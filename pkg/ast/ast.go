// Package ast defines the parse-tree nodes for mini-scheme. Each syntactic
// form recognized by the evaluator has its own node type; String() renders a
// node back in scheme syntax and is used by the parse command's tree dump.
package ast

import (
	"strings"

	"github.com/alexrr04/mini-scheme-interpreter/internal/lexer"
)

// Node is the interface implemented by every parse-tree node.
type Node interface {
	// TokenLiteral returns the literal of the token the node starts at.
	TokenLiteral() string
	// String renders the node in scheme syntax.
	String() string
}

// Expression is a Node that produces a value when evaluated.
type Expression interface {
	Node
	expressionNode()
}

// Program is the root node: an ordered sequence of top-level expressions.
type Program struct {
	Expressions []Expression
}

func (p *Program) TokenLiteral() string {
	if len(p.Expressions) > 0 {
		return p.Expressions[0].TokenLiteral()
	}
	return ""
}

func (p *Program) String() string {
	parts := make([]string, len(p.Expressions))
	for i, e := range p.Expressions {
		parts[i] = e.String()
	}
	return strings.Join(parts, "\n")
}

// ConstantDefinition is (define name expr).
type ConstantDefinition struct {
	Token lexer.Token // the 'define' token
	Name  string
	Value Expression
}

func (cd *ConstantDefinition) expressionNode()      {}
func (cd *ConstantDefinition) TokenLiteral() string { return cd.Token.Literal }
func (cd *ConstantDefinition) String() string {
	return "(define " + cd.Name + " " + cd.Value.String() + ")"
}

// FunctionDefinition is (define (name p1 ... pn) body1 ... bodyk).
type FunctionDefinition struct {
	Token      lexer.Token // the 'define' token
	Name       string
	Parameters []string
	Body       []Expression
}

func (fd *FunctionDefinition) expressionNode()      {}
func (fd *FunctionDefinition) TokenLiteral() string { return fd.Token.Literal }
func (fd *FunctionDefinition) String() string {
	var sb strings.Builder
	sb.WriteString("(define (" + fd.Name)
	for _, p := range fd.Parameters {
		sb.WriteString(" " + p)
	}
	sb.WriteString(")")
	for _, b := range fd.Body {
		sb.WriteString(" " + b.String())
	}
	sb.WriteString(")")
	return sb.String()
}

// IfExpression is (if cond then else).
type IfExpression struct {
	Token     lexer.Token
	Condition Expression
	Then      Expression
	Else      Expression
}

func (ie *IfExpression) expressionNode()      {}
func (ie *IfExpression) TokenLiteral() string { return ie.Token.Literal }
func (ie *IfExpression) String() string {
	return "(if " + ie.Condition.String() + " " + ie.Then.String() + " " + ie.Else.String() + ")"
}

// BeginExpression is (begin e1 ... ek); its value is the last expression's.
type BeginExpression struct {
	Token       lexer.Token
	Expressions []Expression
}

func (be *BeginExpression) expressionNode()      {}
func (be *BeginExpression) TokenLiteral() string { return be.Token.Literal }
func (be *BeginExpression) String() string {
	parts := make([]string, len(be.Expressions))
	for i, e := range be.Expressions {
		parts[i] = e.String()
	}
	return "(begin " + strings.Join(parts, " ") + ")"
}

// CondClause is one (condition e1 ... ek) arm of a cond form.
type CondClause struct {
	Condition Expression
	Body      []Expression
}

func (cc *CondClause) String() string {
	var sb strings.Builder
	sb.WriteString("(" + cc.Condition.String())
	for _, e := range cc.Body {
		sb.WriteString(" " + e.String())
	}
	sb.WriteString(")")
	return sb.String()
}

// CondExpression is (cond (c1 ...) (c2 ...) ... [(else ...)]).
// Else is nil when no else branch is present.
type CondExpression struct {
	Token   lexer.Token
	Clauses []*CondClause
	Else    []Expression
}

func (ce *CondExpression) expressionNode()      {}
func (ce *CondExpression) TokenLiteral() string { return ce.Token.Literal }
func (ce *CondExpression) String() string {
	var sb strings.Builder
	sb.WriteString("(cond")
	for _, c := range ce.Clauses {
		sb.WriteString(" " + c.String())
	}
	if ce.Else != nil {
		sb.WriteString(" (else")
		for _, e := range ce.Else {
			sb.WriteString(" " + e.String())
		}
		sb.WriteString(")")
	}
	sb.WriteString(")")
	return sb.String()
}

// AndExpression is (and e1 ... en).
type AndExpression struct {
	Token    lexer.Token
	Operands []Expression
}

func (ae *AndExpression) expressionNode()      {}
func (ae *AndExpression) TokenLiteral() string { return ae.Token.Literal }
func (ae *AndExpression) String() string      { return formatOperands("and", ae.Operands) }

// OrExpression is (or e1 ... en).
type OrExpression struct {
	Token    lexer.Token
	Operands []Expression
}

func (oe *OrExpression) expressionNode()      {}
func (oe *OrExpression) TokenLiteral() string { return oe.Token.Literal }
func (oe *OrExpression) String() string      { return formatOperands("or", oe.Operands) }

// NotExpression is (not e).
type NotExpression struct {
	Token   lexer.Token
	Operand Expression
}

func (ne *NotExpression) expressionNode()      {}
func (ne *NotExpression) TokenLiteral() string { return ne.Token.Literal }
func (ne *NotExpression) String() string       { return "(not " + ne.Operand.String() + ")" }

// LetBinding is one (name value) pair of a let form.
type LetBinding struct {
	Name  string
	Value Expression
}

// LetExpression is (let ((x1 v1) ...) body1 ... bodyk).
type LetExpression struct {
	Token    lexer.Token
	Bindings []*LetBinding
	Body     []Expression
}

func (le *LetExpression) expressionNode()      {}
func (le *LetExpression) TokenLiteral() string { return le.Token.Literal }
func (le *LetExpression) String() string {
	var sb strings.Builder
	sb.WriteString("(let (")
	for i, b := range le.Bindings {
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString("(" + b.Name + " " + b.Value.String() + ")")
	}
	sb.WriteString(")")
	for _, e := range le.Body {
		sb.WriteString(" " + e.String())
	}
	sb.WriteString(")")
	return sb.String()
}

// ArithmeticExpression is (op e1 ... en) for op in + - * / mod.
type ArithmeticExpression struct {
	Token    lexer.Token
	Operator string
	Operands []Expression
}

func (ae *ArithmeticExpression) expressionNode()      {}
func (ae *ArithmeticExpression) TokenLiteral() string { return ae.Token.Literal }
func (ae *ArithmeticExpression) String() string       { return formatOperands(ae.Operator, ae.Operands) }

// RelationalExpression is (op e1 ... en) for op in < > <= >= = <>.
type RelationalExpression struct {
	Token    lexer.Token
	Operator string
	Operands []Expression
}

func (re *RelationalExpression) expressionNode()      {}
func (re *RelationalExpression) TokenLiteral() string { return re.Token.Literal }
func (re *RelationalExpression) String() string       { return formatOperands(re.Operator, re.Operands) }

// CarExpression is (car lst).
type CarExpression struct {
	Token   lexer.Token
	Operand Expression
}

func (ce *CarExpression) expressionNode()      {}
func (ce *CarExpression) TokenLiteral() string { return ce.Token.Literal }
func (ce *CarExpression) String() string       { return "(car " + ce.Operand.String() + ")" }

// CdrExpression is (cdr lst).
type CdrExpression struct {
	Token   lexer.Token
	Operand Expression
}

func (ce *CdrExpression) expressionNode()      {}
func (ce *CdrExpression) TokenLiteral() string { return ce.Token.Literal }
func (ce *CdrExpression) String() string       { return "(cdr " + ce.Operand.String() + ")" }

// ConsExpression is (cons x lst).
type ConsExpression struct {
	Token lexer.Token
	Head  Expression
	Tail  Expression
}

func (ce *ConsExpression) expressionNode()      {}
func (ce *ConsExpression) TokenLiteral() string { return ce.Token.Literal }
func (ce *ConsExpression) String() string {
	return "(cons " + ce.Head.String() + " " + ce.Tail.String() + ")"
}

// NullCheckExpression is (null? lst).
type NullCheckExpression struct {
	Token   lexer.Token
	Operand Expression
}

func (ne *NullCheckExpression) expressionNode()      {}
func (ne *NullCheckExpression) TokenLiteral() string { return ne.Token.Literal }
func (ne *NullCheckExpression) String() string       { return "(null? " + ne.Operand.String() + ")" }

// DisplayExpression is (display e).
type DisplayExpression struct {
	Token   lexer.Token
	Operand Expression
}

func (de *DisplayExpression) expressionNode()      {}
func (de *DisplayExpression) TokenLiteral() string { return de.Token.Literal }
func (de *DisplayExpression) String() string       { return "(display " + de.Operand.String() + ")" }

// NewlineExpression is (newline).
type NewlineExpression struct {
	Token lexer.Token
}

func (ne *NewlineExpression) expressionNode()      {}
func (ne *NewlineExpression) TokenLiteral() string { return ne.Token.Literal }
func (ne *NewlineExpression) String() string       { return "(newline)" }

// ReadExpression is (read).
type ReadExpression struct {
	Token lexer.Token
}

func (re *ReadExpression) expressionNode()      {}
func (re *ReadExpression) TokenLiteral() string { return re.Token.Literal }
func (re *ReadExpression) String() string       { return "(read)" }

// QuotedList is '(lit1 lit2 ...). Elements are literal nodes; identifiers
// inside a quote stay unevaluated and nested lists are QuotedList nodes.
type QuotedList struct {
	Token    lexer.Token // the ' token
	Elements []Expression
}

func (ql *QuotedList) expressionNode()      {}
func (ql *QuotedList) TokenLiteral() string { return ql.Token.Literal }
func (ql *QuotedList) String() string {
	parts := make([]string, len(ql.Elements))
	for i, e := range ql.Elements {
		parts[i] = strings.TrimPrefix(e.String(), "'")
	}
	return "'(" + strings.Join(parts, " ") + ")"
}

// CallExpression is (f a1 ... an) for any f that is not a reserved form.
type CallExpression struct {
	Token     lexer.Token // the function name token
	Function  string
	Arguments []Expression
}

func (ce *CallExpression) expressionNode()      {}
func (ce *CallExpression) TokenLiteral() string { return ce.Token.Literal }
func (ce *CallExpression) String() string       { return formatOperands(ce.Function, ce.Arguments) }

// Identifier is a bare name reference.
type Identifier struct {
	Token lexer.Token
	Value string
}

func (i *Identifier) expressionNode()      {}
func (i *Identifier) TokenLiteral() string { return i.Token.Literal }
func (i *Identifier) String() string       { return i.Value }

// IntegerLiteral is an integer constant.
type IntegerLiteral struct {
	Token lexer.Token
	Value int64
}

func (il *IntegerLiteral) expressionNode()      {}
func (il *IntegerLiteral) TokenLiteral() string { return il.Token.Literal }
func (il *IntegerLiteral) String() string       { return il.Token.Literal }

// FloatLiteral is a floating-point constant.
type FloatLiteral struct {
	Token lexer.Token
	Value float64
}

func (fl *FloatLiteral) expressionNode()      {}
func (fl *FloatLiteral) TokenLiteral() string { return fl.Token.Literal }
func (fl *FloatLiteral) String() string       { return fl.Token.Literal }

// StringLiteral is a string constant; Value holds the characters without
// the surrounding quotes.
type StringLiteral struct {
	Token lexer.Token
	Value string
}

func (sl *StringLiteral) expressionNode()      {}
func (sl *StringLiteral) TokenLiteral() string { return sl.Token.Literal }
func (sl *StringLiteral) String() string       { return `"` + sl.Value + `"` }

// BooleanLiteral is #t or #f.
type BooleanLiteral struct {
	Token lexer.Token
	Value bool
}

func (bl *BooleanLiteral) expressionNode()      {}
func (bl *BooleanLiteral) TokenLiteral() string { return bl.Token.Literal }
func (bl *BooleanLiteral) String() string {
	if bl.Value {
		return "#t"
	}
	return "#f"
}

func formatOperands(head string, operands []Expression) string {
	var sb strings.Builder
	sb.WriteString("(" + head)
	for _, o := range operands {
		sb.WriteString(" " + o.String())
	}
	sb.WriteString(")")
	return sb.String()
}
