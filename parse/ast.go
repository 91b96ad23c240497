package parse

import "github.com/lexecon/smlex"

// Ast is the root of a parsed program: a sequence of top-level
// declarations. Only the smallest declaration form — `val <pat> = <exp>`
// — is recognized by this early-development parser skeleton; everything
// else is out of scope per spec §1.
type Ast struct {
	Decls []Decl
}

// Decl is a top-level declaration.
type Decl interface {
	declNode()
}

// ValDecl is `val <pat> = <exp>`. It retains every delimiter token it
// observed, per §4.5's contract that the AST preserve source positions
// and lexemes alongside parsed structure.
type ValDecl struct {
	ValTok sml.Token
	Pat    Pat
	EqTok  sml.Token
	Exp    Exp
	Semi   *sml.Token // optional trailing ';'
}

func (*ValDecl) declNode() {}

// Pat is a pattern appearing on the left of a val binding.
type Pat interface {
	patNode()
}

// IdentPat is a variable pattern: a bare identifier.
type IdentPat struct {
	Tok sml.Token
}

func (*IdentPat) patNode() {}

// WildPat is the wildcard pattern `_`.
type WildPat struct {
	Tok sml.Token
}

func (*WildPat) patNode() {}

// Exp is an expression appearing on the right of a val binding.
type Exp interface {
	expNode()
}

// ConstExp is a numeric, string, or word constant used as an expression.
type ConstExp struct {
	Tok sml.Token
}

func (*ConstExp) expNode() {}

// LongIdExp is a (possibly qualified) identifier used as an expression.
// Quals holds zero or more leading Qualifier tokens; Id is the final
// identifier token.
type LongIdExp struct {
	Quals []sml.Token
	Id    sml.Token
}

func (*LongIdExp) expNode() {}

// TupleExp is a parenthesized, comma-separated expression sequence
// (including the degenerate 1-element case, a plain parenthesized
// expression, and the 0-element unit value `()`). OpenTok, Commas, and
// CloseTok are the retained delimiter tokens.
type TupleExp struct {
	OpenTok  sml.Token
	Elems    []Exp
	Commas   []sml.Token
	CloseTok sml.Token
}

func (*TupleExp) expNode() {}
