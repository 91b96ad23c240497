// Package parse implements a recursive-descent parser skeleton over the
// token stream produced by the sml lexer. Only the boundary behaviour
// spec §4.5 calls out is implemented here: the parser filters comments out
// of the lexed token stream, consumes it by index (never rewinding across
// the lexer boundary), and builds an Ast whose nodes retain the specific
// delimiter tokens they observed.
package parse

import (
	"fmt"

	"github.com/lexecon/smlex"
)

// Logger is the minimal interface the parser's diagnostic line is routed
// through. *logrus.Logger satisfies it directly; a nil Logger falls back
// to printing to standard output, matching spec §6's "this side effect is
// retained for debuggability."
type Logger interface {
	Printf(format string, args ...interface{})
}

// ParseError is the structured diagnostic record spec §4.5 and §6
// describe: a header, the byte position it applies to, what went wrong,
// and an optional elaboration. Cause, when set, is the stack-traced
// error the failure was wrapped from (a lex failure, via
// sml.WrapLexFailure); Unwrap exposes it so callers can still get at the
// original *sml.LexError with errors.As.
type ParseError struct {
	Header   string
	Position int
	What     string
	Explain  string
	Cause    error
}

func (e *ParseError) Error() string {
	if e.Explain != "" {
		return fmt.Sprintf("%s at %d: %s (%s)", e.Header, e.Position, e.What, e.Explain)
	}
	return fmt.Sprintf("%s at %d: %s", e.Header, e.Position, e.What)
}

func (e *ParseError) Unwrap() error { return e.Cause }

// Parser consumes a filtered, random-access token stream by index. Unlike
// this skeleton's ancestor (a Decoder pulling tokens one at a time off a
// channel fed by a line-based lexer), the Source here is fully resident,
// so the whole token stream is lexed up front and the parser just walks
// it — no incremental re-feeding, no rewinding.
type Parser struct {
	toks  []sml.Token
	total int
	pos   int
	cur   *sml.Token
	prev  *sml.Token
	log   Logger
}

func newParser(toks []sml.Token, total int, log Logger) *Parser {
	p := &Parser{toks: toks, total: total, log: log}
	p.advance()
	return p
}

// advance moves cur to the next filtered token, or to nil past the end.
func (p *Parser) advance() {
	p.prev = p.cur
	if p.pos < len(p.toks) {
		t := p.toks[p.pos]
		p.cur = &t
		p.pos++
	} else {
		p.cur = nil
	}
}

func (p *Parser) errorf(what string, args ...interface{}) error {
	pos := 0
	switch {
	case p.cur != nil:
		pos = p.cur.Span.Start
	case p.prev != nil:
		// past the last token: report the byte just after it
		pos = p.prev.Span.End
	}
	return &ParseError{Header: "syntax error", Position: pos, What: fmt.Sprintf(what, args...)}
}

// Parse lexes and parses src, logging the completion diagnostic to
// standard output.
func Parse(src sml.Source) (*Ast, error) {
	return ParseWithLogger(src, nil)
}

// ParseWithLogger is Parse, but routes the completion diagnostic through
// log instead of standard output when log is non-nil.
func ParseWithLogger(src sml.Source, log Logger) (*Ast, error) {
	res := sml.Tokens(src)
	if !res.OK() {
		return nil, &ParseError{
			Header:   "lex error",
			Position: res.Failure.Pos,
			What:     res.Failure.Message,
			Cause:    sml.WrapLexFailure(res),
		}
	}

	total := len(res.Tokens)
	filtered := make([]sml.Token, 0, total)
	for _, t := range res.Tokens {
		if !t.IsComment() {
			filtered = append(filtered, t)
		}
	}

	p := newParser(filtered, total, log)
	ast, err := p.parseProgram()

	line := fmt.Sprintf("Successfully parsed %d out of %d tokens", p.pos, total)
	if log != nil {
		log.Printf(line)
	} else {
		fmt.Println(line)
	}

	return ast, err
}

func (p *Parser) parseProgram() (*Ast, error) {
	ast := &Ast{}
	for p.cur != nil {
		d, err := p.parseValDecl()
		if err != nil {
			return ast, err
		}
		ast.Decls = append(ast.Decls, d)
	}
	return ast, nil
}

func (p *Parser) parseValDecl() (*ValDecl, error) {
	if p.cur == nil || p.cur.Kind != sml.KindReserved || p.cur.Tag != sml.TagVal {
		return nil, p.errorf("expected 'val'")
	}
	valTok := *p.cur
	p.advance()

	pat, err := p.parsePat()
	if err != nil {
		return nil, err
	}

	if p.cur == nil || p.cur.Kind != sml.KindReserved || p.cur.Tag != sml.TagEqual {
		return nil, p.errorf("expected '='")
	}
	eqTok := *p.cur
	p.advance()

	exp, err := p.parseExp()
	if err != nil {
		return nil, err
	}

	d := &ValDecl{ValTok: valTok, Pat: pat, EqTok: eqTok, Exp: exp}
	if p.cur != nil && p.cur.Kind == sml.KindReserved && p.cur.Tag == sml.TagSemicolon {
		semi := *p.cur
		d.Semi = &semi
		p.advance()
	}
	return d, nil
}

func (p *Parser) parsePat() (Pat, error) {
	if p.cur == nil {
		return nil, p.errorf("expected a pattern")
	}
	switch {
	case p.cur.Kind == sml.KindReserved && p.cur.Tag == sml.TagUnderscore:
		tok := *p.cur
		p.advance()
		return &WildPat{Tok: tok}, nil
	case p.cur.Kind == sml.KindIdentifier:
		tok := *p.cur
		p.advance()
		return &IdentPat{Tok: tok}, nil
	default:
		return nil, p.errorf("expected a pattern, got %q", p.cur.Text())
	}
}

func (p *Parser) parseExp() (Exp, error) {
	if p.cur == nil {
		return nil, p.errorf("expected an expression")
	}

	switch {
	case p.cur.IsConstant():
		tok := *p.cur
		p.advance()
		return &ConstExp{Tok: tok}, nil

	case p.cur.Kind == sml.KindQualifier || p.cur.Kind == sml.KindIdentifier:
		return p.parseLongIdExp()

	case p.cur.Kind == sml.KindReserved && p.cur.Tag == sml.TagOpenParen:
		return p.parseTupleExp()

	default:
		return nil, p.errorf("expected an expression, got %q", p.cur.Text())
	}
}

func (p *Parser) parseLongIdExp() (Exp, error) {
	var quals []sml.Token
	for p.cur != nil && p.cur.Kind == sml.KindQualifier {
		quals = append(quals, *p.cur)
		p.advance()
	}
	if p.cur == nil || p.cur.Kind != sml.KindIdentifier {
		return nil, p.errorf("expected identifier after qualifier")
	}
	id := *p.cur
	p.advance()
	return &LongIdExp{Quals: quals, Id: id}, nil
}

func (p *Parser) parseTupleExp() (Exp, error) {
	openTok := *p.cur
	p.advance()

	e := &TupleExp{OpenTok: openTok}
	if p.cur != nil && p.cur.Kind == sml.KindReserved && p.cur.Tag == sml.TagCloseParen {
		e.CloseTok = *p.cur
		p.advance()
		return e, nil
	}

	for {
		elem, err := p.parseExp()
		if err != nil {
			return nil, err
		}
		e.Elems = append(e.Elems, elem)

		if p.cur != nil && p.cur.Kind == sml.KindReserved && p.cur.Tag == sml.TagComma {
			e.Commas = append(e.Commas, *p.cur)
			p.advance()
			continue
		}
		break
	}

	if p.cur == nil || p.cur.Kind != sml.KindReserved || p.cur.Tag != sml.TagCloseParen {
		return nil, p.errorf("expected ')'")
	}
	e.CloseTok = *p.cur
	p.advance()
	return e, nil
}
