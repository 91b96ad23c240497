package parse

import (
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/lexecon/smlex"
)

// Binding is a declarative grammar for the smallest val-binding form,
// `val <ident> = <ident-or-number>`, built with participle instead of the
// hand-written recursive-descent parser in parse.go. It exists to show
// the sml token model feeding a second parsing strategy: bindingParser
// below consumes the *filtered* (comment-free) token text the sml lexer
// already produced, re-tokenized by participle's own simple lexer, rather
// than re-lexing the raw source.
type Binding struct {
	Pat string `parser:"'val' @Ident"`
	Exp string `parser:"'=' @(Ident | Int)"`
}

var bindingLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_']*`},
	{Name: "Int", Pattern: `~?[0-9]+`},
	{Name: "Punct", Pattern: `=`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var bindingParser = participle.MustBuild[Binding](
	participle.Lexer(bindingLexer),
	participle.Elide("Whitespace"),
)

// ParseBinding lexes src with the sml state machine, drops comment
// tokens, and re-parses the remaining token text as a single
// `val <ident> = <ident-or-number>` binding via the participle-generated
// parser. It returns a lex failure verbatim (wrapped) rather than
// attempting to recover.
func ParseBinding(src sml.Source) (*Binding, error) {
	res := sml.Tokens(src)
	if !res.OK() {
		return nil, &ParseError{
			Header:   "lex error",
			Position: res.Failure.Pos,
			What:     res.Failure.Message,
			Cause:    sml.WrapLexFailure(res),
		}
	}

	words := make([]string, 0, len(res.Tokens))
	for _, t := range res.Tokens {
		if t.IsComment() {
			continue
		}
		words = append(words, t.Text())
	}

	return bindingParser.ParseString("", strings.Join(words, " "))
}
