package sml

import "fmt"

// Kind classifies a Token. See spec §3 for the full taxonomy.
type Kind int

const (
	KindReserved Kind = iota
	KindIdentifier
	KindQualifier
	KindIntegerConstant
	KindWordConstant
	KindRealConstant
	KindStringConstant
	KindComment
)

func (k Kind) String() string {
	switch k {
	case KindReserved:
		return "Reserved"
	case KindIdentifier:
		return "Identifier"
	case KindQualifier:
		return "Qualifier"
	case KindIntegerConstant:
		return "IntegerConstant"
	case KindWordConstant:
		return "WordConstant"
	case KindRealConstant:
		return "RealConstant"
	case KindStringConstant:
		return "StringConstant"
	case KindComment:
		return "Comment"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ReservedTag names one member of the fixed reserved-word set: a keyword or
// a piece of punctuation.
type ReservedTag int

const (
	TagNone ReservedTag = iota

	// punctuation, one byte wide except the three-byte `...`
	TagOpenParen
	TagCloseParen
	TagOpenBracket
	TagCloseBracket
	TagOpenBrace
	TagCloseBrace
	TagComma
	TagSemicolon
	TagUnderscore
	TagDotDotDot

	// alphanumeric keywords
	TagVal
	TagRec
	TagFun
	TagFn
	TagLet
	TagIn
	TagEnd
	TagIf
	TagThen
	TagElse
	TagCase
	TagOf
	TagAndAlso
	TagOrElse
	TagDatatype
	TagType
	TagEqType
	TagStructure
	TagSignature
	TagFunctor
	TagSig
	TagStruct
	TagOpen
	TagLocal
	TagException
	TagRaise
	TagHandle
	TagWhile
	TagDo
	TagWith
	TagWithType
	TagInfix
	TagInfixR
	TagNonfix
	TagAbstype
	TagAs
	TagOp
	TagAnd
	TagInclude
	TagSharing
	TagWhere

	// symbolic keywords
	TagEqual
	TagDoubleArrow
	TagArrow
	TagBar
	TagColon
	TagColonGreater
	TagHash
	TagStar
	TagDot
)

// String renders a ReservedTag by its canonical lexeme, for use in
// diagnostics.
func (t ReservedTag) String() string {
	for text, tag := range reservedWords {
		if tag == t {
			return text
		}
	}
	switch t {
	case TagOpenParen:
		return "("
	case TagCloseParen:
		return ")"
	case TagOpenBracket:
		return "["
	case TagCloseBracket:
		return "]"
	case TagOpenBrace:
		return "{"
	case TagCloseBrace:
		return "}"
	case TagComma:
		return ","
	case TagSemicolon:
		return ";"
	case TagUnderscore:
		return "_"
	case TagDotDotDot:
		return "..."
	case TagNone:
		return "<none>"
	default:
		return fmt.Sprintf("ReservedTag(%d)", int(t))
	}
}

// reservedWords maps a lexeme's exact text to its reserved tag. Lookup
// happens only after an identifier's extent has been determined; the table
// itself never drives character-by-character scanning.
var reservedWords = map[string]ReservedTag{
	"val":        TagVal,
	"rec":        TagRec,
	"fun":        TagFun,
	"fn":         TagFn,
	"let":        TagLet,
	"in":         TagIn,
	"end":        TagEnd,
	"if":         TagIf,
	"then":       TagThen,
	"else":       TagElse,
	"case":       TagCase,
	"of":         TagOf,
	"andalso":    TagAndAlso,
	"orelse":     TagOrElse,
	"datatype":   TagDatatype,
	"type":       TagType,
	"eqtype":     TagEqType,
	"structure":  TagStructure,
	"signature":  TagSignature,
	"functor":    TagFunctor,
	"sig":        TagSig,
	"struct":     TagStruct,
	"open":       TagOpen,
	"local":      TagLocal,
	"exception":  TagException,
	"raise":      TagRaise,
	"handle":     TagHandle,
	"while":      TagWhile,
	"do":         TagDo,
	"with":       TagWith,
	"withtype":   TagWithType,
	"infix":      TagInfix,
	"infixr":     TagInfixR,
	"nonfix":     TagNonfix,
	"abstype":    TagAbstype,
	"as":         TagAs,
	"op":         TagOp,
	"and":        TagAnd,
	"include":    TagInclude,
	"sharing":    TagSharing,
	"where":      TagWhere,
	"=":          TagEqual,
	"=>":         TagDoubleArrow,
	"->":         TagArrow,
	"|":          TagBar,
	":":          TagColon,
	":>":         TagColonGreater,
	"#":          TagHash,
	"*":          TagStar,
	".":          TagDot,
}

// checkReserved returns the reserved tag for text, or TagNone if text is not
// a reserved word.
func checkReserved(text string) ReservedTag {
	if tag, ok := reservedWords[text]; ok {
		return tag
	}
	return TagNone
}

// Span is a half-open byte range [Start, End) into a Source's backing
// buffer.
type Span struct {
	Start, End int
}

func (s Span) Len() int { return s.End - s.Start }

// Token pairs a source slice with its Kind. For KindReserved tokens, Tag
// further identifies which reserved word or punctuation mark it is.
type Token struct {
	Kind Kind
	Tag  ReservedTag
	Span Span

	src Source
}

func makeToken(src Source, start, end int, kind Kind) Token {
	return Token{Kind: kind, Span: Span{start, end}, src: src}
}

func reservedToken(src Source, start, end int, tag ReservedTag) Token {
	return Token{Kind: KindReserved, Tag: tag, Span: Span{start, end}, src: src}
}

func identifierToken(src Source, start, end int) Token {
	return Token{Kind: KindIdentifier, Span: Span{start, end}, src: src}
}

func qualifierToken(src Source, start, end int) Token {
	return Token{Kind: KindQualifier, Span: Span{start, end}, src: src}
}

// Text returns the token's source text. It slices the shared backing
// buffer on each call; converting that slice to a string copies its bytes.
func (t Token) Text() string {
	return string(t.src.Bytes()[t.Span.Start:t.Span.End])
}

// IsComment reports whether t is a Comment token.
func (t Token) IsComment() bool { return t.Kind == KindComment }

// IsConstant reports whether t is one of the four numeric/string constant
// kinds.
func (t Token) IsConstant() bool {
	switch t.Kind {
	case KindIntegerConstant, KindWordConstant, KindRealConstant, KindStringConstant:
		return true
	}
	return false
}

// IsPatternConstant reports whether t may appear as a constant pattern:
// numeric constants and strings, but not word constants (which the grammar
// this lexer feeds does not accept in patterns).
func (t Token) IsPatternConstant() bool {
	switch t.Kind {
	case KindIntegerConstant, KindRealConstant, KindStringConstant:
		return true
	}
	return false
}

// IsMaybeLongIdentifier reports whether t could begin or continue a long
// (possibly qualified) identifier.
func (t Token) IsMaybeLongIdentifier() bool {
	return t.Kind == KindIdentifier || t.Kind == KindQualifier
}

// IsDecStartToken reports whether t can begin a top-level declaration.
func (t Token) IsDecStartToken() bool {
	if t.Kind != KindReserved {
		return false
	}
	switch t.Tag {
	case TagVal, TagFun, TagType, TagDatatype, TagEqType, TagException,
		TagLocal, TagOpen, TagStructure, TagSignature, TagFunctor,
		TagInfix, TagInfixR, TagNonfix, TagAbstype:
		return true
	}
	return false
}

// IsTyVar reports whether t is a type variable identifier, i.e. an
// alphanumeric identifier starting with a prime.
func (t Token) IsTyVar() bool {
	if t.Kind != KindIdentifier {
		return false
	}
	text := t.Text()
	return len(text) > 0 && text[0] == '\''
}
