package rubytime

// TokenKind distinguishes the two kinds of compiled pattern token.
type TokenKind int

const (
	TokLiteral TokenKind = iota
	TokDirective
)

// Padding selects the padding character a directive renders with when
// its rendered width is less than Options.Precision.
type Padding int

const (
	PadUnspecified Padding = iota
	PadSpace
	PadZero
)

// Options carries the flag/width/colon/modifier state attached to a
// single compiled directive (§3 "Directive options"). A zero Options
// value means "no options were specified".
type Options struct {
	Precision     int
	Padding       Padding
	LeftAlign     bool
	UpperCase     bool
	SwapCase      bool
	Colons        int
	Localized     bool // %E prefix: selects the name-aware %Z style; otherwise accepted with no semantic effect (§4.2)
	OtherNumeric  bool // %O prefix: accepted, no semantic effect (§4.2)
	FormatterOnly bool // true iff any rendering-only option was set (§3)
}

// Token is one element of a compiled pattern: either a literal run of
// text or a directive with its compiled options.
type Token struct {
	Kind      TokenKind
	Literal   string // valid iff Kind == TokLiteral
	Directive DirectiveKind
	Options   Options
}
