package palindrome

// Kind tags a cell of a transformed Buffer.
//
//   - LeadGuard  — first cell; matches nothing.
//   - Separator  — placed between (and around) input runes; matches other separators.
//   - Symbol     — one rune of the input; matches a Symbol holding the same rune.
//   - TrailGuard — last cell; matches nothing.
type Kind uint8

const (
	// LeadGuard opens the buffer.
	LeadGuard Kind = iota
	// Separator sits at even interior offsets.
	Separator
	// Symbol carries an input rune.
	Symbol
	// TrailGuard closes the buffer.
	TrailGuard
)

// String returns a short human-readable name of the kind.
func (k Kind) String() string {
	switch k {
	case LeadGuard:
		return "^"
	case Separator:
		return "#"
	case Symbol:
		return "sym"
	case TrailGuard:
		return "$"
	default:
		return "?"
	}
}

// Cell is one position of a transformed Buffer.
// The other fields are meaningful only when Kind == Symbol:
// R is the rune and Offset its byte offset in the source string.
// Invalid marks a byte that is not valid UTF-8; R is then U+FFFD and
// Raw holds the byte itself.
type Cell struct {
	Kind    Kind
	R       rune
	Offset  int
	Invalid bool
	Raw     byte
}

// Span is a half-open byte range [Start, End) in a source string.
type Span struct {
	Start, End int
}

// Len returns the span width in bytes.
func (s Span) Len() int { return s.End - s.Start }

// Options configures IsPalindrome.
//
// Fields:
//   - CaseSensitive — compare runes exactly instead of after Unicode case folding.
type Options struct {
	CaseSensitive bool
}

// Option configures IsPalindrome via functional arguments.
type Option func(*Options)

// DefaultOptions returns Options with case folding enabled.
func DefaultOptions() Options {
	return Options{CaseSensitive: false}
}

// WithCaseSensitive makes IsPalindrome compare runes exactly,
// so "loL" is no longer a palindrome.
func WithCaseSensitive() Option {
	return func(o *Options) {
		o.CaseSensitive = true
	}
}
