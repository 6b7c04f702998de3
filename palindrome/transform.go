package palindrome

import (
	"strings"
	"unicode/utf8"
)

// Buffer is the transformed form of a string used by Manacher's algorithm.
//
// Layout for an input of n runes s0…s(n-1):
//
//	^ # s0 # s1 # … # s(n-1) # $
//
// The interior (everything between the guards) holds 2n+1 cells: symbols at
// odd interior offsets, separators at even ones. Every interior cell is thus
// the center of either an odd-length (symbol) or even-length (separator)
// palindrome of the source. Guards never match any cell, including each
// other, so an outward expansion always stops before leaving the buffer.
//
// A Buffer is immutable once built.
type Buffer struct {
	src   string
	cells []Cell
	runes int
}

// Transform builds the Buffer for s.
// The empty string yields "^ # $": an interior of a single separator.
// Each byte of s that is not valid UTF-8 becomes its own symbol holding
// U+FFFD with the byte kept in Raw.
//
// Complexity: O(n) time and memory.
func Transform(s string) *Buffer {
	n := utf8.RuneCountInString(s)
	cells := make([]Cell, 0, 2*n+3)
	cells = append(cells, Cell{Kind: LeadGuard}, Cell{Kind: Separator})
	for off := 0; off < len(s); {
		r, w := utf8.DecodeRuneInString(s[off:])
		c := Cell{Kind: Symbol, R: r, Offset: off}
		if r == utf8.RuneError && w == 1 {
			c.Invalid, c.Raw = true, s[off]
		}
		cells = append(cells, c, Cell{Kind: Separator})
		off += w
	}
	cells = append(cells, Cell{Kind: TrailGuard})

	return &Buffer{src: s, cells: cells, runes: n}
}

// Len returns the total number of cells, guards included (2n+3).
func (b *Buffer) Len() int { return len(b.cells) }

// Interior returns the number of cells between the guards (2n+1).
func (b *Buffer) Interior() int { return len(b.cells) - 2 }

// Symbols returns the number of source runes n.
func (b *Buffer) Symbols() int { return b.runes }

// Source returns the string the buffer was built from.
func (b *Buffer) Source() string { return b.src }

// Cell returns the cell at index i. It panics if i is out of range,
// as indexing a slice would.
func (b *Buffer) Cell(i int) Cell { return b.cells[i] }

// Match reports whether cells i and j are interchangeable in a palindrome.
// Symbols match when they hold the same rune, or the same invalid byte:
// "\xff" matches "\xff" but neither "\xfe" nor a literal U+FFFD.
// Guards match nothing; indices outside the buffer match nothing either.
func (b *Buffer) Match(i, j int) bool {
	if i < 0 || j < 0 || i >= len(b.cells) || j >= len(b.cells) {
		return false
	}
	x, y := b.cells[i], b.cells[j]
	switch x.Kind {
	case Separator:
		return y.Kind == Separator
	case Symbol:
		return y.Kind == Symbol && x.R == y.R && x.Invalid == y.Invalid && x.Raw == y.Raw
	default:
		return false
	}
}

// Span converts a palindrome centered at cell center with the given radius
// into a byte range of the source string. center must be an interior cell
// and radius must not exceed the radius Radii reports for it.
func (b *Buffer) Span(center, radius int) Span {
	// Palindromes found by Radii start and end on separators, so
	// center-1-radius is even.
	first := (center - 1 - radius) / 2
	last := first + radius

	return Span{Start: b.offset(first), End: b.offset(last)}
}

// Extract returns the source-alphabet text of the palindrome centered at
// cell center with the given radius, separators stripped.
func (b *Buffer) Extract(center, radius int) string {
	var sb strings.Builder
	sb.Grow(radius * utf8.UTFMax)
	for i := center - radius; i <= center+radius; i++ {
		switch c := b.cells[i]; {
		case c.Kind != Symbol:
		case c.Invalid:
			sb.WriteByte(c.Raw)
		default:
			sb.WriteRune(c.R)
		}
	}

	return sb.String()
}

// offset returns the byte offset of rune index j in the source,
// or len(src) when j == n.
func (b *Buffer) offset(j int) int {
	if j >= b.runes {
		return len(b.src)
	}

	return b.cells[2*j+2].Offset
}
