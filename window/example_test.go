package window_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/seqkit/window"
)

// ExampleIncludes slides a 4-byte window over the text.
//
//	pattern = "abbc"
//	text    = "gfaabbcqqw"  → window "abbc" at offset 3
func ExampleIncludes() {
	fmt.Println(window.Includes("abbc", "gfaabbcqqw"))
	fmt.Println(window.Includes("abbc", "wqqwe"))
	fmt.Println(window.Includes("abbc", "ab"))
	// Output:
	// true
	// false
	// false
}

// ExampleCheckInclusion separates malformed input from a plain miss.
func ExampleCheckInclusion() {
	_, err := window.CheckInclusion("abc", "ABC")
	fmt.Println(errors.Is(err, window.ErrAlphabet))
	// Output:
	// true
}

// ExampleWordPattern binds pattern runes to words in both directions.
func ExampleWordPattern() {
	fmt.Println(window.WordPattern("abba", "lol kek kek lol"))
	fmt.Println(window.WordPattern("aaa", "lol kek lol"))
	// Output:
	// true
	// false
}

// ExampleMatchWordPattern reports why a pattern failed.
func ExampleMatchWordPattern() {
	for _, s := range []string{"lol kek kek lol", "lol kek", "lol! kek kek lol", "lol kek lol kek"} {
		err := window.MatchWordPattern("abba", s)
		switch {
		case err == nil:
			fmt.Println("match")
		case errors.Is(err, window.ErrTokenCount):
			fmt.Println("token count")
		case errors.Is(err, window.ErrInvalidCharacter):
			fmt.Println("invalid character")
		case errors.Is(err, window.ErrNoBijection):
			fmt.Println("no bijection")
		}
	}
	// Output:
	// match
	// token count
	// invalid character
	// no bijection
}
