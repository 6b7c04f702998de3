// Command seqkit is a thin command-line driver over the seqkit packages.
//
// Usage:
//
//	seqkit longest abcdcbaaerfqsfq          # abcdcba
//	seqkit includes abbc gfaabbcqqw         # true
//	seqkit pattern abba "lol kek kek lol"   # true
//	seqkit palindrome --case-sensitive loL  # false
//	seqkit anagram --fold Listen Silent     # true
//	seqkit brackets "{[()]}"                # true
//
// Global flags --log-level and --log-format control the slog output on stderr.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
