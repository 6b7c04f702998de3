package window_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/seqkit/window"
)

// TestIncludes_Known covers the reference cases.
func TestIncludes_Known(t *testing.T) {
	assert.True(t, window.Includes("abbc", "gfaabbcqqw"))
	assert.True(t, window.Includes("abbc", "cdoabbc"), "match in the last window")
	assert.True(t, window.Includes("abbc", "bcba"), "match in the first window")
	assert.False(t, window.Includes("abbc", "wqqwe"))
	assert.False(t, window.Includes("abbc", "ppwwm"))
	assert.False(t, window.Includes("abbc", "ab"), "pattern longer than text")
	assert.False(t, window.Includes("ab", "eidboaoo"))
	assert.True(t, window.Includes("ab", "eidbaooo"))
}

// TestIncludes_Empty pins the degenerate lengths.
func TestIncludes_Empty(t *testing.T) {
	assert.True(t, window.Includes("", ""), "empty window is a permutation of the empty pattern")
	assert.True(t, window.Includes("", "abc"))
	assert.False(t, window.Includes("a", ""))
}

// TestCheckInclusion_Alphabet reports out-of-alphabet bytes on either side.
func TestCheckInclusion_Alphabet(t *testing.T) {
	ok, err := window.CheckInclusion("aB", "abab")
	require.ErrorIs(t, err, window.ErrAlphabet)
	assert.False(t, ok)
	assert.Contains(t, err.Error(), "pattern")

	_, err = window.CheckInclusion("ab", "ab ba")
	require.ErrorIs(t, err, window.ErrAlphabet)
	assert.Contains(t, err.Error(), "text")

	_, err = window.CheckInclusion("é", "été")
	require.ErrorIs(t, err, window.ErrAlphabet)

	assert.False(t, window.Includes("aB", "abab"), "bool form collapses errors to false")
}

// TestCheckInclusion_NoError returns nil errors for valid input.
func TestCheckInclusion_NoError(t *testing.T) {
	ok, err := window.CheckInclusion("abbc", "gfaabbcqqw")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = window.CheckInclusion("abbc", "ab")
	require.NoError(t, err)
	assert.False(t, ok)
}

// TestIncludesRunes_Unicode works where the fixed table cannot.
func TestIncludesRunes_Unicode(t *testing.T) {
	assert.True(t, window.IncludesRunes("été", "xxtééyy"))
	assert.True(t, window.IncludesRunes("Ab", "xbAy"))
	assert.False(t, window.IncludesRunes("Ab", "xaBy"))
	assert.True(t, window.IncludesRunes("日本", "本日語"))
	assert.False(t, window.IncludesRunes("日日", "日本日"))
	assert.True(t, window.IncludesRunes("", ""))
	assert.False(t, window.IncludesRunes("ab", "a"))
}

// TestIncludesRunes_AgreesWithTable compares both matchers on random lowercase input.
func TestIncludesRunes_AgreesWithTable(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for iter := 0; iter < 1000; iter++ {
		p := randomLower(rng, rng.Intn(5), 3)
		s := randomLower(rng, rng.Intn(12), 3)
		require.Equal(t, window.Includes(p, s), window.IncludesRunes(p, s), "pattern %q text %q", p, s)
		require.Equal(t, bruteIncludes(p, s), window.Includes(p, s), "pattern %q text %q", p, s)
	}
}

func randomLower(rng *rand.Rand, n, letters int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte('a' + rng.Intn(letters))
	}

	return string(b)
}

// bruteIncludes compares sorted letter counts of every window.
func bruteIncludes(p, s string) bool {
	if len(p) > len(s) {
		return false
	}
	var want [26]int
	for i := 0; i < len(p); i++ {
		want[p[i]-'a']++
	}
	for start := 0; start+len(p) <= len(s); start++ {
		var got [26]int
		for i := start; i < start+len(p); i++ {
			got[s[i]-'a']++
		}
		if got == want {
			return true
		}
	}

	return false
}
