package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"golang.org/x/text/unicode/norm"

	"github.com/katalvlaran/seqkit/palindrome"
	"github.com/katalvlaran/seqkit/text"
	"github.com/katalvlaran/seqkit/window"
)

// cli holds flag values and the logger shared by every subcommand.
type cli struct {
	logLevel  string
	logFormat string
	log       *slog.Logger

	runes         bool
	caseSensitive bool
	fold          bool
}

// newRootCmd assembles the seqkit command tree.
func newRootCmd() *cobra.Command {
	c := &cli{log: slog.New(slog.DiscardHandler)}

	root := &cobra.Command{
		Use:   "seqkit",
		Short: "String and sequence analysis from the command line",
		Long: `seqkit runs the seqkit library routines on its arguments:
longest palindromic substring, permutation inclusion, word patterns,
palindrome, anagram and bracket checks. Arguments are normalized to NFC.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			l, err := newLogger(cmd.ErrOrStderr(), c.logLevel, c.logFormat)
			if err != nil {
				return err
			}
			c.log = l.With("command", cmd.Name())

			return nil
		},
	}
	root.PersistentFlags().StringVar(&c.logLevel, "log-level", "warn", "log level: debug, info, warn or error")
	root.PersistentFlags().StringVar(&c.logFormat, "log-format", formatText, "log format: text or json")

	longestCmd := &cobra.Command{
		Use:   "longest <s>",
		Short: "Print the longest palindromic substring of s",
		Args:  cobra.ExactArgs(1),
		RunE:  c.runLongest,
	}

	includesCmd := &cobra.Command{
		Use:   "includes <pattern> <text>",
		Short: "Report whether text holds a permutation of pattern",
		Args:  cobra.ExactArgs(2),
		RunE:  c.runIncludes,
	}
	includesCmd.Flags().BoolVar(&c.runes, "runes", false, "accept any alphabet instead of lowercase ASCII")

	patternCmd := &cobra.Command{
		Use:   "pattern <pattern> <s>",
		Short: "Report whether the words of s follow pattern one-to-one",
		Args:  cobra.ExactArgs(2),
		RunE:  c.runPattern,
	}

	palindromeCmd := &cobra.Command{
		Use:   "palindrome <s>",
		Short: "Report whether the letters of s form a palindrome",
		Args:  cobra.ExactArgs(1),
		RunE:  c.runPalindrome,
	}
	palindromeCmd.Flags().BoolVar(&c.caseSensitive, "case-sensitive", false, "compare letters exactly")

	anagramCmd := &cobra.Command{
		Use:   "anagram <a> <b>",
		Short: "Report whether a and b are anagrams",
		Args:  cobra.ExactArgs(2),
		RunE:  c.runAnagram,
	}
	anagramCmd.Flags().BoolVar(&c.fold, "fold", false, "ignore case")

	bracketsCmd := &cobra.Command{
		Use:   "brackets <s>",
		Short: "Report whether the brackets of s are balanced",
		Args:  cobra.ExactArgs(1),
		RunE:  c.runBrackets,
	}

	root.AddCommand(longestCmd, includesCmd, patternCmd, palindromeCmd, anagramCmd, bracketsCmd)

	return root
}

func (c *cli) runLongest(cmd *cobra.Command, args []string) error {
	s := norm.NFC.String(args[0])
	sp := palindrome.LongestSpan(s)
	c.log.Debug("longest palindrome", "input", s, "start", sp.Start, "end", sp.End)

	return c.print(cmd, s[sp.Start:sp.End])
}

func (c *cli) runIncludes(cmd *cobra.Command, args []string) error {
	pattern, txt := norm.NFC.String(args[0]), norm.NFC.String(args[1])
	c.log.Debug("inclusion check", "pattern", pattern, "text", txt, "runes", c.runes)

	if c.runes {
		return c.print(cmd, window.IncludesRunes(pattern, txt))
	}
	ok, err := window.CheckInclusion(pattern, txt)
	if err != nil {
		c.log.Warn("rejected input", "error", err)
	}

	return c.print(cmd, ok)
}

func (c *cli) runPattern(cmd *cobra.Command, args []string) error {
	pattern, s := norm.NFC.String(args[0]), norm.NFC.String(args[1])
	c.log.Debug("word pattern", "pattern", pattern, "s", s)

	err := window.MatchWordPattern(pattern, s)
	switch {
	case err == nil:
	case isMalformed(err):
		c.log.Warn("rejected input", "error", err)
	default:
		c.log.Info("no match", "reason", err)
	}

	return c.print(cmd, err == nil)
}

func (c *cli) runPalindrome(cmd *cobra.Command, args []string) error {
	s := norm.NFC.String(args[0])
	c.log.Debug("palindrome check", "input", s, "case_sensitive", c.caseSensitive)

	var opts []palindrome.Option
	if c.caseSensitive {
		opts = append(opts, palindrome.WithCaseSensitive())
	}

	return c.print(cmd, palindrome.IsPalindrome(s, opts...))
}

func (c *cli) runAnagram(cmd *cobra.Command, args []string) error {
	a, b := norm.NFC.String(args[0]), norm.NFC.String(args[1])
	c.log.Debug("anagram check", "a", a, "b", b, "fold", c.fold)

	if c.fold {
		return c.print(cmd, text.IsAnagramFold(a, b))
	}

	return c.print(cmd, text.IsAnagram(a, b))
}

func (c *cli) runBrackets(cmd *cobra.Command, args []string) error {
	s := norm.NFC.String(args[0])
	c.log.Debug("bracket check", "input", s)

	return c.print(cmd, text.Balanced(s))
}

// isMalformed reports whether err rejects the input rather than the match.
func isMalformed(err error) bool {
	return errors.Is(err, window.ErrInvalidCharacter) || errors.Is(err, window.ErrTokenCount)
}

func (c *cli) print(cmd *cobra.Command, v any) error {
	_, err := fmt.Fprintln(cmd.OutOrStdout(), v)

	return err
}
