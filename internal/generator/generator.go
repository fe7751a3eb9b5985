// Package generator produces random passwords from selectable character pools.
package generator

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/dtroode/passguard/internal/model"
)

const (
	// MinLength is the shortest password Generate accepts.
	MinLength = 4
	// DefaultLength is used by callers that leave the length unset.
	DefaultLength = 16
	// DefaultSuggestions is the number of passwords Suggest returns by default.
	DefaultSuggestions = 5
	// MaxSuggestions caps a single Suggest call.
	MaxSuggestions = 20
)

// Character pools.
const (
	Numbers      = "0123456789"
	Letters      = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
	SpecialChars = "!@#$%^&*()_+[]{}<>?"
	Devanagari   = "अआइईउऊऋएऐओऔकखगघङचछजझञटठडढणतथदधनपफबभमयरलवशषसह"
)

// Transliterator maps a password to an alternative script.
type Transliterator interface {
	Transliterate(password string) string
}

// TransliteratorFunc adapts a plain function to Transliterator.
type TransliteratorFunc func(string) string

// Transliterate calls f(password).
func (f TransliteratorFunc) Transliterate(password string) string {
	return f(password)
}

// Identity returns passwords unchanged.
var Identity Transliterator = TransliteratorFunc(func(s string) string { return s })

// Pools returns the enabled character pools in a fixed order.
func Pools(opts model.GeneratorOptions) [][]rune {
	var pools [][]rune
	if opts.Numbers {
		pools = append(pools, []rune(Numbers))
	}
	if opts.Letters {
		pools = append(pools, []rune(Letters))
	}
	if opts.SpecialChars {
		pools = append(pools, []rune(SpecialChars))
	}
	if opts.ExtendedAlphabet {
		pools = append(pools, []rune(Devanagari))
	}
	return pools
}

// Generate returns a password of opts.Length runes containing at least one
// character of every enabled pool and none of the disabled ones.
func Generate(opts model.GeneratorOptions) (string, error) {
	pools := Pools(opts)
	if len(pools) == 0 {
		return "", fmt.Errorf("no character pool enabled: %w", model.ErrInvalidConfiguration)
	}
	if opts.Length < MinLength {
		return "", fmt.Errorf("length %d is below minimum %d: %w", opts.Length, MinLength, model.ErrInvalidConfiguration)
	}
	if opts.Length < len(pools) {
		return "", fmt.Errorf("length %d is below enabled pool count %d: %w", opts.Length, len(pools), model.ErrInvalidConfiguration)
	}

	password := make([]rune, 0, opts.Length)
	var all []rune
	for _, pool := range pools {
		ch, err := pick(pool)
		if err != nil {
			return "", err
		}
		password = append(password, ch)
		all = append(all, pool...)
	}

	for len(password) < opts.Length {
		ch, err := pick(all)
		if err != nil {
			return "", err
		}
		password = append(password, ch)
	}

	if err := shuffle(password); err != nil {
		return "", err
	}

	return string(password), nil
}

// Suggest generates n passwords and their transliterations. n is clamped
// to [1, MaxSuggestions]; zero means DefaultSuggestions.
func Suggest(opts model.GeneratorOptions, n int, tr Transliterator) ([]model.Suggestion, error) {
	if n == 0 {
		n = DefaultSuggestions
	}
	n = max(1, min(n, MaxSuggestions))
	if tr == nil {
		tr = Identity
	}

	suggestions := make([]model.Suggestion, 0, n)
	for range n {
		p, err := Generate(opts)
		if err != nil {
			return nil, err
		}
		suggestions = append(suggestions, model.Suggestion{
			Password:        p,
			Transliteration: tr.Transliterate(p),
		})
	}

	return suggestions, nil
}

func pick(pool []rune) (rune, error) {
	idx, err := randInt(len(pool))
	if err != nil {
		return 0, err
	}
	return pool[idx], nil
}

// shuffle is a Fisher-Yates shuffle driven by crypto/rand.
func shuffle(buf []rune) error {
	for i := len(buf) - 1; i > 0; i-- {
		j, err := randInt(i + 1)
		if err != nil {
			return err
		}
		buf[i], buf[j] = buf[j], buf[i]
	}
	return nil
}

func randInt(n int) (int, error) {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("failed to read random index: %w", err)
	}
	return int(v.Int64()), nil
}
