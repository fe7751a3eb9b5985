package generator

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/passguard/internal/model"
)

func containsAny(s, pool string) bool {
	return strings.ContainsAny(s, pool)
}

func TestGenerate_Composition(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		opts model.GeneratorOptions
	}{
		{
			name: "numbers only",
			opts: model.GeneratorOptions{Numbers: true, Length: 8},
		},
		{
			name: "letters and numbers",
			opts: model.GeneratorOptions{Numbers: true, Letters: true, Length: 10},
		},
		{
			name: "letters numbers special",
			opts: model.GeneratorOptions{Numbers: true, Letters: true, SpecialChars: true, Length: 12},
		},
		{
			name: "all pools",
			opts: model.GeneratorOptions{Numbers: true, Letters: true, SpecialChars: true, ExtendedAlphabet: true, Length: 16},
		},
		{
			name: "extended only at minimum length",
			opts: model.GeneratorOptions{ExtendedAlphabet: true, Length: MinLength},
		},
		{
			name: "all pools at minimum length",
			opts: model.GeneratorOptions{Numbers: true, Letters: true, SpecialChars: true, ExtendedAlphabet: true, Length: 4},
		},
	}

	pools := []struct {
		chars   string
		enabled func(model.GeneratorOptions) bool
	}{
		{Numbers, func(o model.GeneratorOptions) bool { return o.Numbers }},
		{Letters, func(o model.GeneratorOptions) bool { return o.Letters }},
		{SpecialChars, func(o model.GeneratorOptions) bool { return o.SpecialChars }},
		{Devanagari, func(o model.GeneratorOptions) bool { return o.ExtendedAlphabet }},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			for range 200 {
				p, err := Generate(tt.opts)
				require.NoError(t, err)
				assert.Equal(t, tt.opts.Length, utf8.RuneCountInString(p))

				for _, pool := range pools {
					if pool.enabled(tt.opts) {
						assert.True(t, containsAny(p, pool.chars), "expected a character of %q in %q", pool.chars, p)
					} else {
						assert.False(t, containsAny(p, pool.chars), "unexpected character of %q in %q", pool.chars, p)
					}
				}
			}
		})
	}
}

func TestGenerate_InvalidConfiguration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		opts model.GeneratorOptions
	}{
		{
			name: "no pools",
			opts: model.GeneratorOptions{Length: 12},
		},
		{
			name: "length below minimum",
			opts: model.GeneratorOptions{Letters: true, Length: 3},
		},
		{
			name: "zero length",
			opts: model.GeneratorOptions{Letters: true, Numbers: true},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p, err := Generate(tt.opts)
			assert.ErrorIs(t, err, model.ErrInvalidConfiguration)
			assert.Empty(t, p)
		})
	}
}

func TestGenerate_NoCollisions(t *testing.T) {
	opts := model.GeneratorOptions{Letters: true, Numbers: true, SpecialChars: true, Length: 12}
	seen := make(map[string]struct{}, 10000)

	for range 10000 {
		p, err := Generate(opts)
		require.NoError(t, err)
		_, dup := seen[p]
		require.False(t, dup, "duplicate password %q", p)
		seen[p] = struct{}{}
	}
}

func TestSuggest(t *testing.T) {
	t.Parallel()

	opts := model.GeneratorOptions{Letters: true, Numbers: true, Length: 12}

	t.Run("default count with identity", func(t *testing.T) {
		got, err := Suggest(opts, 0, nil)
		require.NoError(t, err)
		require.Len(t, got, DefaultSuggestions)
		for _, s := range got {
			assert.Equal(t, s.Password, s.Transliteration)
		}
	})

	t.Run("clamped count", func(t *testing.T) {
		got, err := Suggest(opts, 1000, nil)
		require.NoError(t, err)
		assert.Len(t, got, MaxSuggestions)

		got, err = Suggest(opts, -3, nil)
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("custom transliterator", func(t *testing.T) {
		upper := TransliteratorFunc(strings.ToUpper)
		got, err := Suggest(opts, 2, upper)
		require.NoError(t, err)
		for _, s := range got {
			assert.Equal(t, strings.ToUpper(s.Password), s.Transliteration)
		}
	})

	t.Run("invalid options", func(t *testing.T) {
		got, err := Suggest(model.GeneratorOptions{Length: 8}, 3, nil)
		assert.ErrorIs(t, err, model.ErrInvalidConfiguration)
		assert.Nil(t, got)
	})
}
