package handler

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dtroode/passguard/internal/api/grpc/rpc"
	"github.com/dtroode/passguard/internal/generator"
	"github.com/dtroode/passguard/internal/mocks"
	"github.com/dtroode/passguard/internal/model"
	"github.com/dtroode/passguard/internal/service"
	"github.com/dtroode/passguard/internal/testutil"
)

func TestPassword_Generate(t *testing.T) {
	t.Parallel()

	gen := mocks.NewPasswordGenerator(t)
	opts := model.GeneratorOptions{Letters: true, Numbers: true, SpecialChars: true, Length: 12}
	gen.On("Generate", opts).Return("Abc123!@#xyz", nil).Once()
	gen.On("Generate", model.GeneratorOptions{Length: 12}).Return("", model.ErrInvalidConfiguration).Once()

	h := NewPassword(gen, mocks.NewPasswordAnalyzer(t), testutil.MakeNoopLogger())

	out, err := h.Generate(context.Background(), &rpc.GenerateRequest{Letters: true, Numbers: true, SpecialChars: true, Length: 12})
	require.NoError(t, err)
	assert.Equal(t, "Abc123!@#xyz", out.Password)

	_, err = h.Generate(context.Background(), &rpc.GenerateRequest{Length: 12})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestPassword_GenerateDefaultLength(t *testing.T) {
	t.Parallel()

	h := NewPassword(service.NewGenerator(nil, testutil.MakeNoopLogger()), mocks.NewPasswordAnalyzer(t), testutil.MakeNoopLogger())

	out, err := h.Generate(context.Background(), &rpc.GenerateRequest{Letters: true, Numbers: true})
	require.NoError(t, err)
	assert.Len(t, []rune(out.Password), generator.DefaultLength)

	suggested, err := h.Suggest(context.Background(), &rpc.SuggestRequest{
		GenerateRequest: rpc.GenerateRequest{Letters: true},
		Count:           2,
	})
	require.NoError(t, err)
	require.Len(t, suggested.Suggestions, 2)
	for _, s := range suggested.Suggestions {
		assert.Len(t, []rune(s.Password), generator.DefaultLength)
	}

	_, err = h.Generate(context.Background(), &rpc.GenerateRequest{Letters: true, Length: -1})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestPassword_Suggest(t *testing.T) {
	t.Parallel()

	gen := mocks.NewPasswordGenerator(t)
	opts := model.GeneratorOptions{ExtendedAlphabet: true, Length: 8}
	gen.On("Suggest", opts, 2).Return([]model.Suggestion{
		{Password: "a", Transliteration: "A"},
		{Password: "b", Transliteration: "B"},
	}, nil).Once()

	h := NewPassword(gen, mocks.NewPasswordAnalyzer(t), testutil.MakeNoopLogger())

	out, err := h.Suggest(context.Background(), &rpc.SuggestRequest{
		GenerateRequest: rpc.GenerateRequest{ExtendedAlphabet: true, Length: 8},
		Count:           2,
	})
	require.NoError(t, err)
	require.Len(t, out.Suggestions, 2)
	assert.Equal(t, "B", out.Suggestions[1].Transliteration)
}

func TestPassword_Score(t *testing.T) {
	t.Parallel()

	an := mocks.NewPasswordAnalyzer(t)
	an.On("Score", "Tr0ub4dor&3").Return(model.StrengthAssessment{
		Score:    6,
		Strength: model.StrengthStrong,
		Message:  "Good password",
		Details:  model.StrengthDetails{Length: 11, HasUpper: true, HasLower: true, HasNumber: true, HasSpecial: true},
	}).Once()

	h := NewPassword(mocks.NewPasswordGenerator(t), an, testutil.MakeNoopLogger())

	out, err := h.Score(context.Background(), &rpc.PasswordRequest{Password: "Tr0ub4dor&3"})
	require.NoError(t, err)
	assert.Equal(t, 6, out.Score)
	assert.Equal(t, "Strong", out.Strength)
	assert.Equal(t, 11, out.Details.Length)
	assert.True(t, out.Details.HasSpecial)
}

func TestPassword_CheckLeak(t *testing.T) {
	t.Parallel()

	an := mocks.NewPasswordAnalyzer(t)
	an.On("CheckLeak", mock.Anything, "password1").Return(model.BreachResult{
		IsCompromised: true,
		Message:       "Found in online breach database!",
		Source:        model.BreachSourceAPI,
		Details:       &model.BreachDetails{SHA1: "E38AD214943DAAD1D64C102FAEC29DE4AFE9DA3D", Sources: json.RawMessage(`["x"]`)},
	}).Once()

	h := NewPassword(mocks.NewPasswordGenerator(t), an, testutil.MakeNoopLogger())

	out, err := h.CheckLeak(context.Background(), &rpc.PasswordRequest{Password: "password1"})
	require.NoError(t, err)
	assert.True(t, out.IsCompromised)
	assert.Equal(t, "api", out.Source)
	require.NotNil(t, out.Details)
	assert.Equal(t, `["x"]`, out.Details.Sources)
}

func TestPassword_Analyze(t *testing.T) {
	t.Parallel()

	an := mocks.NewPasswordAnalyzer(t)
	an.On("Analyze", mock.Anything, "password").Return(model.PasswordAnalysis{
		Strength: model.StrengthAssessment{Strength: model.StrengthCompromised, IsCompromised: true},
		Breach:   model.BreachResult{IsCompromised: true, Source: model.BreachSourceLocal},
	}).Once()

	h := NewPassword(mocks.NewPasswordGenerator(t), an, testutil.MakeNoopLogger())

	out, err := h.Analyze(context.Background(), &rpc.PasswordRequest{Password: "password"})
	require.NoError(t, err)
	assert.Equal(t, "Compromised", out.Strength.Strength)
	assert.Equal(t, "local", out.Breach.Source)
	assert.Nil(t, out.Breach.Details)
}
