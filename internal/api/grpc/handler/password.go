package handler

import (
	"context"

	"github.com/dtroode/passguard/internal/api/grpc/rpc"
	"github.com/dtroode/passguard/internal/generator"
	"github.com/dtroode/passguard/internal/logger"
	"github.com/dtroode/passguard/internal/model"
)

// PasswordGenerator produces random passwords.
type PasswordGenerator interface {
	Generate(opts model.GeneratorOptions) (string, error)
	Suggest(opts model.GeneratorOptions, n int) ([]model.Suggestion, error)
}

// PasswordAnalyzer rates passwords and checks them against breach data.
type PasswordAnalyzer interface {
	Score(password string) model.StrengthAssessment
	CheckLeak(ctx context.Context, password string) model.BreachResult
	Analyze(ctx context.Context, password string) model.PasswordAnalysis
}

// Password handles gRPC endpoints for password tooling. Passwords in
// requests are never logged.
type Password struct {
	generator PasswordGenerator
	analyzer  PasswordAnalyzer
	logger    *logger.Logger
}

// NewPassword creates a new Password handler.
func NewPassword(generator PasswordGenerator, analyzer PasswordAnalyzer, logger *logger.Logger) *Password {
	return &Password{generator: generator, analyzer: analyzer, logger: logger}
}

func (h *Password) Generate(_ context.Context, req *rpc.GenerateRequest) (*rpc.GenerateResponse, error) {
	password, err := h.generator.Generate(generatorOptions(req))
	if err != nil {
		return nil, handleError(err)
	}
	return &rpc.GenerateResponse{Password: password}, nil
}

func (h *Password) Suggest(_ context.Context, req *rpc.SuggestRequest) (*rpc.SuggestResponse, error) {
	suggestions, err := h.generator.Suggest(generatorOptions(&req.GenerateRequest), req.Count)
	if err != nil {
		return nil, handleError(err)
	}

	resp := &rpc.SuggestResponse{Suggestions: make([]rpc.Suggestion, 0, len(suggestions))}
	for _, s := range suggestions {
		resp.Suggestions = append(resp.Suggestions, rpc.Suggestion{
			Password:        s.Password,
			Transliteration: s.Transliteration,
		})
	}
	return resp, nil
}

func (h *Password) Score(_ context.Context, req *rpc.PasswordRequest) (*rpc.ScoreResponse, error) {
	resp := scoreResponse(h.analyzer.Score(req.Password))
	return &resp, nil
}

func (h *Password) CheckLeak(ctx context.Context, req *rpc.PasswordRequest) (*rpc.CheckLeakResponse, error) {
	resp := checkLeakResponse(h.analyzer.CheckLeak(ctx, req.Password))
	return &resp, nil
}

func (h *Password) Analyze(ctx context.Context, req *rpc.PasswordRequest) (*rpc.AnalyzeResponse, error) {
	analysis := h.analyzer.Analyze(ctx, req.Password)

	h.logger.Debug("Password handler: analysis completed",
		"strength", analysis.Strength.Strength,
		"compromised", analysis.Breach.IsCompromised)

	return &rpc.AnalyzeResponse{
		Strength: scoreResponse(analysis.Strength),
		Breach:   checkLeakResponse(analysis.Breach),
	}, nil
}

// generatorOptions converts a request. An unset length means DefaultLength.
func generatorOptions(req *rpc.GenerateRequest) model.GeneratorOptions {
	length := req.Length
	if length == 0 {
		length = generator.DefaultLength
	}

	return model.GeneratorOptions{
		Numbers:          req.Numbers,
		Letters:          req.Letters,
		SpecialChars:     req.SpecialChars,
		ExtendedAlphabet: req.ExtendedAlphabet,
		Length:           length,
	}
}

func scoreResponse(a model.StrengthAssessment) rpc.ScoreResponse {
	return rpc.ScoreResponse{
		Score:         a.Score,
		Strength:      string(a.Strength),
		Message:       a.Message,
		Warnings:      a.Warnings,
		IsCompromised: a.IsCompromised,
		Details: rpc.StrengthDetails{
			Length:     a.Details.Length,
			HasUpper:   a.Details.HasUpper,
			HasLower:   a.Details.HasLower,
			HasNumber:  a.Details.HasNumber,
			HasSpecial: a.Details.HasSpecial,
		},
	}
}

func checkLeakResponse(r model.BreachResult) rpc.CheckLeakResponse {
	resp := rpc.CheckLeakResponse{
		IsCompromised: r.IsCompromised,
		Message:       r.Message,
		Source:        string(r.Source),
		Unverified:    r.Unverified,
	}
	if r.Details != nil {
		resp.Details = &rpc.BreachDetails{
			SHA1:    r.Details.SHA1,
			Hash:    r.Details.Hash,
			Sources: string(r.Details.Sources),
		}
	}
	return resp
}
