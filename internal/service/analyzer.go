package service

import (
	"context"

	"github.com/dtroode/passguard/internal/breach"
	"github.com/dtroode/passguard/internal/logger"
	"github.com/dtroode/passguard/internal/model"
	"github.com/dtroode/passguard/internal/strength"
)

// StrengthScorer rates a password.
type StrengthScorer interface {
	Score(password string) model.StrengthAssessment
}

// LeakChecker looks a password up in breach data.
type LeakChecker interface {
	CheckLeak(ctx context.Context, password string) model.BreachResult
}

// Analyzer combines strength scoring with breach checking.
type Analyzer struct {
	scorer  StrengthScorer
	checker LeakChecker
	logger  *logger.Logger
}

func NewAnalyzer(scorer StrengthScorer, checker LeakChecker, logger *logger.Logger) *Analyzer {
	return &Analyzer{scorer: scorer, checker: checker, logger: logger}
}

func (a *Analyzer) Score(password string) model.StrengthAssessment {
	return a.scorer.Score(password)
}

func (a *Analyzer) CheckLeak(ctx context.Context, password string) model.BreachResult {
	return a.checker.CheckLeak(ctx, password)
}

// Analyze runs the scorer and the breach check concurrently. A confirmed
// breach overrides the strength band.
func (a *Analyzer) Analyze(ctx context.Context, password string) model.PasswordAnalysis {
	breachCh := make(chan model.BreachResult, 1)
	go func() {
		breachCh <- a.checker.CheckLeak(ctx, password)
	}()

	assessment := a.scorer.Score(password)

	var result model.BreachResult
	select {
	case result = <-breachCh:
	case <-ctx.Done():
		result = model.BreachResult{
			Message:    breach.MsgUnverified,
			Source:     model.BreachSourceNone,
			Unverified: true,
		}
	}

	if result.IsCompromised {
		assessment = strength.MarkCompromised(assessment)
	}

	a.logger.Debug("Analyzer: password analyzed",
		"strength", assessment.Strength,
		"compromised", result.IsCompromised,
		"source", result.Source)

	return model.PasswordAnalysis{Strength: assessment, Breach: result}
}
