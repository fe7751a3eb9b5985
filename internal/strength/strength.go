// Package strength scores passwords with an additive composition heuristic.
package strength

import (
	"strings"
	"unicode/utf8"

	"github.com/dtroode/passguard/internal/model"
)

// CommonPatterns are substrings that lower a password's score when present
// in any letter case.
var CommonPatterns = []string{
	"1234", "abcd", "qwerty", "password",
	"1111", "admin", "welcome", "letmein",
}

// Warnings emitted by Score.
const (
	WarnTooShort    = "Password should be at least 8 characters"
	WarnNoUpper     = "Add uppercase letters"
	WarnNoLower     = "Add lowercase letters"
	WarnNoNumber    = "Add numbers"
	WarnNoSpecial   = "Add special characters"
	WarnCommon      = "Avoid common patterns"
	WarnCompromised = "DO NOT USE - Found in leaked passwords database"
)

var messages = map[model.Strength]string{
	model.StrengthNA:          "Please enter a password!",
	model.StrengthVeryWeak:    "Extremely vulnerable",
	model.StrengthWeak:        "Easy to crack",
	model.StrengthMedium:      "Could be stronger",
	model.StrengthStrong:      "Good password",
	model.StrengthVeryStrong:  "Excellent security",
	model.StrengthCompromised: "This password appears in breaches!",
}

// Message returns the advisory message of a strength band.
func Message(s model.Strength) string {
	return messages[s]
}

// LeakedSet reports exact membership in the local compromised list.
type LeakedSet interface {
	Contains(password string) bool
}

// Scorer is a pure password scorer. It holds no mutable state.
type Scorer struct {
	leaked LeakedSet
}

// NewScorer creates a Scorer backed by the given compromised set, which may be nil.
func NewScorer(leaked LeakedSet) *Scorer {
	return &Scorer{leaked: leaked}
}

// Score assesses password. An empty password yields the N/A assessment.
func (s *Scorer) Score(password string) model.StrengthAssessment {
	if password == "" {
		return model.StrengthAssessment{
			Strength: model.StrengthNA,
			Message:  Message(model.StrengthNA),
			Warnings: []string{},
		}
	}

	score := 0
	warnings := []string{}

	details := describe(password)

	switch {
	case details.Length >= 12:
		score += 2
	case details.Length >= 8:
		score++
	default:
		warnings = append(warnings, WarnTooShort)
	}

	if details.HasUpper {
		score++
	}
	if details.HasLower {
		score++
	}
	if details.HasNumber {
		score++
	}
	if details.HasSpecial {
		score += 2
	}

	if !details.HasUpper {
		warnings = append(warnings, WarnNoUpper)
	}
	if !details.HasLower {
		warnings = append(warnings, WarnNoLower)
	}
	if !details.HasNumber {
		warnings = append(warnings, WarnNoNumber)
	}
	if !details.HasSpecial {
		warnings = append(warnings, WarnNoSpecial)
	}

	if hasCommonPattern(password) {
		score -= 2
		warnings = append(warnings, WarnCommon)
	}

	compromised := s.leaked != nil && s.leaked.Contains(password)
	if compromised {
		warnings = append(warnings, WarnCompromised)
		score = 0
	}

	band := Band(score)
	if compromised {
		band = model.StrengthCompromised
	}

	return model.StrengthAssessment{
		Score:         score,
		Strength:      band,
		Message:       Message(band),
		Warnings:      warnings,
		IsCompromised: compromised,
		Details:       details,
	}
}

// Band maps a composition score to its strength band.
func Band(score int) model.Strength {
	switch {
	case score <= 2:
		return model.StrengthVeryWeak
	case score <= 4:
		return model.StrengthWeak
	case score <= 6:
		return model.StrengthMedium
	case score <= 8:
		return model.StrengthStrong
	default:
		return model.StrengthVeryStrong
	}
}

// MarkCompromised applies the compromised override to an assessment.
func MarkCompromised(a model.StrengthAssessment) model.StrengthAssessment {
	if a.Strength == model.StrengthNA {
		return a
	}
	a.IsCompromised = true
	a.Score = 0
	a.Strength = model.StrengthCompromised
	a.Message = Message(model.StrengthCompromised)
	return a
}

// describe classifies characters the ASCII way: anything outside
// [A-Za-z0-9] counts as special.
func describe(password string) model.StrengthDetails {
	d := model.StrengthDetails{Length: utf8.RuneCountInString(password)}
	for _, r := range password {
		switch {
		case r >= 'A' && r <= 'Z':
			d.HasUpper = true
		case r >= 'a' && r <= 'z':
			d.HasLower = true
		case r >= '0' && r <= '9':
			d.HasNumber = true
		default:
			d.HasSpecial = true
		}
	}
	return d
}

func hasCommonPattern(password string) bool {
	lower := strings.ToLower(password)
	for _, p := range CommonPatterns {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}
