package model

import "encoding/json"

// GeneratorOptions selects the character pools and length of a generated password.
type GeneratorOptions struct {
	Numbers          bool
	Letters          bool
	SpecialChars     bool
	ExtendedAlphabet bool
	Length           int
}

// Suggestion is a generated password and its transliterated form.
type Suggestion struct {
	Password        string
	Transliteration string
}

// Strength is a strength band of a scored password.
type Strength string

const (
	StrengthNA          Strength = "N/A"
	StrengthVeryWeak    Strength = "Very Weak"
	StrengthWeak        Strength = "Weak"
	StrengthMedium      Strength = "Medium"
	StrengthStrong      Strength = "Strong"
	StrengthVeryStrong  Strength = "Very Strong"
	StrengthCompromised Strength = "Compromised"
)

// StrengthAssessment is the result of scoring a password.
type StrengthAssessment struct {
	Score         int
	Strength      Strength
	Message       string
	Warnings      []string
	IsCompromised bool
	Details       StrengthDetails
}

// StrengthDetails describes the composition of a scored password.
type StrengthDetails struct {
	Length     int
	HasUpper   bool
	HasLower   bool
	HasNumber  bool
	HasSpecial bool
}

// BreachSource tells which lookup produced a BreachResult.
type BreachSource string

const (
	BreachSourceLocal BreachSource = "local"
	BreachSourceAPI   BreachSource = "api"
	BreachSourceNone  BreachSource = "none"
)

// BreachResult is the outcome of a leak check. Unverified is set when the
// remote lookup could not be completed.
type BreachResult struct {
	IsCompromised bool
	Message       string
	Source        BreachSource
	Unverified    bool
	Details       *BreachDetails
}

// BreachDetails is the matching entry reported by the breach service.
type BreachDetails struct {
	SHA1    string          `json:"sha1"`
	Hash    string          `json:"hash"`
	Sources json.RawMessage `json:"sources,omitempty"`
}

// PasswordAnalysis merges a strength assessment with a leak check.
type PasswordAnalysis struct {
	Strength StrengthAssessment
	Breach   BreachResult
}
