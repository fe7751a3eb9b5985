// Package rpc defines the passguard gRPC services, their JSON messages and
// typed clients.
package rpc

type Empty struct{}

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type LogoutRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type TokenResponse struct {
	UserID       string `json:"user_id,omitempty"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type GenerateRequest struct {
	Numbers          bool `json:"numbers"`
	Letters          bool `json:"letters"`
	SpecialChars     bool `json:"special_chars"`
	ExtendedAlphabet bool `json:"extended_alphabet"`
	Length           int  `json:"length"`
}

type GenerateResponse struct {
	Password string `json:"password"`
}

type SuggestRequest struct {
	GenerateRequest
	Count int `json:"count,omitempty"`
}

type Suggestion struct {
	Password        string `json:"password"`
	Transliteration string `json:"transliteration"`
}

type SuggestResponse struct {
	Suggestions []Suggestion `json:"suggestions"`
}

type PasswordRequest struct {
	Password string `json:"password"`
}

type StrengthDetails struct {
	Length     int  `json:"length"`
	HasUpper   bool `json:"has_upper"`
	HasLower   bool `json:"has_lower"`
	HasNumber  bool `json:"has_number"`
	HasSpecial bool `json:"has_special"`
}

type ScoreResponse struct {
	Score         int             `json:"score"`
	Strength      string          `json:"strength"`
	Message       string          `json:"message"`
	Warnings      []string        `json:"warnings,omitempty"`
	IsCompromised bool            `json:"is_compromised"`
	Details       StrengthDetails `json:"details"`
}

type BreachDetails struct {
	SHA1    string `json:"sha1"`
	Hash    string `json:"hash,omitempty"`
	Sources string `json:"sources,omitempty"`
}

type CheckLeakResponse struct {
	IsCompromised bool           `json:"is_compromised"`
	Message       string         `json:"message"`
	Source        string         `json:"source"`
	Unverified    bool           `json:"unverified,omitempty"`
	Details       *BreachDetails `json:"details,omitempty"`
}

type AnalyzeResponse struct {
	Strength ScoreResponse     `json:"strength"`
	Breach   CheckLeakResponse `json:"breach"`
}

type SaveRequest struct {
	Title    string `json:"title"`
	Username string `json:"username,omitempty"`
	Password string `json:"password"`
	Notes    string `json:"notes,omitempty"`
	Category string `json:"category,omitempty"`
}

type UpdateRequest struct {
	ID string `json:"id"`
	SaveRequest
}

type Credential struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Username    string `json:"username,omitempty"`
	Password    string `json:"password,omitempty"`
	Notes       string `json:"notes,omitempty"`
	Category    string `json:"category"`
	CreatedAt   int64  `json:"created_at"`
	LastUpdated int64  `json:"last_updated"`
}

type CredentialResponse struct {
	Credential Credential `json:"credential"`
}

type ListRequest struct {
	Category string `json:"category,omitempty"`
	Query    string `json:"query,omitempty"`
}

type ListResponse struct {
	Credentials []Credential `json:"credentials"`
}

type GetRequest struct {
	ID string `json:"id"`
}

type DeleteRequest struct {
	ID string `json:"id"`
}
