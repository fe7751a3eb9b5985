// Package breach checks passwords against a local leaked list and a remote
// k-anonymity breach lookup service. Only the first five hex characters of
// the password's SHA-1 digest ever leave the process.
package breach

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dtroode/passguard/internal/logger"
	"github.com/dtroode/passguard/internal/model"
)

const (
	// MinCheckLength is the shortest password that is looked up at all.
	MinCheckLength = 8
	// PrefixLength is the number of hash characters sent upstream.
	PrefixLength = 5

	defaultTimeout = 5 * time.Second
	maxBodySize    = 4 << 20
)

// Result messages.
const (
	MsgTooShort   = "Password too short for breach check"
	MsgLocalHit   = "Found in local leaked passwords database!"
	MsgAPIHit     = "Found in online breach database!"
	MsgAPIMiss    = "Not found in breaches"
	MsgNoData     = "No breach data found"
	MsgUnverified = "Could not complete breach check"
)

// LeakedSet reports exact membership in the local compromised list.
type LeakedSet interface {
	Contains(password string) bool
}

// Config describes the remote lookup service.
type Config struct {
	BaseURL string
	Host    string
	APIKey  string
	Timeout time.Duration
}

// Checker performs leak checks. It never returns an error: remote failures
// degrade to an unverified result.
type Checker struct {
	leaked LeakedSet
	client *http.Client
	cfg    Config
	logger *logger.Logger
}

// Option configures a Checker.
type Option func(*Checker)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Checker) {
		c.client = client
	}
}

// NewChecker creates a Checker.
func NewChecker(leaked LeakedSet, cfg Config, logger *logger.Logger, opts ...Option) *Checker {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	c := &Checker{
		leaked: leaked,
		client: &http.Client{},
		cfg:    cfg,
		logger: logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type lookupResponse struct {
	Success bool                  `json:"success"`
	Found   int                   `json:"found"`
	Result  []model.BreachDetails `json:"result"`
}

// CheckLeak reports whether password is known to be compromised. The local
// set is consulted first; a local hit never reaches the network.
func (c *Checker) CheckLeak(ctx context.Context, password string) model.BreachResult {
	if len([]rune(password)) < MinCheckLength {
		return model.BreachResult{
			Message: MsgTooShort,
			Source:  model.BreachSourceNone,
		}
	}

	if c.leaked != nil && c.leaked.Contains(password) {
		return model.BreachResult{
			IsCompromised: true,
			Message:       MsgLocalHit,
			Source:        model.BreachSourceLocal,
		}
	}

	prefix, suffix := HashParts(password)

	resp, err := c.lookup(ctx, prefix)
	if err != nil {
		if errors.Is(err, errNoAPIKey) {
			c.logger.Debug("Breach checker: remote lookup skipped", "reason", err.Error())
		} else {
			c.logger.Warn("Breach checker: remote lookup failed", "prefix", prefix, "error", err.Error())
		}
		return model.BreachResult{
			Message:    MsgUnverified,
			Source:     model.BreachSourceNone,
			Unverified: true,
		}
	}

	if resp.Result == nil {
		return model.BreachResult{
			Message: MsgNoData,
			Source:  model.BreachSourceAPI,
		}
	}

	for _, entry := range resp.Result {
		if entry.SHA1 != "" && strings.Contains(strings.ToUpper(entry.SHA1), suffix) {
			details := entry
			return model.BreachResult{
				IsCompromised: true,
				Message:       MsgAPIHit,
				Source:        model.BreachSourceAPI,
				Details:       &details,
			}
		}
	}

	return model.BreachResult{
		Message: MsgAPIMiss,
		Source:  model.BreachSourceAPI,
	}
}

// HashParts returns the upper-case SHA-1 hex digest of password split into
// the prefix sent upstream and the suffix matched locally.
func HashParts(password string) (prefix, suffix string) {
	sum := sha1.Sum([]byte(password))
	digest := strings.ToUpper(hex.EncodeToString(sum[:]))
	return digest[:PrefixLength], digest[PrefixLength:]
}

var errNoAPIKey = errors.New("breach api key is not configured")

func (c *Checker) lookup(ctx context.Context, prefix string) (lookupResponse, error) {
	if c.cfg.APIKey == "" {
		return lookupResponse{}, errNoAPIKey
	}

	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	u, err := url.Parse(c.cfg.BaseURL)
	if err != nil {
		return lookupResponse{}, fmt.Errorf("invalid breach api url: %w", err)
	}
	if u.Path == "" {
		u.Path = "/"
	}
	q := u.Query()
	q.Set("hash", prefix)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return lookupResponse{}, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("X-RapidAPI-Key", c.cfg.APIKey)
	if c.cfg.Host != "" {
		req.Header.Set("X-RapidAPI-Host", c.cfg.Host)
	}
	req.Header.Set("Accept", "application/json")

	res, err := c.client.Do(req)
	if err != nil {
		return lookupResponse{}, fmt.Errorf("request failed: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(res.Body, maxBodySize))
		return lookupResponse{}, fmt.Errorf("unexpected status %d", res.StatusCode)
	}

	var out lookupResponse
	if err := json.NewDecoder(io.LimitReader(res.Body, maxBodySize)).Decode(&out); err != nil {
		return lookupResponse{}, fmt.Errorf("malformed response: %w", err)
	}

	return out, nil
}
