package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Error types for common failure scenarios.
var (
	ErrNoAPIKey          = errors.New("no youtube api key configured")
	ErrQuotaExceeded     = errors.New("youtube api quota exceeded")
	ErrVideoNotFound     = errors.New("video not found")
	ErrVideoNotPlayable  = errors.New("video not playable")
	ErrPlayerUnavailable = errors.New("player backend unavailable")
	ErrPlayerNotReady    = errors.New("player not ready")
	ErrResolverMissing   = errors.New("yt-dlp not installed")
	ErrRateLimited       = errors.New("rate limited")
	ErrNetworkError      = errors.New("network error")
	ErrTimeout           = errors.New("request timeout")
	ErrConfigNotFound    = errors.New("config file not found")
	ErrInvalidConfig     = errors.New("invalid configuration")
)

// StrumError wraps an error with a user-friendly suggestion.
type StrumError struct {
	Err        error
	Suggestion string
}

func (e *StrumError) Error() string {
	return e.Err.Error()
}

func (e *StrumError) Unwrap() error {
	return e.Err
}

// WithSuggestion wraps an error with a helpful suggestion.
func WithSuggestion(err error, suggestion string) error {
	return &StrumError{
		Err:        err,
		Suggestion: suggestion,
	}
}

// GetSuggestion returns a suggestion for the given error.
func GetSuggestion(err error) string {
	if err == nil {
		return ""
	}

	// Check if it's already a StrumError with suggestion
	var strumErr *StrumError
	if errors.As(err, &strumErr) && strumErr.Suggestion != "" {
		return strumErr.Suggestion
	}

	errStr := strings.ToLower(err.Error())

	// API key errors
	if errors.Is(err, ErrNoAPIKey) || strings.Contains(errStr, "api key not valid") ||
		strings.Contains(errStr, "keyinvalid") {
		return "Run 'strum config init' to set your YouTube Data API key"
	}

	// Quota errors
	if errors.Is(err, ErrQuotaExceeded) || strings.Contains(errStr, "quotaexceeded") ||
		strings.Contains(errStr, "dailylimitexceeded") {
		return "YouTube API quota exhausted for today. Try again after midnight Pacific time"
	}

	// Player backend errors
	if errors.Is(err, ErrResolverMissing) || strings.Contains(errStr, "yt-dlp") {
		return "Install yt-dlp (https://github.com/yt-dlp/yt-dlp) or wait for strum to finish downloading it"
	}

	if errors.Is(err, ErrPlayerUnavailable) || strings.Contains(errStr, "audio device") {
		return "Check that an audio output device is available"
	}

	if errors.Is(err, ErrVideoNotFound) || errors.Is(err, ErrVideoNotPlayable) {
		return "The video may be private, removed, or region-locked. Try another result"
	}

	// Rate limiting
	if errors.Is(err, ErrRateLimited) || strings.Contains(errStr, "rate limit") ||
		strings.Contains(errStr, "429") {
		return "Too many requests. Wait a moment and try again"
	}

	// Network errors
	if errors.Is(err, ErrNetworkError) || errors.Is(err, ErrTimeout) ||
		strings.Contains(errStr, "network") || strings.Contains(errStr, "timeout") ||
		strings.Contains(errStr, "connection refused") {
		return "Check your internet connection and try again"
	}

	// Config errors
	if errors.Is(err, ErrConfigNotFound) || strings.Contains(errStr, "config") {
		return "Run 'strum config init' to set up your configuration"
	}

	// Server errors
	if strings.Contains(errStr, "500") || strings.Contains(errStr, "backenderror") {
		return "YouTube is having issues. Try again in a moment"
	}

	return ""
}

// Format returns a formatted error message with suggestion if available.
func Format(err error) string {
	if err == nil {
		return ""
	}

	suggestion := GetSuggestion(err)
	if suggestion != "" {
		return fmt.Sprintf("Error: %s\n\nSuggestion: %s", err.Error(), suggestion)
	}

	return fmt.Sprintf("Error: %s", err.Error())
}

// PartialResult represents a result that may have partial failures.
type PartialResult[T any] struct {
	Data   T
	Errors []error
}

// HasErrors returns true if there were any errors.
func (p *PartialResult[T]) HasErrors() bool {
	return len(p.Errors) > 0
}

// AddError adds an error to the partial result.
func (p *PartialResult[T]) AddError(err error) {
	if err != nil {
		p.Errors = append(p.Errors, err)
	}
}

// ErrorSummary returns a summary of all errors.
func (p *PartialResult[T]) ErrorSummary() string {
	if len(p.Errors) == 0 {
		return ""
	}
	if len(p.Errors) == 1 {
		return p.Errors[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d errors occurred:\n", len(p.Errors)))
	for i, err := range p.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}
