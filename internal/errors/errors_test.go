package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestWithSuggestionRoundTrip(t *testing.T) {
	base := stderrors.New("boom")
	err := WithSuggestion(base, "try again")

	if err.Error() != "boom" {
		t.Errorf("Error() = %q, want boom", err.Error())
	}
	if !stderrors.Is(err, base) {
		t.Error("wrapped error lost its cause")
	}
	if got := GetSuggestion(err); got != "try again" {
		t.Errorf("GetSuggestion = %q, want explicit suggestion", got)
	}
}

func TestGetSuggestionForSentinels(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{ErrNoAPIKey, "strum config init"},
		{ErrQuotaExceeded, "quota"},
		{ErrResolverMissing, "yt-dlp"},
		{ErrVideoNotPlayable, "another result"},
		{ErrRateLimited, "Wait a moment"},
		{ErrNetworkError, "internet connection"},
		{ErrConfigNotFound, "strum config init"},
	}
	for _, tt := range tests {
		got := GetSuggestion(tt.err)
		if !strings.Contains(got, tt.want) {
			t.Errorf("GetSuggestion(%v) = %q, want substring %q", tt.err, got, tt.want)
		}
	}
}

func TestGetSuggestionMatchesWrappedAndStringy(t *testing.T) {
	wrapped := fmt.Errorf("search failed: %w", ErrQuotaExceeded)
	if got := GetSuggestion(wrapped); !strings.Contains(got, "quota") {
		t.Errorf("GetSuggestion(wrapped) = %q, want quota hint", got)
	}

	stringy := stderrors.New("googleapi: Error 403: quotaExceeded")
	if got := GetSuggestion(stringy); !strings.Contains(got, "quota") {
		t.Errorf("GetSuggestion(stringy) = %q, want quota hint", got)
	}

	if got := GetSuggestion(stderrors.New("something novel")); got != "" {
		t.Errorf("GetSuggestion(unknown) = %q, want empty", got)
	}
}

func TestFormat(t *testing.T) {
	if got := Format(nil); got != "" {
		t.Errorf("Format(nil) = %q, want empty", got)
	}

	got := Format(ErrNoAPIKey)
	if !strings.HasPrefix(got, "Error: ") || !strings.Contains(got, "Suggestion:") {
		t.Errorf("Format = %q, want error plus suggestion", got)
	}

	plain := Format(stderrors.New("something novel"))
	if strings.Contains(plain, "Suggestion:") {
		t.Errorf("Format without suggestion = %q, want no suggestion block", plain)
	}
}

func TestPartialResult(t *testing.T) {
	var p PartialResult[[]string]
	if p.HasErrors() {
		t.Error("fresh result reports errors")
	}
	p.AddError(nil)
	if p.HasErrors() {
		t.Error("AddError(nil) recorded an error")
	}
	p.AddError(stderrors.New("one"))
	p.AddError(stderrors.New("two"))
	summary := p.ErrorSummary()
	if !strings.Contains(summary, "2 errors") || !strings.Contains(summary, "one") {
		t.Errorf("ErrorSummary = %q", summary)
	}
}
