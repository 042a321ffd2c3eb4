package httpclient

import (
	"net/http"
	"testing"
	"time"
)

func TestParseOpenAIHeaders(t *testing.T) {
	headers := http.Header{}
	headers.Set("Retry-After", "2")
	headers.Set("x-ratelimit-reset-tokens", "6m0s")
	headers.Set("x-ratelimit-remaining-requests", "59")
	headers.Set("x-ratelimit-remaining-tokens", "149000")

	info := ParseOpenAIHeaders(headers)

	if info.RetryAfter != 2*time.Second {
		t.Errorf("RetryAfter = %v, want 2s", info.RetryAfter)
	}
	if info.RequestsRemaining != 59 {
		t.Errorf("RequestsRemaining = %d, want 59", info.RequestsRemaining)
	}
	if info.TokensRemaining != 149000 {
		t.Errorf("TokensRemaining = %d, want 149000", info.TokensRemaining)
	}

	// Reset headers carry duration strings, resolved against the clock
	want := time.Now().Add(6 * time.Minute).Unix()
	if info.ResetTime < want-2 || info.ResetTime > want+2 {
		t.Errorf("ResetTime = %d, want about %d (now + 6m)", info.ResetTime, want)
	}
}

func TestParseOpenAIHeaders_FractionalReset(t *testing.T) {
	headers := http.Header{}
	headers.Set("x-ratelimit-reset-requests", "1m32.334s")

	info := ParseOpenAIHeaders(headers)

	want := time.Now().Add(92334 * time.Millisecond).Unix()
	if info.ResetTime < want-2 || info.ResetTime > want+2 {
		t.Errorf("ResetTime = %d, want about %d", info.ResetTime, want)
	}
}

func TestParseOpenAIHeaders_MalformedReset(t *testing.T) {
	headers := http.Header{}
	headers.Set("x-ratelimit-reset-tokens", "soon")

	info := ParseOpenAIHeaders(headers)
	if info.ResetTime != 0 {
		t.Errorf("ResetTime = %d, want 0 for an unparseable header", info.ResetTime)
	}
}

func TestParseAnthropicHeaders(t *testing.T) {
	reset := time.Now().Add(30 * time.Second).UTC().Format(time.RFC3339)

	headers := http.Header{}
	headers.Set("retry-after", "5")
	headers.Set("anthropic-ratelimit-requests-reset", reset)
	headers.Set("anthropic-ratelimit-requests-remaining", "40")
	headers.Set("anthropic-ratelimit-input-tokens-remaining", "20000")

	info := ParseAnthropicHeaders(headers)

	if info.RetryAfter != 5*time.Second {
		t.Errorf("RetryAfter = %v, want 5s", info.RetryAfter)
	}
	if info.RequestsRemaining != 40 {
		t.Errorf("RequestsRemaining = %d, want 40", info.RequestsRemaining)
	}
	if info.TokensRemaining != 20000 {
		t.Errorf("TokensRemaining = %d, want 20000", info.TokensRemaining)
	}

	wantReset, _ := time.Parse(time.RFC3339, reset)
	if info.ResetTime != wantReset.Unix() {
		t.Errorf("ResetTime = %d, want %d", info.ResetTime, wantReset.Unix())
	}
}
