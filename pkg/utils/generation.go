package utils

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"
)

// GenerationClientInterface is the single call the schedule engine makes to
// the external generative service. Implementations must be safe for
// concurrent use; retry policy belongs to the caller.
type GenerationClientInterface interface {
	CompleteSchedule(ctx context.Context, prompt string) (string, error)
}

// One pooled transport shared by every generation call. Timeouts are
// per-call: a slow completion stalls only the request that issued it.
var generationTransport = &http.Transport{
	DialContext: (&net.Dialer{
		Timeout: 30 * time.Second,
	}).DialContext,
	TLSHandshakeTimeout:   30 * time.Second,
	ResponseHeaderTimeout: 60 * time.Second,
	MaxIdleConns:          100,
	MaxIdleConnsPerHost:   10,
	IdleConnTimeout:       90 * time.Second,
}

// NewGenerationClient creates a completion client for the configured
// provider.
func NewGenerationClient(provider, apiKey, model string) (GenerationClientInterface, error) {
	switch strings.ToLower(provider) {
	case "openai":
		return NewOpenAIGenerationClient(apiKey, model), nil
	case "gemini":
		return NewGeminiGenerationClient(apiKey, model)
	default:
		return nil, fmt.Errorf("unsupported schedule provider: %s. Use 'openai' or 'gemini'", provider)
	}
}
