package utils

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

const defaultGeminiModel = "gemini-1.5-flash"

// GeminiGenerationClient is the alternate completion provider. Gemini can be
// told to answer with a JSON MIME type, which makes fenced replies rarer but
// not impossible; the sanitizer still runs downstream.
type GeminiGenerationClient struct {
	client *genai.Client
	model  string
}

func NewGeminiGenerationClient(apiKey, model string) (*GeminiGenerationClient, error) {
	if model == "" {
		model = defaultGeminiModel
	}

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiGenerationClient{
		client: client,
		model:  model,
	}, nil
}

func (c *GeminiGenerationClient) CompleteSchedule(ctx context.Context, prompt string) (string, error) {
	m := c.client.GenerativeModel(c.model)
	m.ResponseMIMEType = "application/json"
	m.SetTemperature(scheduleTemperature)
	m.SetMaxOutputTokens(scheduleMaxTokens)

	resp, err := m.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", wrapGeminiError(err)
	}

	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", &MalformedOutputError{Raw: "", Err: errors.New("no content generated")}
	}

	return fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0]), nil
}

// wrapGeminiError keeps the two failure classes apart: a non-success API
// status becomes a GenerationRequestError carrying the status code and body,
// everything else stays a transport failure.
func wrapGeminiError(err error) error {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		return &GenerationRequestError{StatusCode: apiErr.Code, Body: apiErr.Message}
	}
	return &GenerationTransportError{Err: err}
}

func (c *GeminiGenerationClient) Close() error {
	return c.client.Close()
}
