package utils

import (
	"context"
	"errors"
	"net/http"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

const (
	defaultOpenAIModel    = openai.GPT4o
	scheduleMaxTokens     = 1500
	scheduleTemperature   = 0.2
	scheduleClientTimeout = 120 * time.Second
)

// OpenAIGenerationClient completes schedule prompts against the OpenAI chat
// completion endpoint.
type OpenAIGenerationClient struct {
	client *openai.Client
	model  string
}

func NewOpenAIGenerationClient(apiKey, model string) *OpenAIGenerationClient {
	if model == "" {
		model = defaultOpenAIModel
	}

	config := openai.DefaultConfig(apiKey)
	config.HTTPClient = &http.Client{
		Transport: generationTransport,
		Timeout:   scheduleClientTimeout,
	}

	return &OpenAIGenerationClient{
		client: openai.NewClientWithConfig(config),
		model:  model,
	}
}

func (c *OpenAIGenerationClient) CompleteSchedule(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		MaxTokens:   scheduleMaxTokens,
		Temperature: scheduleTemperature,
	})
	if err != nil {
		var apiErr *openai.APIError
		if errors.As(err, &apiErr) {
			return "", &GenerationRequestError{
				StatusCode: apiErr.HTTPStatusCode,
				Body:       apiErr.Message,
			}
		}
		return "", &GenerationTransportError{Err: err}
	}

	if len(resp.Choices) == 0 {
		return "", &MalformedOutputError{Raw: "", Err: errors.New("completion returned no choices")}
	}

	return resp.Choices[0].Message.Content, nil
}
