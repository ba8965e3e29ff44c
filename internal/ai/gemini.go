package ai

import (
	"context"
	"errors"
	"log"

	"google.golang.org/genai"
)

type GeminiClient struct {
	client *genai.Client
	model  string
}

// NewGeminiClient builds a client against the Gemini API backend.
// An empty key is passed through: the SDK rejects it at construction and the
// caller decides how to degrade.
func NewGeminiClient(ctx context.Context, apiKey, model string) (*GeminiClient, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}

	return &GeminiClient{
		client: client,
		model:  model,
	}, nil
}

func (c *GeminiClient) Generate(ctx context.Context, instruction string, input Input) Result {
	var parts []*genai.Part
	if len(input.Image) > 0 {
		parts = append(parts, genai.NewPartFromBytes(input.Image, input.ImageMIME))
	}
	if input.Text != "" {
		parts = append(parts, genai.NewPartFromText(input.Text))
	}

	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}

	cfg := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(instruction, genai.RoleUser),
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.model, contents, cfg)
	if err != nil {
		kind := classify(err)
		log.Printf("[ai] gemini error (kind=%d): %v", kind, err)
		return Result{State: StateError, Kind: kind, Err: err}
	}

	if blocked(resp) {
		log.Printf("[ai] prompt blocked by safety filter")
		return Result{State: StateBlocked}
	}

	text := resp.Text()
	if text == "" {
		log.Printf("[ai] empty response text")
		return Result{State: StateEmpty}
	}

	log.Printf("[ai] raw response: %s", short(text))
	return Result{State: StateSuccess, Text: text}
}

func blocked(resp *genai.GenerateContentResponse) bool {
	if pf := resp.PromptFeedback; pf != nil {
		if pf.BlockReason != "" && pf.BlockReason != genai.BlockedReasonUnspecified {
			return true
		}
	}
	for _, cand := range resp.Candidates {
		if cand.FinishReason == genai.FinishReasonSafety {
			return true
		}
	}
	return false
}

// classify maps provider errors onto the closed kind set. The SDK reports
// failures as APIError with the upstream HTTP status code.
func classify(err error) ErrorKind {
	var apiErr genai.APIError
	if !errors.As(err, &apiErr) {
		return KindUnknown
	}

	switch apiErr.Code {
	case 400:
		return KindInvalidArgument
	case 401, 403:
		return KindUnauthenticated
	case 429:
		return KindRateLimited
	default:
		return KindUnknown
	}
}

func short(s string) string {
	if len(s) > 180 {
		return s[:180] + "..."
	}
	return s
}

// Unavailable is wired in when no API key is configured: the server keeps
// answering webhooks and every analysis degrades to the config-error reply.
type Unavailable struct{}

func (Unavailable) Generate(_ context.Context, _ string, _ Input) Result {
	return Result{
		State: StateError,
		Kind:  KindInvalidArgument,
		Err:   errors.New("gemini client not configured"),
	}
}
