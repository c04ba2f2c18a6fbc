package gemini

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/avast/retry-go/v4"
	"google.golang.org/genai"
)

const DefaultModel = "gemini-2.0-flash"

type Config struct {
	APIKey string
	Model  string
	// Instruction is sent alongside audio when transcribing.
	Instruction string
}

type Client struct {
	client      *genai.Client
	model       string
	instruction string
}

func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}
	return &Client{
		client:      client,
		model:       model,
		instruction: cfg.Instruction,
	}, nil
}

func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	result, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), nil)
	if err != nil {
		return "", classify(err)
	}

	text := result.Text()
	if strings.TrimSpace(text) == "" {
		return "", errors.New("gemini returned an empty response")
	}
	return text, nil
}

// Transcribe sends the WAV file inline together with the instruction.
func (c *Client) Transcribe(ctx context.Context, wavPath string) (string, error) {
	data, err := os.ReadFile(wavPath)
	if err != nil {
		return "", retry.Unrecoverable(fmt.Errorf("failed to read audio: %w", err))
	}

	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromText(c.instruction),
			genai.NewPartFromBytes(data, "audio/wav"),
		}, genai.RoleUser),
	}

	result, err := c.client.Models.GenerateContent(ctx, c.model, contents, nil)
	if err != nil {
		return "", classify(err)
	}
	return strings.TrimSpace(result.Text()), nil
}

// classify marks client errors other than rate limiting as not worth retrying.
func classify(err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		wrapped := fmt.Errorf("gemini error (status %d): %s", apiErr.Code, apiErr.Message)
		if apiErr.Code >= 400 && apiErr.Code < 500 && apiErr.Code != http.StatusTooManyRequests {
			return retry.Unrecoverable(wrapped)
		}
		return wrapped
	}
	return fmt.Errorf("gemini request failed: %w", err)
}
