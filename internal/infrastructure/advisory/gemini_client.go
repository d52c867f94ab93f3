// Package advisory implements the generative advisory client on the Gemini
// API via the google.golang.org/genai SDK.
package advisory

import (
	"context"

	"google.golang.org/genai"

	"scheme-sense.backend/internal/usecases"
)

// GeminiClient implements usecases.AdvisoryClient
type GeminiClient struct {
	client *genai.Client
	model  string
}

// NewGeminiClient creates an advisory client for the given API key and model
func NewGeminiClient(ctx context.Context, apiKey, model string) (*GeminiClient, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}
	return &GeminiClient{client: client, model: model}, nil
}

// GenerateAdvice performs a one-shot content generation with the persona as
// system instruction
func (c *GeminiClient) GenerateAdvice(ctx context.Context, systemInstruction, prompt string) (string, error) {
	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemInstruction, genai.RoleUser),
	})
	if err != nil {
		return "", err
	}
	return resp.Text(), nil
}

// OpenConversation starts a multi-turn chat seeded with the persona
func (c *GeminiClient) OpenConversation(ctx context.Context, systemInstruction string) (usecases.AdvisoryConversation, error) {
	chat, err := c.client.Chats.Create(ctx, c.model, &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemInstruction, genai.RoleUser),
	}, nil)
	if err != nil {
		return nil, err
	}
	return &geminiConversation{chat: chat}, nil
}

type geminiConversation struct {
	chat *genai.Chat
}

// SendMessage streams the model's reply chunk by chunk. The first stream
// error stops delivery; chunks already passed to onChunk are not retracted.
func (g *geminiConversation) SendMessage(ctx context.Context, message string, onChunk func(text string) error) error {
	for resp, err := range g.chat.SendMessageStream(ctx, genai.Part{Text: message}) {
		if err != nil {
			return err
		}
		text := resp.Text()
		if text == "" {
			continue
		}
		if err := onChunk(text); err != nil {
			return err
		}
	}
	return nil
}

// Close releases the conversation. The SDK chat holds no network resources
// of its own, so dropping the reference is enough.
func (g *geminiConversation) Close() {}
