package llm

import (
	"context"
	"strings"

	vertexgenai "cloud.google.com/go/vertexai/genai"
)

type VertexGemini struct {
	client *vertexgenai.Client
	model  *vertexgenai.GenerativeModel
}

func NewVertexGemini(ctx context.Context, projectID, location, modelName string) (*VertexGemini, error) {
	c, err := vertexgenai.NewClient(ctx, projectID, location)
	if err != nil {
		return nil, err
	}

	if modelName == "" {
		modelName = "gemini-1.5-pro"
	}

	m := c.GenerativeModel(modelName)
	m.SetTemperature(0.7)
	m.SetTopP(0.8)
	m.SetTopK(40)
	m.SetMaxOutputTokens(1000)

	return &VertexGemini{client: c, model: m}, nil
}

func (v *VertexGemini) Close() error { return v.client.Close() }

func (v *VertexGemini) OpenChat(ctx context.Context) (Chat, error) {
	return &vertexChat{cs: v.model.StartChat()}, nil
}

type vertexChat struct {
	cs *vertexgenai.ChatSession
}

func (c *vertexChat) Send(ctx context.Context, message string) (string, error) {
	resp, err := c.cs.SendMessage(ctx, vertexgenai.Text(message))
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if t, ok := part.(vertexgenai.Text); ok {
				b.WriteString(string(t))
			}
		}
	}
	return strings.TrimSpace(b.String()), nil
}
