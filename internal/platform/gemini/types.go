package gemini

import (
	"context"

	"google.golang.org/genai"
)

// Name identifies this provider in logs and errors.
const Name = "gemini"

// contentGenerator is the subset of the genai Models service used by Generator.
type contentGenerator interface {
	GenerateContent(
		ctx context.Context,
		model string,
		contents []*genai.Content,
		config *genai.GenerateContentConfig,
	) (*genai.GenerateContentResponse, error)
}
