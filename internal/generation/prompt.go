package generation

import (
	"bytes"
	"fmt"
	"os"
	"text/template"

	"github.com/phrazzld/scry-flashgen/internal/domain"
)

// DefaultSystemPrompt is sent as the system message by providers that
// support one.
const DefaultSystemPrompt = "You are a helpful assistant that writes study flashcards. " +
	"You always answer with a single JSON object and nothing else."

// DefaultPromptTemplate asks for exactly .NumCards flashcards about .Subject
// as a bare JSON object. The object form is required by providers that run
// in a JSON-object response mode; ParseFlashcards also accepts bare arrays.
const DefaultPromptTemplate = `Generate {{.NumCards}} flashcards about '{{.Subject}}'. ` +
	`Return a JSON object of the form {"flashcards": [{"question": "What is X?", "answer": "Explanation of X"}]} ` +
	`containing exactly {{.NumCards}} flashcards, each with a "question" and an "answer" field. ` +
	`Return only raw JSON, without formatting it inside triple backticks or as markdown, and without any other text.`

// Prompt is the provider-neutral instruction sent to a language model.
type Prompt struct {
	// System is the system message; providers without one prepend it or drop it
	System string
	// User is the instruction naming the subject and card count
	User string
}

// promptData represents the data passed to the prompt template
type promptData struct {
	Subject  string
	NumCards int
}

// PromptBuilder renders generation requests into prompts.
type PromptBuilder struct {
	tmpl *template.Template
}

// NewPromptBuilder creates a PromptBuilder from the template file at path,
// or from DefaultPromptTemplate when path is empty.
func NewPromptBuilder(path string) (*PromptBuilder, error) {
	content := DefaultPromptTemplate
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to read prompt template from %s: %v",
				ErrInvalidConfig, path, err)
		}
		content = string(raw)
	}

	tmpl, err := template.New("flashcards").Option("missingkey=error").Parse(content)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse prompt template: %v", ErrInvalidConfig, err)
	}

	return &PromptBuilder{tmpl: tmpl}, nil
}

// Build renders the prompt for req. The request is assumed to be valid.
func (b *PromptBuilder) Build(req domain.GenerationRequest) (Prompt, error) {
	var buf bytes.Buffer
	data := promptData{
		Subject:  req.Subject,
		NumCards: req.NumCards,
	}
	if err := b.tmpl.Execute(&buf, data); err != nil {
		return Prompt{}, fmt.Errorf("failed to execute prompt template: %w", err)
	}

	return Prompt{
		System: DefaultSystemPrompt,
		User:   buf.String(),
	}, nil
}
