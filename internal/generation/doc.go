// Package generation holds the provider-independent half of flashcard
// generation: the Provider port that LLM adapters implement, construction of
// the prompt sent to them, and normalization of whatever text a model
// returns into an ordered slice of domain.Flashcard.
//
// Adapters live under internal/platform (ollama, openai, gemini). Each one
// returns the model's raw text; ParseFlashcards is the single place that
// turns that text into flashcards, so every provider answers with the same
// contract.
package generation
