// Package service contains the application use case: turning a subject into
// a list of flashcards.
//
// FlashcardService validates the request, renders the prompt, calls the
// configured generation.Provider exactly once and parses the reply through
// the provider-independent parser in package generation. Unexpected failures
// are wrapped in *FlashcardServiceError; validation errors from package
// domain are returned as-is so the API layer can map them to 400 responses.
package service
