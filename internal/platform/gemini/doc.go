// Package gemini provides an implementation of the generation.Provider
// interface backed by Google's Gemini API.
//
// The adapter sends the system and user prompts through the genai SDK with
// the response MIME type set to application/json and returns the candidate
// text unmodified. Parsing into flashcards is left to the generation package
// so that every provider shares one response contract.
//
// Safety-blocked prompts or candidates surface as generation.ErrContentBlocked,
// API failures as *generation.UpstreamError carrying the HTTP status code.
// Requests are made exactly once; there is no retry.
package gemini
