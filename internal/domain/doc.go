// Package domain contains the core entities of the flashcard generator:
// the generation request a caller submits and the flashcards a language
// model produces for it. Nothing here performs I/O.
package domain
