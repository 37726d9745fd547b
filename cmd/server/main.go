// Package main implements the entry point for the flashcard generation
// server, which turns a subject into question/answer flashcards using a
// configured language model.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "scry-flashgen",
	Short: "Flashcard generation server",
	Long: `scry-flashgen generates question/answer flashcards about a subject
using Ollama, OpenAI or Gemini.

  scry-flashgen                                  Start the server
  scry-flashgen serve                            Start the server
  scry-flashgen generate --subject Go -n 3       Generate flashcards once

Configuration is read from SCRY_* environment variables, a .env file and an
optional config.yaml in the working directory.`,
	Version:      version,
	SilenceUsage: true,
	RunE:         runServe,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
