package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/phrazzld/scry-flashgen/internal/api"
	"github.com/phrazzld/scry-flashgen/internal/config"
	"github.com/phrazzld/scry-flashgen/internal/domain"
	"github.com/phrazzld/scry-flashgen/internal/platform/logger"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate flashcards once and print them as JSON",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		subject, _ := cmd.Flags().GetString("subject")

		var numCards *int
		if cmd.Flags().Changed("num-cards") {
			n, _ := cmd.Flags().GetInt("num-cards")
			numCards = &n
		}

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}

		// stdout carries the result, so logs go to stderr
		log := logger.New(os.Stderr, cfg.Server.LogLevel)

		return runGenerate(cmd.Context(), cfg, log, subject, numCards, cmd.OutOrStdout())
	},
}

func init() {
	generateCmd.Flags().StringP("subject", "s", "", "subject to generate flashcards about")
	generateCmd.Flags().IntP("num-cards", "n", 0, "number of flashcards (default from configuration)")
	rootCmd.AddCommand(generateCmd)
}

// runGenerate performs one generation and writes {"flashcards":[...]} to out.
func runGenerate(
	ctx context.Context,
	cfg *config.Config,
	log *slog.Logger,
	subject string,
	numCards *int,
	out io.Writer,
) error {
	if ctx == nil {
		ctx = context.Background()
	}

	app, err := newApplication(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	req := domain.NewGenerationRequest(subject, numCards, cfg.Generation.DefaultNumCards)
	cards, err := app.flashcardService.GenerateFlashcards(ctx, req)
	if err != nil {
		return errors.New(api.ErrorMessage(err))
	}
	if cards == nil {
		cards = []domain.Flashcard{}
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(api.GenerateFlashcardsResponse{Flashcards: cards})
}
