package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizforge/internal/play"
	"github.com/abhisek/quizforge/internal/quizgen"
)

var playCmd = &cobra.Command{
	Use:   "play <quiz.json>",
	Short: "Take a generated quiz in the terminal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		content, err := loadQuiz(args[0])
		if err != nil {
			return err
		}

		standings, err := play.Run(content)
		if err != nil {
			return err
		}
		if len(standings) > 0 {
			top := standings[0]
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%.1f)\n", top.Result.Name(), top.Score)
		}
		return nil
	},
}

// loadQuiz reads a quiz document written by `quizforge quiz`.
func loadQuiz(path string) (*quizgen.Content, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read quiz: %w", err)
	}
	content, err := quizgen.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return content, nil
}
