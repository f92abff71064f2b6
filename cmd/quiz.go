package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizforge/internal/logging"
	"github.com/abhisek/quizforge/internal/quizgen"
)

var quizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Generate a personality quiz",
	Example: `  quizforge quiz --title Animals --description "Which animal are you?" \
    --type Wolf --type Cat --type Owl --questions 10 -o animals.json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		title, _ := cmd.Flags().GetString("title")
		description, _ := cmd.Flags().GetString("description")
		types, _ := cmd.Flags().GetStringArray("type")
		questions, _ := cmd.Flags().GetInt("questions")
		output, _ := cmd.Flags().GetString("output")
		strict, _ := cmd.Flags().GetBool("strict-counts")

		ctx := logging.NewRequestID(cmd.Context())

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		cfg := quizgen.DefaultConfig()
		cfg.StrictCounts = strict
		svc, err := newQuizService(ctx, s.EventRepo(), cfg)
		if err != nil {
			return err
		}

		content, err := svc.Generate(ctx, quizgen.Spec{
			Title:          title,
			Description:    description,
			Types:          types,
			QuestionsCount: questions,
		})
		if err != nil {
			return err
		}

		data, err := json.MarshalIndent(content, "", "  ")
		if err != nil {
			return fmt.Errorf("encode quiz: %w", err)
		}
		data = append(data, '\n')

		if output == "" || output == "-" {
			_, err = cmd.OutOrStdout().Write(data)
			return err
		}
		if err := os.WriteFile(output, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", output, err)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %d questions and %d results to %s\n",
			len(content.QuizElements), len(content.QuizResults), output)
		return nil
	},
}

func init() {
	quizCmd.Flags().String("title", "", "Quiz title (required)")
	quizCmd.Flags().String("description", "", "Quiz description")
	quizCmd.Flags().StringArray("type", nil, "Archetype label; repeat for each type (required)")
	quizCmd.Flags().IntP("questions", "n", 10, "Number of questions")
	quizCmd.Flags().StringP("output", "o", "", "Write JSON to file instead of stdout")
	quizCmd.Flags().Bool("strict-counts", false, "Reject output whose question or result count differs from the request")
	_ = quizCmd.MarkFlagRequired("title")
	_ = quizCmd.MarkFlagRequired("type")
}
