package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizforge/internal/play"
)

var previewCmd = &cobra.Command{
	Use:   "preview <quiz.json>",
	Short: "Print a quiz file with its weights and results",
	Long: `Render every question with its per-type weights and every result with its
image prompt. Useful for reviewing generated quizzes before publishing.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		width, _ := cmd.Flags().GetInt("width")

		content, err := loadQuiz(args[0])
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), play.RenderPreview(content, width))
		return nil
	},
}

func init() {
	previewCmd.Flags().Int("width", 100, "Render width in columns")
}
