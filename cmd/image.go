package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizforge/internal/logging"
)

var imageCmd = &cobra.Command{
	Use:   "image",
	Short: "Generate a result illustration",
	Example: `  quizforge image --prompt "Lone Wolf on a moonlit ridge, watercolor" -o wolf.png
  quizforge image --prompt "Curious Cat" --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		prompt, _ := cmd.Flags().GetString("prompt")
		output, _ := cmd.Flags().GetString("output")
		asJSON, _ := cmd.Flags().GetBool("json")

		ctx := logging.NewRequestID(cmd.Context())

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		svc, err := newImageService(ctx, s.EventRepo())
		if err != nil {
			return err
		}

		if asJSON {
			result, err := svc.Generate(ctx, prompt)
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(result)
		}

		data, err := svc.GenerateBinary(ctx, prompt)
		if err != nil {
			return err
		}
		if err := os.WriteFile(output, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", output, err)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %d bytes to %s\n", len(data), output)
		return nil
	},
}

func init() {
	imageCmd.Flags().String("prompt", "", "Illustration prompt (required)")
	imageCmd.Flags().StringP("output", "o", "image.png", "PNG output file")
	imageCmd.Flags().Bool("json", false, "Print all base64 images and the seed as JSON instead of writing a file")
	_ = imageCmd.MarkFlagRequired("prompt")
}
