package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizforge/internal/llm"
	"github.com/abhisek/quizforge/internal/logging"
	"github.com/abhisek/quizforge/internal/quizgen"
	"github.com/abhisek/quizforge/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve quiz and image generation over HTTP",
	Long: `Start the HTTP API:

  POST /api/quizzes   generate a quiz from {title, description, types, questions_count}
  POST /api/image     generate a PNG from {base_type, image_prompt}
  GET  /healthz       liveness

Provider configuration is read from the environment (and .env) and checked
before the listener starts.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		addr, _ := cmd.Flags().GetString("addr")
		if env := os.Getenv("QUIZFORGE_ADDR"); env != "" && !cmd.Flags().Changed("addr") {
			addr = env
		}
		maxInFlight, _ := cmd.Flags().GetInt("max-inflight")
		strict, _ := cmd.Flags().GetBool("strict-counts")

		if err := llm.ConfigFromEnv().Validate(); err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		quizCfg := quizgen.DefaultConfig()
		quizCfg.StrictCounts = strict

		quizzes, err := newQuizService(ctx, s.EventRepo(), quizCfg)
		if err != nil {
			return err
		}
		images, err := newImageService(ctx, s.EventRepo())
		if err != nil {
			return err
		}

		h := server.New(quizzes, images, server.Options{MaxInFlight: maxInFlight})
		logging.Logger().WithField("max_inflight", maxInFlight).Info("starting server")
		return server.ListenAndServe(ctx, addr, h)
	},
}

func init() {
	serveCmd.Flags().String("addr", ":8080", "Listen address (overrides QUIZFORGE_ADDR env var)")
	serveCmd.Flags().Int("max-inflight", 0, "Maximum concurrent generation requests (0 = unlimited)")
	serveCmd.Flags().Bool("strict-counts", false, "Reject quizzes whose question or result count differs from the request")
}
