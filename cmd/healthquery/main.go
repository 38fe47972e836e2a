package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/healthquery/cli/internal/config"
	"github.com/healthquery/cli/internal/models"
	"github.com/healthquery/cli/internal/ollama"
	"github.com/healthquery/cli/internal/prompt"
	"github.com/healthquery/cli/internal/summarize"
)

// Version info (set during build)
var (
	Version   = "dev"
	BuildTime = "unknown"
)

const pingTimeout = 2 * time.Second

func main() {
	cfg := config.Default()

	root := &cobra.Command{
		Use:     "healthquery",
		Short:   "Summarize health export files and analyze them with a local LLM",
		Long:    "Scans a directory for health export files (.csv, .gpx, .fit), summarizes each, and streams an analysis from a local Ollama model.",
		Version: fmt.Sprintf("%s (built %s)", Version, BuildTime),
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cfg)
		},
		SilenceUsage: true,
	}

	root.Flags().StringVar(&cfg.Dir, "dir", cfg.Dir, "directory to search for data files")
	root.Flags().StringVar(&cfg.Model, "model", cfg.Model, "Ollama model to use")
	root.Flags().StringVar(&cfg.Query, "query", cfg.Query, "custom question for the LLM")
	root.Flags().StringVar(&cfg.Host, "host", cfg.Host, "Ollama server URL (default $OLLAMA_HOST or "+ollama.DefaultHost+")")
	root.Flags().DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "model request timeout (0 to wait forever)")
	root.Flags().BoolVar(&cfg.FoldCase, "fold-case", cfg.FoldCase, "match file extensions case-insensitively")
	root.Flags().BoolVar(&cfg.ShowPrompt, "show-prompt", cfg.ShowPrompt, "print the assembled prompt before contacting the model")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cfg config.Config) error {
	// Optional .env next to the working directory; absence is fine.
	_ = godotenv.Load()
	cfg.Finalize()

	registry := summarize.NewRegistry()
	files, err := registry.ScanDir(cfg.Dir, cfg.FoldCase)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		fmt.Printf("No .csv, .gpx, or .fit files found in %s.\n", cfg.Dir)
		os.Exit(1)
	}

	var summaries []models.Summary
	for _, f := range files {
		s := registry.ForFile(f)
		if s == nil {
			fmt.Printf("Unsupported file type: %s\n", f)
			continue
		}
		// A malformed file aborts the whole batch; there is no partial mode.
		summary, err := s.Summarize(f)
		if err != nil {
			return err
		}
		summaries = append(summaries, summary)
	}
	if len(summaries) == 0 {
		fmt.Println("No supported files to summarize.")
		os.Exit(1)
	}

	p := prompt.Build(summaries, cfg.Query, time.Now())
	if cfg.ShowPrompt {
		fmt.Println(p)
	}

	streamAnalysis(cfg, p)
	return nil
}

// streamAnalysis sends the prompt and prints fragments as they arrive.
// Model-side failures are logged and swallowed: the summaries were already
// produced, so the run still counts as a success.
func streamAnalysis(cfg config.Config, p string) {
	fmt.Println("Contacting Ollama...")

	client := ollama.New(cfg.Host)
	if !client.Available(pingTimeout) {
		fmt.Printf("Error: Ollama server not reachable at %s\n", cfg.Host)
		return
	}

	ctx := context.Background()
	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	_, err := client.Chat(ctx, cfg.Model, p, func(fragment string) {
		fmt.Print(fragment)
	})
	if err != nil {
		fmt.Printf("\nError: %v\n", err)
		return
	}
	fmt.Println("\nDone.")
}
