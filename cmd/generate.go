package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/atelierfield/matspec/internal/config"
	"github.com/atelierfield/matspec/internal/imaging"
	"github.com/atelierfield/matspec/internal/pipeline"
	"github.com/atelierfield/matspec/internal/prompts"
	"github.com/atelierfield/matspec/internal/specgen"
	"github.com/atelierfield/matspec/internal/vision"
	"github.com/spf13/cobra"
)

func newGenerateCmd() *cobra.Command {
	var imagesDir string
	var briefPath string
	var outputDir string
	var sustainability bool
	var alternatives bool
	var provider string
	var model string
	var configPath string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate material specifications from visualization images",
		Long: `Analyzes every image in a directory with a vision-capable LLM, then
generates a material specification document per image, organized by CSI
MasterFormat divisions, and combines them into one markdown file.`,
		Example: `  # Generate specifications for a directory of renderings
  matspec generate --images ./renders --brief ./brief.txt

  # Include sustainability and alternative-material sections
  matspec generate --images ./renders --brief ./brief.txt --sustainability --alternatives

  # Use a local Ollama model instead of the default provider
  matspec generate --images ./renders --provider ollama --model llava:13b`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if provider != "" {
				cfg.Provider = provider
				cfg.Model = config.DefaultModel(provider)
			}
			if model != "" {
				cfg.Model = model
			}
			if outputDir != "" {
				cfg.OutputDir = outputDir
			}

			// Credential check happens before any image is touched
			generator, err := newGenerator(cfg.Provider)
			if err != nil {
				return err
			}

			brief := ""
			if briefPath != "" {
				data, err := os.ReadFile(briefPath)
				if err != nil {
					return fmt.Errorf("brief file not found: %s. Please check the file path", briefPath)
				}
				brief = strings.TrimSpace(string(data))
			}

			images, err := imaging.LoadDir(imagesDir)
			if err != nil {
				return err
			}
			fmt.Printf("Loaded %d image(s) from %s\n", len(images), imagesDir)

			runner := pipeline.NewRunner(
				vision.New(generator, cfg.Model, cfg.Temperature),
				specgen.New(generator, cfg.Model, cfg.Temperature),
			)
			opts := prompts.Options{
				IncludeSustainability: sustainability,
				IncludeAlternatives:   alternatives,
			}

			fmt.Println("Analyzing images...")
			result, err := runner.Run(cmd.Context(), images, brief, opts)

			if result != nil {
				for _, line := range pipeline.SummarizeFailures(result.Analyses) {
					fmt.Fprintln(os.Stderr, line)
				}
				for _, warning := range result.Warnings {
					fmt.Fprintln(os.Stderr, "WARNING: "+warning)
				}
			}

			if err != nil {
				if errors.Is(err, pipeline.ErrNoValidAnalysis) {
					return fmt.Errorf("no images could be analyzed successfully. Please check your images and API key, then try again")
				}
				return err
			}

			fmt.Printf("Generated %d specification(s)\n", len(result.Specifications))

			path, err := pipeline.SaveDocument(result.Document, cfg.OutputDir, result.GeneratedAt)
			if err != nil {
				return err
			}
			fmt.Printf("Specification saved to: %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVar(&imagesDir, "images", "", "Directory containing architectural visualization images (required)")
	cmd.Flags().StringVar(&briefPath, "brief", "", "Path to project brief text file")
	cmd.Flags().StringVar(&outputDir, "output", "", "Output directory for specification files (default: ./output)")
	cmd.Flags().BoolVar(&sustainability, "sustainability", false, "Include sustainability considerations in specifications")
	cmd.Flags().BoolVar(&alternatives, "alternatives", false, "Include alternative material options in specifications")
	cmd.Flags().StringVar(&provider, "provider", "", "LLM provider (anthropic, gemini, or ollama)")
	cmd.Flags().StringVar(&model, "model", "", "Model name (defaults to provider's default)")
	cmd.Flags().StringVar(&configPath, "config", "", "Path to YAML config file")

	_ = cmd.MarkFlagRequired("images")
	return cmd
}
