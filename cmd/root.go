package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "matspec",
		Short: "Material specification generator for architectural visualizations",
		Long: `Matspec analyzes architectural visualization images with a vision-capable LLM
and generates professional material specification documents organized by
CSI MasterFormat divisions.

Point it at a directory of renderings plus an optional project brief and it
produces a combined markdown specification, one section per image.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load .env file if present (ignore errors)
			_ = godotenv.Load()
		},
	}

	// Add subcommands
	cmd.AddCommand(newGenerateCmd())
	cmd.AddCommand(newServeCmd())

	return cmd
}
