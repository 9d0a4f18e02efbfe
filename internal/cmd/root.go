package cmd

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	mnemonic "github.com/akoken/mnemonic-generator"
)

// envConfig carries defaults for flags that were not set explicitly. A .env
// file in the working directory is honored, matching how the rest of the
// tooling loads its environment.
type envConfig struct {
	Separator string `env:"MNEMONIC_SEPARATOR" envDefault:"_"`
	Count     int    `env:"MNEMONIC_COUNT" envDefault:"1"`
}

func loadEnvConfig() (envConfig, error) {
	// The .env file is optional.
	_ = godotenv.Load()

	var cfg envConfig
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}

// NewRootCmd creates the mnemonic command.
func NewRootCmd() *cobra.Command {
	var (
		separator string
		count     int
		minimal   bool
		left      []string
		right     []string
	)

	rootCmd := &cobra.Command{
		Use:           "mnemonic",
		Short:         "Generate human-memorable two-word labels",
		Long:          "mnemonic prints random adjective-surname labels such as \"focused_turing\",\nsuitable for naming container instances, sessions, or runs.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadEnvConfig()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("separator") {
				separator = cfg.Separator
			}
			if !cmd.Flags().Changed("count") {
				count = cfg.Count
			}
			if count < 1 {
				return fmt.Errorf("count must be at least 1, got %d", count)
			}

			g, err := newGenerator(minimal, left, right)
			if err != nil {
				return err
			}

			for i := 0; i < count; i++ {
				name, err := g.GenerateWithSeparator(separator)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}

	rootCmd.Flags().StringVarP(&separator, "separator", "s", "_", "separator between the two words")
	rootCmd.Flags().IntVarP(&count, "count", "n", 1, "number of labels to print")
	rootCmd.Flags().BoolVar(&minimal, "minimal", false, "use the tiny preset word bank")
	rootCmd.Flags().StringSliceVar(&left, "left", nil, "replace the left (adjective) word bank")
	rootCmd.Flags().StringSliceVar(&right, "right", nil, "replace the right (name) word bank")

	return rootCmd
}

// newGenerator picks the word banks for this invocation. Supplying either
// custom bank replaces both: mixing a custom left bank with the built-in
// right bank would produce labels nobody asked for.
func newGenerator(minimal bool, left, right []string) (*mnemonic.Generator, error) {
	custom := len(left) > 0 || len(right) > 0
	if custom && minimal {
		return nil, fmt.Errorf("--minimal cannot be combined with --left/--right")
	}
	if custom {
		return mnemonic.NewWithWords(left, right), nil
	}
	if minimal {
		return mnemonic.NewMinimal(), nil
	}
	return mnemonic.New(), nil
}
