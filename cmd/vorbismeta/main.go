// Command vorbismeta builds and inspects Vorbis comment headers and codebook
// packets.
//
// Usage:
//
//	vorbismeta comments build --tag TITLE=Song --tag ARTIST=Foo --out tags.bin
//	vorbismeta comments show tags.bin --tag artist
//	vorbismeta codebook pack books.yaml --out books.bin
//	vorbismeta codebook show books.bin --values
//
// Settings come from --config (YAML or JSON); flags override them.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/thesyncim/govorbis/internal/config"
	"github.com/thesyncim/govorbis/internal/logging"
)

var version = "dev"

// app carries state shared by the subcommands once flags are parsed.
type app struct {
	cfg config.Config
	log *logrus.Logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{cfg: config.Default()}

	rootCmd := &cobra.Command{
		Use:          "vorbismeta",
		Short:        "Build and inspect Vorbis comment headers and codebooks",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			if configPath != "" {
				cfg, err := config.Load(configPath)
				if err != nil {
					return err
				}
				a.cfg = cfg
			}
			if f := cmd.Flags().Lookup("log-level"); f != nil && f.Changed {
				a.cfg.LogLevel = f.Value.String()
			}
			if f := cmd.Flags().Lookup("log-format"); f != nil && f.Changed {
				a.cfg.LogFormat = f.Value.String()
			}

			log, err := logging.New(a.cfg, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			a.log = log
			return nil
		},
	}

	rootCmd.PersistentFlags().String("config", "", "settings file (YAML or JSON)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level: debug, info, warn or error")
	rootCmd.PersistentFlags().String("log-format", "text", "log format: text or json")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	}

	rootCmd.AddCommand(newCommentsCmd(a), newCodebookCmd(a), versionCmd)
	return rootCmd
}
