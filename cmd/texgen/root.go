package main

import (
	"io"
	"os"
	"time"

	"github.com/eolymp/go-texgen"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	verbosity int
	output    string

	rootCmd = &cobra.Command{
		Use:   "texgen <manifest>",
		Short: "Render a document manifest to markup",
		Long: `texgen reads a declarative document manifest in YAML or TOML format,
builds the document tree and renders it as indented markup to stdout
or to a file.`,
		Args: cobra.ExactArgs(1),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          generate,
	}
)

func init() {
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG)")
	rootCmd.Flags().StringVarP(&output, "output", "o", "", "Write rendered markup to a file instead of stdout")
}

// setupLogger configures the global logger based on verbosity level
func setupLogger(verbosity int) {
	switch verbosity {
	case 0:
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case 1:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	console := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	log.Logger = zerolog.New(console).With().Timestamp().Logger()
}

func generate(cmd *cobra.Command, args []string) error {
	manifest, err := texgen.DecodeFile(args[0])
	if err != nil {
		log.Error().Err(err).Str("path", args[0]).Msg("Unable to read manifest")
		return err
	}

	doc, err := manifest.Build()
	if err != nil {
		log.Error().Err(err).Str("path", args[0]).Msg("Unable to build document")
		return err
	}

	var sink io.Writer = cmd.OutOrStdout()
	if output != "" {
		file, err := os.Create(output)
		if err != nil {
			log.Error().Err(err).Str("path", output).Msg("Unable to create output file")
			return err
		}

		defer file.Close()
		sink = file
	}

	if err := doc.Render(sink); err != nil {
		log.Error().Err(err).Msg("Unable to render document")
		return err
	}

	log.Info().Str("manifest", args[0]).Msg("Document rendered")
	return nil
}
