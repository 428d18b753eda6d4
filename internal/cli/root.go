// Package cli contains the seqtool commands. Each command reads the input
// lines as a lazy sequence, runs one seqs operator over it and writes the
// result to the command's output.
package cli

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"lazyseq/internal/config"
	"lazyseq/internal/logging"
)

const (
	inputFlag     = "input"
	limitFlag     = "limit"
	logLevelFlag  = "log-level"
	logFormatFlag = "log-format"
	envFileFlag   = "env-file"
)

// app is the state shared by the commands of one invocation.
type app struct {
	v   *viper.Viper
	cfg *config.Config
	log zerolog.Logger
}

// NewRootCommand returns the seqtool command tree. Settings come from CLI
// flags, environment variables prefixed with SEQTOOL_, or a .env file (in
// that order).
func NewRootCommand() *cobra.Command {
	a := &app{v: config.NewViper(), log: zerolog.Nop()}
	defaults := config.Default()

	root := &cobra.Command{
		Use:           "seqtool",
		Short:         "Run lazy sequence operators over lines of text",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			envFile, err := cmd.Flags().GetString(envFileFlag)
			if err != nil {
				return err
			}
			if err := config.ReadEnvFile(a.v, envFile); err != nil {
				return err
			}
			cfg, err := config.Load(a.v)
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.log = logging.New(cfg.Log, cmd.ErrOrStderr()).With().
				Str(logging.FieldCommand, cmd.Name()).Logger()
			a.log.Debug().
				Str(logging.FieldInput, cfg.Input).
				Int(limitFlag, cfg.Limit).
				Msg("configuration resolved")
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.StringP(inputFlag, "i", defaults.Input, `file to read lines from, "-" for standard input`)
	flags.Int(limitFlag, defaults.Limit, "write at most this many results, 0 for all")
	flags.String(logLevelFlag, defaults.Log.Level, "log level: trace, debug, info, warn, error or disabled")
	flags.String(logFormatFlag, defaults.Log.Format, "log format: console or json")
	flags.String(envFileFlag, "", "read SEQTOOL_* settings from this file (default .env if present)")

	mustBindPFlag(a.v, config.KeyInput, flags.Lookup(inputFlag))
	mustBindPFlag(a.v, config.KeyLimit, flags.Lookup(limitFlag))
	mustBindPFlag(a.v, config.KeyLogLevel, flags.Lookup(logLevelFlag))
	mustBindPFlag(a.v, config.KeyLogFormat, flags.Lookup(logFormatFlag))

	root.AddCommand(
		newBufferCommand(a),
		newCountByCommand(a),
		newExtremeCommand(a, true),
		newExtremeCommand(a, false),
		newScanCommand(a),
		newIndexCommand(a),
		newPartitionCommand(a),
		newZipCommand(a),
		newFlattenCommand(a),
		newIsEmptyCommand(a),
	)
	return root
}

// done logs how many results a command wrote.
func (a *app) done(emitted int) {
	a.log.Info().Int(logging.FieldEmitted, emitted).Msg("done")
}
