// Package cli wires the search agent into the searchagent command.
package cli

import (
	"strings"

	"github.com/mattn/go-colorable"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "SEARCHAGENT"

var (
	Root = &cobra.Command{
		Use:           "searchagent",
		Short:         "Tree search over weighted state spaces",
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	loglevel   = Root.PersistentFlags().String("loglevel", "info", "Console log level (trace, debug, info, warn, error)")
	configfile = Root.PersistentFlags().String("config", "searchagent.yaml", "Configuration file; missing files are ignored")
)

func init() {
	cobra.OnInitialize(func() {
		loadConfiguration(Root)
	})

	Root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		level, err := zerolog.ParseLevel(*loglevel)
		if err != nil {
			log.Error().Msgf("Invalid log level %q, keeping info", *loglevel)
			level = zerolog.InfoLevel
		}
		zerolog.SetGlobalLevel(level)
		return nil
	}

	log.Logger = log.Output(zerolog.ConsoleWriter{
		Out:        colorable.NewColorableStderr(),
		TimeFormat: "15:04:05.000",
	})

	runCmd.RunE = runSearch
	experimentCmd.RunE = runExperiment
	Root.AddCommand(runCmd, experimentCmd)
}

func Execute() error {
	return Root.Execute()
}

func loadConfiguration(cmd *cobra.Command) {
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	viper.SetConfigFile(*configfile)
	if err := viper.ReadInConfig(); err == nil {
		log.Info().Msgf("Using configuration file: %v", viper.ConfigFileUsed())
	} else {
		log.Debug().Msgf("No settings loaded from %v: %v", *configfile, err)
	}

	bindFlags(cmd)
}

// bindFlags applies viper values (config file or environment) to every flag
// the user did not set explicitly.
func bindFlags(cmd *cobra.Command) {
	apply := func(f *pflag.Flag) {
		if f.Changed || !viper.IsSet(f.Name) {
			return
		}
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			sv.Replace(viper.GetStringSlice(f.Name))
		} else {
			f.Value.Set(viper.GetString(f.Name))
		}
	}
	cmd.PersistentFlags().VisitAll(apply)
	cmd.Flags().VisitAll(apply)
	for _, subCommand := range cmd.Commands() {
		bindFlags(subCommand)
	}
}
