package main

import (
	"errors"
	"fmt"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/rpgo/growth-calculator/internal/calculation"
)

// app carries the state shared by every subcommand of one root command.
type app struct {
	cfgFile string
	v       *viper.Viper
	log     *logrus.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New(), log: logrus.New()}

	root := &cobra.Command{
		Use:   "growthcalc",
		Short: "Compound growth projections and savings goals",
		Long: `growthcalc projects how a balance grows with regular contributions and compound
interest, month by month, in nominal and inflation-adjusted terms. It can also solve
for the contribution that reaches a target, or the months needed to get there.`,
		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.initConfig(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "settings file (default is $HOME/.growthcalc.yaml)")
	flags.StringP("loglevel", "l", "warn", "Set log level. Available: debug, info, warn, error, fatal")
	flags.StringP("format", "f", "console", "output format (see 'growthcalc formats')")
	flags.StringP("output-dir", "o", "", "write reports to timestamped files in this directory instead of stdout")
	flags.Int("max-periods", 0, "bound for time-to-goal searches (0 means 1200 months)")
	for _, name := range []string{"loglevel", "format", "output-dir", "max-periods"} {
		_ = a.v.BindPFlag(strings.ReplaceAll(name, "-", "_"), flags.Lookup(name))
	}

	root.AddCommand(
		newProjectCmd(a),
		newGoalCmd(a),
		newExampleCmd(a),
		newFormatsCmd(),
	)
	return root
}

// initConfig reads the settings file and GROWTHCALC_* environment variables, then
// configures logging. Flags win over environment, which wins over the file.
func (a *app) initConfig(cmd *cobra.Command) error {
	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			return fmt.Errorf("failed to find home directory: %w", err)
		}
		a.v.AddConfigPath(home)
		a.v.SetConfigName(".growthcalc")
		a.v.SetConfigType("yaml")
	}

	a.v.SetEnvPrefix("GROWTHCALC")
	a.v.AutomaticEnv()

	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if a.cfgFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read settings: %w", err)
		}
	}

	a.log.SetOutput(cmd.ErrOrStderr())
	if err := setLogLevel(a.log, a.v.GetString("loglevel")); err != nil {
		return err
	}
	if used := a.v.ConfigFileUsed(); used != "" {
		a.log.Debugf("using settings from %s", used)
	}
	return nil
}

func (a *app) engine() *calculation.CalculationEngine {
	engine := calculation.NewCalculationEngineWithLogger(a.log)
	engine.MaxPeriods = a.v.GetInt("max_periods")
	return engine
}
