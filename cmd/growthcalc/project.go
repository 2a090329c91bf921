package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rpgo/growth-calculator/internal/config"
	"github.com/rpgo/growth-calculator/internal/domain"
	"github.com/rpgo/growth-calculator/internal/output"
)

func newProjectCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "project [input.yaml]",
		Short: "Project every scenario in an input file",
		Long: `Loads scenarios from a YAML input file, projects each one month by month and
answers any goals they define. The input file can also come from GROWTHCALC_INPUT.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := a.v.GetString("input")
			if len(args) == 1 {
				input = args[0]
			}
			if input == "" {
				return fmt.Errorf("no input file: pass one as an argument or set GROWTHCALC_INPUT")
			}

			cfg, err := config.NewInputParser().LoadFromFile(input)
			if err != nil {
				return err
			}
			a.log.Infof("loaded %d scenario(s) from %s", len(cfg.Scenarios), input)

			results, err := a.engine().RunScenariosContext(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			return a.emit(cmd, results)
		},
	}
}

// emit writes results in the configured format, to stdout or to files under output_dir.
func (a *app) emit(cmd *cobra.Command, results *domain.ScenarioComparison) error {
	format := a.v.GetString("format")
	dir := a.v.GetString("output_dir")
	if dir == "" {
		return output.GenerateReport(results, format, cmd.OutOrStdout())
	}

	files, err := output.SaveReport(results, format, dir)
	if err != nil {
		return err
	}
	for _, f := range files {
		a.log.Infof("report written to %s", f)
		fmt.Fprintln(cmd.OutOrStdout(), f)
	}
	return nil
}
