package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpgo/growth-calculator/internal/config"
	"github.com/rpgo/growth-calculator/internal/domain"
	"github.com/rpgo/growth-calculator/internal/output"
)

// run executes the CLI in-process with an isolated settings file.
func run(t *testing.T, settings string, args ...string) (string, string, error) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte(settings), 0644))

	var stdout, stderr bytes.Buffer
	root := newRootCmd()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(append([]string{"--config", path}, args...))
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func writeExample(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenarios.yaml")
	require.NoError(t, output.SaveConfiguration(config.NewInputParser().CreateExampleConfiguration(), path))
	return path
}

func TestFormatsCommand(t *testing.T) {
	out, _, err := run(t, "", "formats")
	require.NoError(t, err)
	assert.Contains(t, out, "  detailed-csv\n")
	assert.Contains(t, out, "  pdf\n")
	assert.Contains(t, out, "yearly")
}

func TestExampleCommandStdout(t *testing.T) {
	out, _, err := run(t, "", "example")
	require.NoError(t, err)

	cfg, err := config.NewInputParser().Load([]byte(out))
	require.NoError(t, err)
	assert.Len(t, cfg.Scenarios, 2)
	assert.Equal(t, 60, cfg.Scenarios[0].Horizon())
}

func TestExampleCommandFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "example.yaml")
	_, _, err := run(t, "", "example", path)
	require.NoError(t, err)

	cfg, err := config.NewInputParser().LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, domain.GoalModePeriods, cfg.Scenarios[1].Goal.Mode)
}

func TestProjectCommandConsole(t *testing.T) {
	out, _, err := run(t, "", "project", writeExample(t))
	require.NoError(t, err)
	assert.Contains(t, out, "Monthly 500 at 12%")
	assert.Contains(t, out, "Goal of $500,000.00 (today's money) needs $")
	assert.Contains(t, out, "Quarterly 1500 until 500k")
}

func TestProjectCommandCSV(t *testing.T) {
	out, _, err := run(t, "", "project", writeExample(t), "--format", "csv")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, 3)
}

func TestProjectCommandOutputDir(t *testing.T) {
	dir := t.TempDir()
	out, _, err := run(t, "", "project", writeExample(t), "--format", "all", "--output-dir", dir)
	require.NoError(t, err)

	files := strings.Fields(out)
	require.Len(t, files, 2)
	for _, f := range files {
		assert.FileExists(t, f)
		assert.Equal(t, dir, filepath.Dir(f))
	}
}

func TestProjectCommandInputFromEnv(t *testing.T) {
	t.Setenv("GROWTHCALC_INPUT", writeExample(t))
	t.Setenv("GROWTHCALC_FORMAT", "json")

	out, _, err := run(t, "", "project")
	require.NoError(t, err)

	var results domain.ScenarioComparison
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	assert.Len(t, results.Scenarios, 2)
}

func TestProjectCommandFormatFromSettings(t *testing.T) {
	out, _, err := run(t, "format: detailed-csv\n", "project", writeExample(t))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "Scenario,Period,Label"))
}

func TestProjectCommandErrors(t *testing.T) {
	_, _, err := run(t, "", "project")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no input file")

	_, _, err = run(t, "", "project", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read file")

	_, _, err = run(t, "", "project", writeExample(t), "--format", "xml")
	require.Error(t, err)
	assert.True(t, errors.Is(err, output.ErrUnsupportedFormat))
}

func TestGoalCommandPeriods(t *testing.T) {
	out, _, err := run(t, "", "goal",
		"--contribution", "100", "--periods", "12", "--target", "1000", "--mode", "periods")
	require.NoError(t, err)
	assert.Contains(t, out, "Goal of $1,000.00 reached after 10 months (0.8 years).")
}

func TestGoalCommandUnreachableLogsWarning(t *testing.T) {
	out, stderr, err := run(t, "", "goal",
		"--initial", "10", "--periods", "12", "--target", "1000", "--mode", "periods", "--max-periods", "24")
	require.NoError(t, err)
	assert.Contains(t, out, "unreachable within 24 months")
	assert.Contains(t, stderr, "unreachable")
}

func TestGoalCommandExactAmounts(t *testing.T) {
	out, _, err := run(t, "", "goal",
		"--contribution", "0.10", "--periods", "3", "--target", "0.60", "--mode", "periods")
	require.NoError(t, err)
	assert.Contains(t, out, "Goal of $0.60 reached after 6 months (0.5 years).")
}

func TestGoalCommandContribution(t *testing.T) {
	out, _, err := run(t, "", "goal",
		"--initial", "0", "--rate", "0", "--periods", "10", "--target", "1000", "--format", "csv")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[1], "contribution,1000.00,100.00,")
}

func TestGoalCommandValidation(t *testing.T) {
	_, _, err := run(t, "", "goal", "--periods", "12", "--target", "1000", "--mode", "forever")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid scenario")

	_, _, err = run(t, "", "goal", "--periods", "12", "--target", "lots")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `--target: "lots" is not an amount`)

	_, _, err = run(t, "", "goal", "--periods", "12", "--target", "1000", "--initial=-5")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "initial balance cannot be negative")

	_, _, err = run(t, "", "goal", "--periods", "12")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "target")
}

func TestLogLevelValidation(t *testing.T) {
	_, _, err := run(t, "", "formats", "--loglevel", "loud")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad log level")

	_, stderr, err := run(t, "loglevel: debug\n", "project", writeExample(t))
	require.NoError(t, err)
	assert.Contains(t, stderr, "using settings from")
}

func TestMissingExplicitSettingsFile(t *testing.T) {
	root := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"--config", filepath.Join(t.TempDir(), "nope.yaml"), "formats"})
	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read settings")
}
