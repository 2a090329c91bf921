package calculation

import (
	"context"
	"fmt"

	"github.com/rpgo/growth-calculator/internal/domain"
)

// CalculationEngine runs configured scenarios through the projection and goal
// solvers. It keeps no state between calls and is safe for concurrent use.
type CalculationEngine struct {
	Logger Logger

	// MaxPeriods bounds time-to-goal searches for goals that do not set their own.
	// Zero means domain.DefaultMaxPeriods.
	MaxPeriods int
}

// NewCalculationEngine creates a new calculation engine with a no-op logger
func NewCalculationEngine() *CalculationEngine {
	return &CalculationEngine{Logger: NopLogger{}}
}

// NewCalculationEngineWithLogger creates a calculation engine that logs to logger
func NewCalculationEngineWithLogger(logger Logger) *CalculationEngine {
	if logger == nil {
		logger = NopLogger{}
	}
	return &CalculationEngine{Logger: logger}
}

func (ce *CalculationEngine) logger() Logger {
	if ce.Logger == nil {
		return NopLogger{}
	}
	return ce.Logger
}

// RunScenario projects one scenario and answers its goal, if any.
func (ce *CalculationEngine) RunScenario(ctx context.Context, scenario *domain.Scenario) (*domain.ScenarioSummary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	log := ce.logger()

	params := scenario.Params()
	log.Debugf("scenario %q: params %+v", scenario.Name, params)

	projection := Project(params)
	log.Infof("scenario %q: %d periods, final balance %.2f, contributed %.2f",
		scenario.Name, projection.Periods(), projection.FinalBalance, projection.FinalContributed)

	summary := &domain.ScenarioSummary{
		Name:          scenario.Name,
		Params:        params,
		StartDate:     scenario.StartDate,
		Projection:    projection,
		PassiveIncome: PassiveIncome(projection.FinalBalance, scenario.PassiveYieldPercent.InexactFloat64()),
	}

	if query := scenario.Goal.Query(); query != nil {
		if query.MaxPeriods <= 0 {
			query.MaxPeriods = ce.MaxPeriods
		}
		goal := SolveGoal(params, *query)
		if query.Mode == domain.GoalModeContribution && projection.FinalBalance >= query.Target {
			// the current plan already gets there
			goal.AlreadyMet = true
		}
		if !goal.Reachable {
			log.Warnf("scenario %q: target %.2f unreachable within %d periods", scenario.Name, query.Target, effectiveMaxPeriods(query.MaxPeriods))
		}
		summary.Goal = &goal
	}

	return summary, nil
}

// RunScenarios runs every scenario in config, in order.
func (ce *CalculationEngine) RunScenarios(config *domain.Configuration) (*domain.ScenarioComparison, error) {
	return ce.RunScenariosContext(context.Background(), config)
}

// RunScenariosContext is RunScenarios with cancellation checked between scenarios.
func (ce *CalculationEngine) RunScenariosContext(ctx context.Context, config *domain.Configuration) (*domain.ScenarioComparison, error) {
	if config == nil || len(config.Scenarios) == 0 {
		return nil, fmt.Errorf("no scenarios to run")
	}

	scenarios := make([]domain.ScenarioSummary, len(config.Scenarios))
	for i := range config.Scenarios {
		summary, err := ce.RunScenario(ctx, &config.Scenarios[i])
		if err != nil {
			return nil, fmt.Errorf("RunScenario %q failed: %w", config.Scenarios[i].Name, err)
		}
		scenarios[i] = *summary
	}

	return &domain.ScenarioComparison{
		GeneratedAt: nowFunc(),
		Scenarios:   scenarios,
		Assumptions: config.GenerateAssumptions(),
	}, nil
}

func effectiveMaxPeriods(n int) int {
	if n <= 0 {
		return domain.DefaultMaxPeriods
	}
	return n
}
