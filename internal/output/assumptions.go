package output

// DefaultAssumptions lists key modeling assumptions rendered when a comparison carries none.
var DefaultAssumptions = []string{
	"Periods are months; annual rates are converted geometrically",
	"Growth is applied before each period's contribution",
	"Real values are deflated by cumulative monthly inflation",
}

func assumptionsFor(assumptions []string) []string {
	if len(assumptions) == 0 {
		return DefaultAssumptions
	}
	return assumptions
}
