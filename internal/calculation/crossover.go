package calculation

import (
	"fmt"

	"github.com/rpgo/growth-calculator/internal/domain"
)

// CrossoverResult marks where one projection's balance overtakes another's.
type CrossoverResult struct {
	Period   int     `json:"period"`   // first period at which the leader changed
	Fraction float64 `json:"fraction"` // linear position inside that period, 0..1
	Balance  float64 `json:"balance"`  // interpolated balance where the two lines meet
	Leader   string  `json:"leader"`   // "a" or "b", whichever is ahead after the crossing
}

// FindBalanceCrossover finds the first period at which the nominal balances of a
// and b change order. Series are aligned by index and truncated to the shorter
// one. It returns nil, nil when the order never changes.
func FindBalanceCrossover(a, b []domain.ProjectionPoint) (*CrossoverResult, error) {
	if len(a) == 0 || len(b) == 0 {
		return nil, fmt.Errorf("one or both projections are empty")
	}
	n := len(a)
	if len(b) < n {
		n = len(b)
	}

	lead := sign(a[0].Balance - b[0].Balance)
	for i := 1; i < n; i++ {
		diff := a[i].Balance - b[i].Balance
		s := sign(diff)
		if s == 0 {
			continue
		}
		if lead == 0 {
			lead = s
			continue
		}
		if s == lead {
			continue
		}

		prevDiff := a[i-1].Balance - b[i-1].Balance
		frac := 0.0
		if prevDiff != 0 {
			frac = prevDiff / (prevDiff - diff)
		}
		prevBal := a[i-1].Balance
		leader := "a"
		if s < 0 {
			leader = "b"
		}
		return &CrossoverResult{
			Period:   a[i].Period,
			Fraction: frac,
			Balance:  prevBal + frac*(a[i].Balance-prevBal),
			Leader:   leader,
		}, nil
	}
	return nil, nil
}

func sign(x float64) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
