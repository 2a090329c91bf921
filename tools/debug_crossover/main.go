package main

import (
	"fmt"
	"os"

	calc "github.com/rpgo/growth-calculator/internal/calculation"
	"github.com/rpgo/growth-calculator/internal/config"
	"github.com/rpgo/growth-calculator/pkg/dateutil"
	"github.com/shopspring/decimal"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("usage: debug_crossover <config-file>")
		return
	}
	f := os.Args[1]
	p := config.NewInputParser()
	cfg, err := p.LoadFromFile(f)
	if err != nil {
		panic(err)
	}
	engine := calc.NewCalculationEngine()
	res, err := engine.RunScenarios(cfg)
	if err != nil {
		panic(err)
	}
	if len(res.Scenarios) < 2 {
		fmt.Println("need at least two scenarios")
		return
	}

	a := res.Scenarios[0]
	b := res.Scenarios[1]
	n := len(a.Projection.Points)
	if len(b.Projection.Points) < n {
		n = len(b.Projection.Points)
	}

	fmt.Printf("Period,Label,%s,%s,Diff\n", a.Name, b.Name)
	for i := 0; i < n; i++ {
		pa := a.Projection.Points[i]
		pb := b.Projection.Points[i]
		diff := decimal.NewFromFloat(pa.Balance).Sub(decimal.NewFromFloat(pb.Balance))
		fmt.Printf("%d,%s,%.2f,%.2f,%s\n", pa.Period, dateutil.PeriodLabel(a.StartDate, pa.Period), pa.Balance, pb.Balance, diff.StringFixed(2))
	}

	cross, err := calc.FindBalanceCrossover(a.Projection.Points, b.Projection.Points)
	fmt.Printf("\nCrossover: %+v, err=%v\n", cross, err)
}
