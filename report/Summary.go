package report

import (
	"fmt"

	"github.com/samuelfneumann/goalvshole/experiment"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary holds aggregate statistics of a training run
type Summary struct {
	experiment.Result
	MeanReturn float64
	StdReturn  float64
	BestReturn float64
}

// Summarize computes the Summary of a run from its result and the
// returns of its finished episodes
func Summarize(r experiment.Result, returns []float64) Summary {
	s := Summary{Result: r}
	switch len(returns) {
	case 0:
	case 1:
		s.MeanReturn, s.BestReturn = returns[0], returns[0]
	default:
		s.MeanReturn, s.StdReturn = stat.MeanStdDev(returns, nil)
		s.BestReturn = floats.Max(returns)
	}
	return s
}

func (s Summary) String() string {
	str := "Episodes: %d  |  Wins: %d (%.1f%%)  |  Losses: %d  |  " +
		"Truncated: %d  |  Return: %.2f ± %.2f (best %.2f)  |  ε: %.4f"
	return fmt.Sprintf(str, s.Episodes, s.Wins, 100*s.WinRate(), s.Losses,
		s.Truncations, s.MeanReturn, s.StdReturn, s.BestReturn, s.Epsilon)
}
