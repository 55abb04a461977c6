package puzzle

import (
	uuid "github.com/satori/go.uuid"

	"github.com/katalvlaran/trafficflow/flow"
	"github.com/katalvlaran/trafficflow/metrics"
)

const methodGrade = "Grade"

// Verdict is the outcome of grading one answer.
type Verdict struct {
	RoundID  uuid.UUID
	Answer   int64
	Expected int64
	Correct  bool
	Runs     []flow.Run
}

// Grade computes the maximum traffic of round with flow.Compare and checks
// answer against it. A negative answer is graded wrong, never rejected.
//
// Solver divergence is returned as an error wrapping flow.ErrDivergence and no
// verdict is produced; it is never counted as a wrong answer.
func Grade(round *Round, answer int64, opts flow.CompareOptions) (*Verdict, error) {
	if round == nil {
		return nil, ErrNilRound
	}
	g, err := round.Graph()
	if err != nil {
		return nil, err
	}

	cmp, err := flow.Compare(g, round.Source, round.Sink, opts)
	if err != nil {
		return nil, puzzleErrorf(methodGrade, "round %s: %w", round.ID, err)
	}

	v := &Verdict{
		RoundID:  round.ID,
		Answer:   answer,
		Expected: cmp.MaxFlow,
		Correct:  answer == cmp.MaxFlow,
		Runs:     cmp.Runs,
	}
	metrics.UpdateGrade(v.Correct)

	return v, nil
}
