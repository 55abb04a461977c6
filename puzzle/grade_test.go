package puzzle_test

import (
	"testing"

	"github.com/panjf2000/ants/v2"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/trafficflow/flow"
	"github.com/katalvlaran/trafficflow/puzzle"
)

type GradeSuite struct {
	suite.Suite
	round *puzzle.Round
}

func (s *GradeSuite) SetupTest() {
	r, err := puzzle.NewRound("A", "T", classicRoads)
	s.Require().NoError(err)
	s.round = r
}

func (s *GradeSuite) TestCorrectAnswer() {
	v, err := puzzle.Grade(s.round, classicMaxFlow, flow.DefaultCompareOptions())
	s.Require().NoError(err)
	s.True(v.Correct)
	s.Equal(int64(classicMaxFlow), v.Expected)
	s.Equal(int64(classicMaxFlow), v.Answer)
	s.Equal(s.round.ID, v.RoundID)

	s.Require().Len(v.Runs, 2)
	s.Equal(flow.AlgorithmEdmondsKarp, v.Runs[0].Algorithm)
	s.Equal(flow.AlgorithmDinic, v.Runs[1].Algorithm)
	for _, run := range v.Runs {
		s.Equal(int64(classicMaxFlow), run.MaxFlow)
	}
}

func (s *GradeSuite) TestWrongAnswer() {
	for _, answer := range []int64{0, 11, 13, 15} {
		v, err := puzzle.Grade(s.round, answer, flow.DefaultCompareOptions())
		s.Require().NoError(err)
		s.False(v.Correct, "answer %d", answer)
		s.Equal(int64(classicMaxFlow), v.Expected)
	}
}

func (s *GradeSuite) TestNegativeAnswerIsWrong() {
	v, err := puzzle.Grade(s.round, -12, flow.DefaultCompareOptions())
	s.Require().NoError(err)
	s.False(v.Correct)
}

func (s *GradeSuite) TestParallelOnSharedPool() {
	pool, err := ants.NewPool(4)
	s.Require().NoError(err)
	defer pool.Release()

	opts := flow.DefaultCompareOptions()
	opts.Parallel = true
	opts.Pool = pool
	for i := 0; i < 10; i++ {
		v, err := puzzle.Grade(s.round, classicMaxFlow, opts)
		s.Require().NoError(err)
		s.True(v.Correct)
	}
}

func (s *GradeSuite) TestClosedPoolIsError() {
	pool, err := ants.NewPool(1)
	s.Require().NoError(err)
	pool.Release()

	opts := flow.DefaultCompareOptions()
	opts.Parallel = true
	opts.Pool = pool
	v, err := puzzle.Grade(s.round, classicMaxFlow, opts)
	s.Require().ErrorIs(err, ants.ErrPoolClosed)
	s.Nil(v)
}

func TestGradeSuite(t *testing.T) {
	suite.Run(t, new(GradeSuite))
}

func TestGradeNilRound(t *testing.T) {
	_, err := puzzle.Grade(nil, 0, flow.DefaultCompareOptions())
	require.ErrorIs(t, err, puzzle.ErrNilRound)
}

func TestGradeGeneratedRounds(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		r, err := puzzle.Generate(puzzle.WithSeed(seed))
		require.NoError(t, err)
		g, err := r.Graph()
		require.NoError(t, err)
		ek, err := flow.EdmondsKarp(g, r.Source, r.Sink, flow.DefaultOptions())
		require.NoError(t, err)

		v, err := puzzle.Grade(r, ek.MaxFlow, flow.DefaultCompareOptions())
		require.NoError(t, err)
		require.True(t, v.Correct)
	}
}
