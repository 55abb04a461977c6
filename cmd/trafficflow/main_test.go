package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/trafficflow/puzzle"
)

const classicRound = `
source = "A"
sink = "T"

[[road]]
from = "A"
to = "B"
capacity = 10

[[road]]
from = "A"
to = "C"
capacity = 5

[[road]]
from = "B"
to = "C"
capacity = 3

[[road]]
from = "B"
to = "T"
capacity = 4

[[road]]
from = "C"
to = "T"
capacity = 8
`

func writeRound(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "round.toml")
	require.NoError(t, os.WriteFile(path, []byte(classicRound), 0o600))
	return path
}

func defaultConfig() Config {
	return Config{Workers: 2}
}

func TestRunGradesCorrectAnswer(t *testing.T) {
	var out bytes.Buffer
	err := run(defaultConfig(), []string{"-round", writeRound(t), "-answer", "12"}, &out, zerolog.Nop())
	require.NoError(t, err)
	require.Contains(t, out.String(), "correct: 12 vehicles/min")
	require.Contains(t, out.String(), "Edmonds-Karp")
	require.Contains(t, out.String(), "Dinic")
}

func TestRunGradesWrongAnswerInParallel(t *testing.T) {
	var out bytes.Buffer
	err := run(defaultConfig(), []string{"-round", writeRound(t), "-answer", "9", "-parallel"}, &out, zerolog.Nop())
	require.NoError(t, err)
	require.Contains(t, out.String(), "wrong: you said 9, maximum traffic is 12 vehicles/min")
}

func TestRunRevealsWithoutAnswer(t *testing.T) {
	var out bytes.Buffer
	conf := defaultConfig()
	conf.Round = writeRound(t)
	require.NoError(t, run(conf, nil, &out, zerolog.Nop()))
	require.Contains(t, out.String(), "maximum traffic: 12 vehicles/min")
}

func TestRunGeneratesAndSaves(t *testing.T) {
	path := filepath.Join(t.TempDir(), "saved.toml")
	var out bytes.Buffer
	err := run(defaultConfig(), []string{"-seed", "5", "-save", path, "-verbose"}, &out, zerolog.Nop())
	require.NoError(t, err)
	require.Equal(t, 1+len(puzzle.DefaultLinks())+3, strings.Count(out.String(), "\n"))

	r, err := puzzle.LoadRound(path)
	require.NoError(t, err)
	require.Contains(t, out.String(), r.ID.String())
}

func TestRunRejectsBadAnswer(t *testing.T) {
	var out bytes.Buffer
	err := run(defaultConfig(), []string{"-round", writeRound(t), "-answer", "lots"}, &out, zerolog.Nop())
	require.Error(t, err)
}

func TestRunMissingRound(t *testing.T) {
	var out bytes.Buffer
	err := run(defaultConfig(), []string{"-round", filepath.Join(t.TempDir(), "nope.toml")}, &out, zerolog.Nop())
	require.Error(t, err)
}
