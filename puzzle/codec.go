package puzzle

import (
	"io"

	"github.com/BurntSushi/toml"
	uuid "github.com/satori/go.uuid"
)

const (
	methodDecodeRound = "DecodeRound"
	methodLoadRound   = "LoadRound"
	methodEncodeRound = "EncodeRound"
)

// DecodeRound reads a TOML round:
//
//	id = "6ba7b810-9dad-41d1-80b4-00c04fd430c8"  # optional
//	source = "A"
//	sink = "T"
//
//	[[road]]
//	from = "A"
//	to = "B"
//	capacity = 10
//
// A missing id is replaced with a fresh v4 ID. The round is validated like NewRound.
func DecodeRound(r io.Reader) (*Round, error) {
	var round Round
	if _, err := toml.NewDecoder(r).Decode(&round); err != nil {
		return nil, puzzleErrorf(methodDecodeRound, "%w", err)
	}
	return finishDecoded(methodDecodeRound, &round)
}

// LoadRound reads a TOML round from path.
func LoadRound(path string) (*Round, error) {
	var round Round
	if _, err := toml.DecodeFile(path, &round); err != nil {
		return nil, puzzleErrorf(methodLoadRound, "%s: %w", path, err)
	}
	return finishDecoded(methodLoadRound, &round)
}

// EncodeRound writes round as TOML in the format read by DecodeRound.
func EncodeRound(w io.Writer, round *Round) error {
	if round == nil {
		return ErrNilRound
	}
	if err := toml.NewEncoder(w).Encode(round); err != nil {
		return puzzleErrorf(methodEncodeRound, "%w", err)
	}
	return nil
}

func finishDecoded(method string, round *Round) (*Round, error) {
	if uuid.Equal(round.ID, uuid.Nil) {
		round.ID = uuid.Must(uuid.NewV4())
	}
	if err := round.validate(method); err != nil {
		return nil, err
	}
	return round, nil
}
