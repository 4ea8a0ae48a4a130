package policy

import (
	"errors"
	"fmt"
)

var (
	// The engine was asked for a move it cannot give, the caller must not retry
	ErrInvalidInvocation = errors.New("policy: invalid invocation")
	ErrNoMoves           = fmt.Errorf("%w: no empty cell left", ErrInvalidInvocation)
	ErrGameOver          = fmt.Errorf("%w: game already decided", ErrInvalidInvocation)
	ErrInvalidMarks      = fmt.Errorf("%w: marks must be distinct players", ErrInvalidInvocation)

	ErrUnknownDifficulty = errors.New("policy: unknown difficulty")

	// The search returned no move while empty cells exist
	ErrDegenerateSearch = errors.New("policy: search returned no move")
)
