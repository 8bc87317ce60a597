package tournament

import (
	"fmt"
	"time"

	apperrors "github.com/jrsteele09/torneo-pingpong/internal/errors"
	"github.com/jrsteele09/torneo-pingpong/users"
)

// MatchInput is the body of POST /api/incontri and PUT /api/incontri/{id}.
// Scores are sent only when both are known.
type MatchInput struct {
	PlayerA users.ID `json:"partecipante_a_id"`
	PlayerB users.ID `json:"partecipante_b_id"`
	Date    string   `json:"data"`
	ScoreA  *int     `json:"punti_a,omitempty"`
	ScoreB  *int     `json:"punti_b,omitempty"`
}

// InputFromMatch pre-fills an edit with the current values of m.
func InputFromMatch(m Match) MatchInput {
	return MatchInput{
		PlayerA: m.PlayerAID,
		PlayerB: m.PlayerBID,
		Date:    m.Date,
		ScoreA:  m.ScoreA,
		ScoreB:  m.ScoreB,
	}
}

// Validate applies the table tennis rules the management view enforces
// before anything is sent.
func (in MatchInput) Validate() error {
	if in.PlayerA == "" || in.PlayerB == "" || in.Date == "" {
		return fmt.Errorf("%w: players and date are required", apperrors.ErrInvalidRequest)
	}
	if in.PlayerA == in.PlayerB {
		return fmt.Errorf("%w: players must be different", apperrors.ErrInvalidRequest)
	}
	if _, err := in.PlayerA.Int(); err != nil {
		return fmt.Errorf("%w: player A id %q is not numeric", apperrors.ErrInvalidRequest, in.PlayerA)
	}
	if _, err := in.PlayerB.Int(); err != nil {
		return fmt.Errorf("%w: player B id %q is not numeric", apperrors.ErrInvalidRequest, in.PlayerB)
	}
	if _, err := time.Parse(DateLayout, in.Date); err != nil {
		return fmt.Errorf("%w: date %q must be YYYY-MM-DD", apperrors.ErrInvalidRequest, in.Date)
	}
	if in.ScoreA == nil || in.ScoreB == nil {
		return nil
	}
	if *in.ScoreA < 0 || *in.ScoreB < 0 {
		return fmt.Errorf("%w: scores must be non-negative", apperrors.ErrInvalidRequest)
	}
	if *in.ScoreA == *in.ScoreB {
		return fmt.Errorf("%w: a match cannot end in a draw", apperrors.ErrInvalidRequest)
	}
	return nil
}

// Normalized drops a lone score: results are recorded only as a pair.
func (in MatchInput) Normalized() MatchInput {
	if in.ScoreA == nil || in.ScoreB == nil {
		in.ScoreA, in.ScoreB = nil, nil
	}
	return in
}
