package registers

import (
	"strings"

	"cytomat_exporter/internal/types"
)

// ParseActionOutcome interprets the reply token of an action command.
// Anything other than "ok" or "er" is an unknown code, reported under the
// action step family the reply belongs to.
func ParseActionOutcome(token string) (types.ActionOutcome, error) {
	switch strings.TrimSpace(token) {
	case types.TokenOK:
		return types.ActionOK, nil
	case types.TokenError:
		return types.ActionError, nil
	default:
		return 0, &UnknownCodeError{Family: FamilyActionStep, Code: token}
	}
}
