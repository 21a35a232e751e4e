package commands

import (
	"cozycup/internal/domain/reservation"
	"cozycup/internal/domain/user"
	"cozycup/internal/pkg/errs"

	"github.com/google/uuid"
)

// Principal is the authenticated caller as the handler layer resolved it.
type Principal struct {
	UserID uuid.UUID
	Role   user.Role
}

func (p Principal) IsHost() bool {
	return p.Role == user.RoleHost
}

func (p Principal) actor() reservation.Actor {
	if p.IsHost() {
		return reservation.ActorHost
	}
	return reservation.ActorCustomer
}

// validation surfaces a domain rule violation as a 400 with the rule's own message.
func validation(err error) error {
	return errs.Validation("%s", err.Error()).WithCause(err)
}
