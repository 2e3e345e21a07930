package commands

import (
	"context"
	"time"

	"littlelemon/internal/core/domain/model/identity"
	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/core/ports"
	"littlelemon/internal/pkg/errs"
)

// checkDeliveryCrew records a field error when crewID does not belong to a member of
// the Delivery Crew group. A nil crewID unassigns and is always accepted.
func checkDeliveryCrew(
	ctx context.Context, users ports.UserRepository, crewID *kernel.ID, fields *errs.FieldsError,
) error {
	if crewID == nil {
		return nil
	}
	if crewID.Validate() != nil {
		fields.Add("delivery_crew", "invalid user id")
		return nil
	}

	member, err := users.HasRole(ctx, *crewID, identity.DeliveryCrew)
	if err != nil {
		return err
	}
	if !member {
		fields.Add("delivery_crew", "user "+crewID.String()+" is not a member of "+identity.DeliveryCrew.String())
	}
	return nil
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}
