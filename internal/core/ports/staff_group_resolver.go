package ports

import (
	"context"

	"scheduling/internal/core/domain/model/kernel"
)

// StaffMember is a read model describing one resolved member of a staff
// group as reported by the external data service.
type StaffMember struct {
	// ID is the staff member's unique identifier.
	ID kernel.UUID

	// Name is the staff member's display name.
	Name string
}

// StaffGroupResolver resolves a staff group into the flat list of its
// active members, including members of nested subgroups.
type StaffGroupResolver interface {
	// ResolveMembers returns the active members of the group, deduplicated
	// and ordered by identifier.
	//
	// Returns errs.ObjectNotFoundError when the group does not exist and
	// errs.ExternalServiceError when the data service cannot be reached
	// or answers with a server error.
	ResolveMembers(ctx context.Context, groupID kernel.UUID) ([]StaffMember, error)
}
