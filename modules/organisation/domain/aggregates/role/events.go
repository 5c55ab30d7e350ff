package role

type CreatedEvent struct {
	Result Role
}

type UpdatedEvent struct {
	Result Role
}

type DeletedEvent struct {
	Result Role
}

type UserAssignedEvent struct {
	Result UserRole
}

type UserRemovedEvent struct {
	Result UserRole
}
