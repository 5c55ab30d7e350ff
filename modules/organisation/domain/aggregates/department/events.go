package department

type CreatedEvent struct {
	Result Department
}

type UpdatedEvent struct {
	Result Department
}

type DeletedEvent struct {
	Result Department
}

type UserAssignedEvent struct {
	Result UserDepartment
}

type UserRemovedEvent struct {
	Result UserDepartment
}
