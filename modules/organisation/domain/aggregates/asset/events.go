package asset

type CreatedEvent struct {
	Result Asset
}

type UpdatedEvent struct {
	Result Asset
}

type DeletedEvent struct {
	Result Asset
}

type AssignedEvent struct {
	Result Asset
}

type ReturnedEvent struct {
	Result Asset
}
