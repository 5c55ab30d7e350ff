package location

type CreatedEvent struct {
	Result Location
}

type UpdatedEvent struct {
	Result Location
}

type DeletedEvent struct {
	Result Location
}
