package profile

type CreatedEvent struct {
	Result Profile
}

type UpdatedEvent struct {
	Result Profile
}

type DeletedEvent struct {
	Result Profile
}
