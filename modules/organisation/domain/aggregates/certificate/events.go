package certificate

type CreatedEvent struct {
	Result Certificate
}

type UpdatedEvent struct {
	Result Certificate
}

type DeletedEvent struct {
	Result Certificate
}
