package track

type CreatedEvent struct {
	Result LearningTrack
}

type UpdatedEvent struct {
	Result LearningTrack
}

type DeletedEvent struct {
	Result LearningTrack
}

type UserAssignedEvent struct {
	Result Assignment
}

type UserUnassignedEvent struct {
	Result Assignment
}

type ProgressRecordedEvent struct {
	Result Progress
}
