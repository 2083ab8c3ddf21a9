package events

// CanModify reports whether actorID may update or delete event.
// Only the organizer may mutate an event.
func CanModify(actorID string, event *Event) bool {
	if event == nil {
		return false
	}
	return actorID != "" && actorID == event.OrganizerID
}
