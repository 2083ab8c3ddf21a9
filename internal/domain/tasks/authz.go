package tasks

import "github.com/eventure/server/internal/domain/events"

// CanCreate reports whether actorID may create a task under event.
// Only the event organizer can create tasks.
func CanCreate(actorID string, event *events.Event) bool {
	return events.CanModify(actorID, event)
}

// CanUpdate reports whether actorID may update task. The organizer of
// the parent event and the task's assignee both qualify.
func CanUpdate(actorID string, event *events.Event, task *Task) bool {
	if events.CanModify(actorID, event) {
		return true
	}
	if task == nil || task.AssignedToID == nil {
		return false
	}
	return actorID != "" && actorID == *task.AssignedToID
}

// CanDelete reports whether actorID may delete a task under event.
// The assignee may not delete; only the organizer can.
func CanDelete(actorID string, event *events.Event) bool {
	return events.CanModify(actorID, event)
}
