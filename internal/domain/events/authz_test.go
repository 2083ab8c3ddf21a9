package events

import "testing"

func TestCanModify(t *testing.T) {
	event := &Event{OrganizerID: "organizer-1"}

	if !CanModify("organizer-1", event) {
		t.Fatal("organizer must be allowed to modify")
	}
	if CanModify("someone-else", event) {
		t.Fatal("non-organizer must not be allowed to modify")
	}
	if CanModify("", event) {
		t.Fatal("empty actor must not be allowed to modify")
	}
	if CanModify("organizer-1", nil) {
		t.Fatal("nil event must not be modifiable")
	}
}
