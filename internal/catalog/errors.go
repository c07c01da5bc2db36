package catalog

import "fmt"

// NotFoundError reports a reference to a person or talk that does not exist.
type NotFoundError struct {
	PersonID   int
	PersonName string
	TalkID     int
	// Talk is true when the person exists but the talk does not.
	Talk bool
}

func (e *NotFoundError) Error() string {
	if e.Talk {
		return fmt.Sprintf("Person %d (%s) doesn't have talk %d", e.PersonID, e.PersonName, e.TalkID)
	}
	return fmt.Sprintf("No person with id %d exists in this database", e.PersonID)
}
