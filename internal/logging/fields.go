package logging

const (
	// FieldComponent is the standardized structured logging key for component names.
	FieldComponent = "component"
	// FieldEventType is the standardized key for a machine-readable event name.
	FieldEventType = "event_type"
	// FieldErrorHint is the standardized key for the next step a user should take.
	FieldErrorHint = "error_hint"
	// FieldImpact is the standardized key for user-facing consequence of a warning.
	FieldImpact = "impact"
	// FieldPersonID is the standardized key for person identifiers.
	FieldPersonID = "person_id"
	// FieldTalkID is the standardized key for talk identifiers local to a person.
	FieldTalkID = "talk_id"
	// FieldPath is the standardized key for filesystem paths.
	FieldPath = "path"
)
