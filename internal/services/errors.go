package services

// ValidationError blocks a submission before any network call is made.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// PersistenceError means a create call was expected to return a
// generated identifier and did not.
type PersistenceError struct {
	Message string
}

func (e *PersistenceError) Error() string {
	return e.Message
}
