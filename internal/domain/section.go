package domain

// Section organizational unit a user belongs to.
// Used for reporting and filtering only; it has no effect on booking logic.
type Section struct {
	ID   int64
	Name string
	Code string
}
