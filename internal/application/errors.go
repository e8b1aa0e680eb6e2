package application

// Error kinds surfaced by the services. Handlers map these onto HTTP status
// codes; anything else is treated as an internal error.

type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func NewValidationError(msg string) error { return &ValidationError{Message: msg} }

// PolicyError marks a request rejected by a moderation rule. The message is
// intended to be shown to the user as-is.
type PolicyError struct {
	Message string
}

func (e *PolicyError) Error() string { return e.Message }

func NewPolicyError(msg string) error { return &PolicyError{Message: msg} }

type UnauthorizedError struct {
	Message string
}

func (e *UnauthorizedError) Error() string { return e.Message }

func NewUnauthorizedError(msg string) error { return &UnauthorizedError{Message: msg} }
