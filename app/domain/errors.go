package domain

import "errors"

// Error taxonomy for the catalog service. Handlers map these onto HTTP
// status codes; everything below the REST layer speaks in these sentinels.
var (
	// Authentication errors
	ErrMissingCredential   = errors.New("authorization header missing")
	ErrMalformedCredential = errors.New("authorization scheme must be bearer")
	ErrExpiredToken        = errors.New("token expired")
	ErrMalformedToken      = errors.New("token malformed")

	// Authorization errors
	ErrInactiveAccount       = errors.New("account inactive")
	ErrInsufficientPrivilege = errors.New("admin privilege required")

	// Credential lifecycle errors
	ErrDuplicateEmail          = errors.New("email already registered")
	ErrInvalidCredentials      = errors.New("invalid credentials")
	ErrAccountNotFound         = errors.New("account not found")
	ErrIdentityProvider        = errors.New("identity provider error")
	ErrRegistrationPersistence = errors.New("failed to persist registered account")

	// Catalog errors
	ErrPersistence = errors.New("persistence error")

	// Validation errors
	ErrInvalidInput = errors.New("invalid input")
)

// IdentityError carries provider-level context for identity collaborator
// failures while still unwrapping to a taxonomy sentinel.
type IdentityError struct {
	Op    string
	Kind  error
	Cause error
}

func (e *IdentityError) Error() string {
	if e.Cause != nil {
		return e.Op + ": " + e.Cause.Error()
	}
	return e.Op + ": " + e.Kind.Error()
}

func (e *IdentityError) Unwrap() error {
	return e.Kind
}

// NewIdentityError wraps a provider failure in the given taxonomy kind.
func NewIdentityError(op string, kind, cause error) *IdentityError {
	return &IdentityError{Op: op, Kind: kind, Cause: cause}
}
