package graph

import (
	"errors"

	"github.com/luckyluck/event-booking-app/internal/domain"
)

// Error kinds exposed to clients through GraphQL error extensions, so
// callers can distinguish validation from conflict from collaborator
// failure without parsing messages.
const (
	codeValidation           = "VALIDATION"
	codeDuplicateUser        = "DUPLICATE_USER"
	codeReferentialIntegrity = "REFERENTIAL_INTEGRITY"
	codeHashing              = "HASHING"
	codeStorage              = "STORAGE"
	codeUnauthenticated      = "UNAUTHENTICATED"
)

type resolverError struct {
	err  error
	code string
}

func (e *resolverError) Error() string {
	return e.err.Error()
}

func (e *resolverError) Extensions() map[string]interface{} {
	return map[string]interface{}{"code": e.code}
}

var errUnauthenticated = &resolverError{
	err:  errors.New("authenticated caller required"),
	code: codeUnauthenticated,
}

// wrapError classifies a service failure into its taxonomy code.
// Anything not recognized is a store I/O failure.
func wrapError(err error) error {
	code := codeStorage
	switch {
	case domain.IsValidation(err):
		code = codeValidation
	case errors.Is(err, domain.ErrDuplicateEmail):
		code = codeDuplicateUser
	case errors.Is(err, domain.ErrCreatorNotFound):
		code = codeReferentialIntegrity
	case errors.Is(err, domain.ErrHashing):
		code = codeHashing
	}
	return &resolverError{err: err, code: code}
}
