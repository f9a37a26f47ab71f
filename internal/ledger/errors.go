package ledger

import "errors"

// Error kinds returned by the ledger core. Callers test for them with errors.Is;
// the concrete error usually wraps one of these with the offending value.
var (
	ErrMalformedPath       = errors.New("malformed account path")
	ErrAccountNotFound     = errors.New("account not found")
	ErrInvalidAmount       = errors.New("amount must be positive")
	ErrInvalidCurrency     = errors.New("currency must not be empty")
	ErrSameAccount         = errors.New("debit and credit account must differ")
	ErrInvalidAttachment   = errors.New("invalid attachment")
	ErrInvalidTag          = errors.New("invalid tag")
	ErrInvalidIncreaseOn   = errors.New("increase direction must be debit or credit")
	ErrConstraintViolation = errors.New("constraint violation")
	ErrSchemaAlreadyExists = errors.New("schema already exists")
	ErrStorageUnavailable  = errors.New("storage unavailable")
	ErrNotFound            = errors.New("not found")
)

// IsValidation reports whether err was raised before anything was written.
func IsValidation(err error) bool {
	return errors.Is(err, ErrMalformedPath) ||
		errors.Is(err, ErrInvalidAmount) ||
		errors.Is(err, ErrInvalidCurrency) ||
		errors.Is(err, ErrSameAccount) ||
		errors.Is(err, ErrInvalidAttachment) ||
		errors.Is(err, ErrInvalidTag) ||
		errors.Is(err, ErrInvalidIncreaseOn)
}
