package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
)

// Stable machine-readable codes for recoverable booking outcomes. Callers
// branch on the code, never on the message text.
const (
	CodeNotFound        = "not_found"
	CodeBarberNotFound  = "barber_not_found"
	CodeDuplicateSlot   = "duplicate_slot"
	CodeSlotUnavailable = "slot_unavailable"
	CodeAlreadyBooked   = "already_booked"
	CodeForbidden       = "forbidden"
	CodeConflict        = "conflict"
	CodeValidation      = "validation_error"
)

type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// IsUniqueViolation reports whether err is a postgres unique-constraint
// violation (SQLSTATE 23505). The booking transaction relies on this to turn
// a lost insert race into already_booked instead of an internal error.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

var statusByCode = map[string]int{
	CodeNotFound:        http.StatusNotFound,
	CodeBarberNotFound:  http.StatusNotFound,
	CodeDuplicateSlot:   http.StatusConflict,
	CodeSlotUnavailable: http.StatusBadRequest,
	CodeAlreadyBooked:   http.StatusConflict,
	CodeForbidden:       http.StatusForbidden,
	CodeConflict:        http.StatusConflict,
	CodeValidation:      http.StatusBadRequest,
}

// WriteBusiness maps a use-case error to its HTTP form. Anything that is not
// a BusinessError is an unexpected storage failure and is masked.
func WriteBusiness(c *gin.Context, err error, message string) {
	var be BusinessError
	if errors.As(err, &be) {
		if status, ok := statusByCode[be.Code]; ok {
			Write(c, status, be.Code, message)
			return
		}
	}
	Internal(c, "internal_error", "Erro interno.")
}
