package httperr

import (
	"errors"
	"fmt"
	"time"
)

// ===============================
// Erros de domínio do agendamento
// ===============================

type NotFoundError struct {
	Resource string
}

func (e NotFoundError) Error() string {
	return e.Resource + "_not_found"
}

func ErrNotFound(resource string) error {
	return NotFoundError{Resource: resource}
}

func IsNotFound(err error) bool {
	var nf NotFoundError
	return errors.As(err, &nf)
}

type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return e.Code
}

func ErrValidation(code, message string) error {
	return ValidationError{Code: code, Message: message}
}

func IsValidation(err error) bool {
	var ve ValidationError
	return errors.As(err, &ve)
}

// ConflictError carrega a janela do agendamento conflitante e o nome do
// serviço, para a mensagem exibida ao cliente.
type ConflictError struct {
	Start       time.Time
	End         time.Time
	ServiceName string
}

func (e ConflictError) Error() string {
	return fmt.Sprintf(
		"time_conflict: %s de %s até %s",
		e.ServiceName,
		e.Start.Format("02/01/2006 15:04"),
		e.End.Format("15:04"),
	)
}

func IsConflict(err error) bool {
	var ce ConflictError
	return errors.As(err, &ce)
}
