package apperr

import "errors"

// Kind classifica a falha para decidir status HTTP e log
type Kind int

const (
	KindAuth Kind = iota + 1
	KindValidation
	KindNotFound
	KindConflict
	KindStorage
	KindUnexpected
)

type Error struct {
	Kind    Kind
	Code    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Code + ": " + e.Err.Error()
	}
	return e.Code
}

func (e *Error) Unwrap() error {
	return e.Err
}

func Auth(code, message string) *Error {
	return &Error{Kind: KindAuth, Code: code, Message: message}
}

func Validation(code, message string) *Error {
	return &Error{Kind: KindValidation, Code: code, Message: message}
}

func NotFound(code, message string) *Error {
	return &Error{Kind: KindNotFound, Code: code, Message: message}
}

func Conflict(code, message string) *Error {
	return &Error{Kind: KindConflict, Code: code, Message: message}
}

func Storage(err error, code, message string) *Error {
	return &Error{Kind: KindStorage, Code: code, Message: message, Err: err}
}

func Unexpected(err error) *Error {
	return &Error{
		Kind:    KindUnexpected,
		Code:    "unexpected_error",
		Message: "Ocorreu um erro inesperado. Tente novamente.",
		Err:     err,
	}
}

// Is reporta se err é um *Error com o código informado
func Is(err error, code string) bool {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Code == code
	}
	return false
}

func IsKind(err error, kind Kind) bool {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind == kind
	}
	return false
}
