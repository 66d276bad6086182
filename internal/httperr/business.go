package httperr

import "errors"

// Kind classifica as falhas de negócio que o orquestrador converte em
// resposta tipada. Tudo que não for um desses tipos é tratado como falha
// interna.
type Kind string

const (
	KindFormat     Kind = "format"
	KindNotFound   Kind = "not_found"
	KindForbidden  Kind = "forbidden"
	KindConflict   Kind = "conflict"
	KindValidation Kind = "validation"
)

type BusinessError struct {
	Kind    Kind
	Code    string
	Message string
}

func (e BusinessError) Error() string {
	return e.Code
}

func Format(code, message string) error {
	return BusinessError{Kind: KindFormat, Code: code, Message: message}
}

func NotFoundErr(code, message string) error {
	return BusinessError{Kind: KindNotFound, Code: code, Message: message}
}

func ForbiddenErr(code, message string) error {
	return BusinessError{Kind: KindForbidden, Code: code, Message: message}
}

func ConflictErr(code, message string) error {
	return BusinessError{Kind: KindConflict, Code: code, Message: message}
}

func ValidationErr(code, message string) error {
	return BusinessError{Kind: KindValidation, Code: code, Message: message}
}

func IsKind(err error, kind Kind) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Kind == kind
	}
	return false
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

func AsBusiness(err error) (BusinessError, bool) {
	var be BusinessError
	if errors.As(err, &be) {
		return be, true
	}
	return BusinessError{}, false
}
