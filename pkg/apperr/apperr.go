// Пакет apperr — классификация ошибок поверхности вендора.
// Вид ошибки (Kind) определяет HTTP-статус и поле type в теле ответа;
// слои ниже транспорта оперируют только Kind, не статусами.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind — вид ошибки.
type Kind int

const (
	KindBadRequest Kind = iota + 1
	KindUnauthenticated
	KindForbidden
	KindNotFound
	KindConflict
	KindUnavailable
	KindInternal
)

// String — машинное имя вида (поле type в теле ошибки).
func (k Kind) String() string {
	switch k {
	case KindBadRequest:
		return "invalid_data"
	case KindUnauthenticated:
		return "unauthorized"
	case KindForbidden:
		return "not_allowed"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindUnavailable:
		return "unavailable"
	default:
		return "unknown_error"
	}
}

// HTTPStatus — соответствие вида ошибки HTTP-коду.
func (k Kind) HTTPStatus() int {
	switch k {
	case KindBadRequest:
		return http.StatusBadRequest
	case KindUnauthenticated:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// Error — классифицированная ошибка с сообщением для клиента.
type Error struct {
	Kind    Kind
	Message string
	Err     error // причина (не уходит клиенту)
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// New — новая классифицированная ошибка.
func New(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap — оборачивает причину, сохраняя её для errors.Is/As.
func Wrap(kind Kind, err error, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Err: err}
}

// KindOf — вид ошибки; неклассифицированные считаются внутренними.
func KindOf(err error) Kind {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return KindInternal
}

// IsKind — проверка вида с учётом цепочки обёрток.
func IsKind(err error, kind Kind) bool {
	var ae *Error
	return errors.As(err, &ae) && ae.Kind == kind
}

// MessageOf — клиентское сообщение; для неклассифицированных ошибок
// отдаём нейтральный текст, чтобы не светить внутренности.
func MessageOf(err error) string {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Message
	}
	return "internal server error"
}
