package service

import "fmt"

// Kind категория ошибки сервисного слоя
type Kind int

const (
	KindUnauthorized Kind = iota + 1
	KindMissingParameters
	KindInvalidParameters
	KindNotFound
	KindExpired
	KindUpstream
	KindStore
)

// String возвращает короткий заголовок категории для ответа клиенту
func (k Kind) String() string {
	switch k {
	case KindUnauthorized:
		return "Unauthorized"
	case KindMissingParameters:
		return "Missing parameters"
	case KindInvalidParameters:
		return "Invalid parameters"
	case KindNotFound:
		return "Not found"
	case KindExpired:
		return "Expired"
	case KindUpstream:
		return "Upstream error"
	case KindStore:
		return "Store error"
	default:
		return "Unknown error"
	}
}

// Действия, которые клиент должен выполнить со своим токеном
const (
	ActionSaveToken   = "SAVE_TOKEN"
	ActionDeleteToken = "DELETE_TOKEN"
)

// Error ошибка сервисного слоя с категорией и сообщением для клиента
type Error struct {
	Err     error
	Message string
	Action  string
	Kind    Kind
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// errMissing ошибка отсутствующего параметра
func errMissing(message string) *Error {
	return newError(KindMissingParameters, message)
}

// errInvalid ошибка некорректного параметра
func errInvalid(message string, cause error) *Error {
	return &Error{Kind: KindInvalidParameters, Message: message, Err: cause}
}

// errStore оборачивает ошибку хранилища, сообщение хранилища передается клиенту как есть
func errStore(operation string, err error) *Error {
	return &Error{
		Kind:    KindStore,
		Message: fmt.Sprintf("store returned an error (%s): %v", operation, err),
		Err:     err,
	}
}

// ErrUpstream ошибка внешнего провайдера идентификации
func ErrUpstream(message string, cause error) *Error {
	return &Error{Kind: KindUpstream, Message: message, Err: cause}
}

var (
	errNotLoggedIn = newError(KindUnauthorized, "you must be logged in to perform this action")
	errStaleToken  = &Error{
		Kind:    KindUnauthorized,
		Message: "your session has expired, please log in again",
		Action:  ActionDeleteToken,
	}
)
