package domain

import "errors"

var (
	ErrBadRequest      = errors.New("bad request")
	ErrUnauthorized    = errors.New("unauthorized")
	ErrListingNotFound = errors.New("listing not found")
)

// StoreError - ошибка выполнения запроса в хранилище объявлений.
// Error() возвращает текст исходной ошибки без префиксов.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	if e.Err == nil {
		return "store error"
	}
	return e.Err.Error()
}

func (e *StoreError) Unwrap() error {
	return e.Err
}
