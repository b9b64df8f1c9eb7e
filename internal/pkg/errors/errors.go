package errors

import "errors"

// Общие ошибки приложения
var (
	// ErrNotFound используется, когда запись или ресурс не найдены.
	ErrNotFound = errors.New("record not found")

	// ErrValidation используется для ошибок валидации входных данных.
	ErrValidation = errors.New("validation failed")

	// ErrNoQuestions используется, когда после всех ступеней каскада выборки
	// не нашлось ни одного вопроса. Отличается от ошибок хранилища:
	// это корректируемое клиентом состояние, а не сбой сервера.
	ErrNoQuestions = errors.New("no questions matched the selection after fallback attempts")
)
