package notifier

import "errors"

var (
	// ErrInvalidResponse возвращается при неожиданном ответе сервиса уведомлений
	ErrInvalidResponse = errors.New("notifier: invalid response")

	// ErrInternal возвращается при ошибках выполнения запроса
	ErrInternal = errors.New("notifier: internal error")
)
