package auditlog

import "errors"

var (
	// ErrConnect возвращается, когда не удалось подключиться к брокеру
	ErrConnect = errors.New("auditlog: failed to connect to broker")

	// ErrPublish возвращается, когда не удалось опубликовать заметку
	ErrPublish = errors.New("auditlog: failed to publish note")

	// ErrMarshal возвращается при ошибке сериализации заметки
	ErrMarshal = errors.New("auditlog: failed to marshal note")
)
