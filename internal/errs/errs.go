// Package errs содержит доменные ошибки сервиса. Обработчики сопоставляют
// их с HTTP-кодами через errors.Is.
package errs

import "errors"

var (
	ErrGrievanceNotFound  = errors.New("grievance not found")
	ErrDepartmentNotFound = errors.New("department not found")
	ErrCategoryNotFound   = errors.New("category not found")
	ErrDocumentNotFound   = errors.New("document not found")

	// ErrUnauthorized — действующее лицо не владеет ресурсом или не вправе
	// выполнять операцию над ним.
	ErrUnauthorized = errors.New("not allowed to act on this resource")

	// ErrInvalidState — операция неприменима в текущем статусе. Это штатный
	// бизнес-отказ, не сбой: наружу уходит success=false.
	ErrInvalidState = errors.New("operation not allowed in current status")

	// ErrDuplicateName — нарушение уникальности имени справочника.
	ErrDuplicateName = errors.New("name already exists")
)
