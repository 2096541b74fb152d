package section

import "errors"

var (
	// ErrSectionNotFound возвращается, когда секция не найдена
	ErrSectionNotFound = errors.New("section.repository: section not found")

	// ErrDuplicateCode возвращается при попытке создать секцию с существующим кодом
	ErrDuplicateCode = errors.New("section.repository: section code already exists")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("section.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("section.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("section.repository: failed to scan row")
)
