package ledger

import "errors"

var (
	// ErrEntryNotFound возвращается, когда кассовая запись не найдена
	ErrEntryNotFound = errors.New("ledger.repository: ledger entry not found")

	// ErrDuplicateEntry возвращается при попытке создать вторую кассовую
	// запись для той же записи к барберу (уникальный индекс appointment_id)
	ErrDuplicateEntry = errors.New("ledger.repository: duplicate entry for appointment")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("ledger.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("ledger.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("ledger.repository: failed to scan row")
)
