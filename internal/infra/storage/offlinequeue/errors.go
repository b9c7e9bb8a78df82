package offlinequeue

import "errors"

var (
	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("offlinequeue.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("offlinequeue.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("offlinequeue.repository: failed to scan row")

	// ErrEncode возвращается, когда тело бронирования не удалось сериализовать или прочитать
	ErrEncode = errors.New("offlinequeue.repository: failed to encode payload")

	// ErrTransaction возвращается при ошибках работы с транзакцией
	ErrTransaction = errors.New("offlinequeue.repository: transaction error")
)
