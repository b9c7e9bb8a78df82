package lock

import "errors"

var (
	// ErrLock возвращается, когда хранилище блокировок недоступно
	ErrLock = errors.New("lock: backend error")
)
