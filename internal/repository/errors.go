package repository

import "errors"

// ErrNotFound возвращается всеми репозиториями, когда строка отсутствует
var ErrNotFound = errors.New("not found")
