package repository

import "errors"

var (
	ErrNotFound  = errors.New("report repository: not found")
	ErrCacheMiss = errors.New("report repository: cache miss")
)
