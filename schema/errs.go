package schema

import "errors"

var (
	ErrLoad     = errors.New("schema load error")
	ErrConflict = errors.New("schema conflict")
	ErrPrefix   = errors.New("invalid schema prefix")
)
