package ir

import (
	"errors"
)

var (
	ErrUnresolved = errors.New("unresolved tag")
)
