package ir

import (
	"errors"
)

var (
	ErrBadPath = errors.New("bad path")
)
