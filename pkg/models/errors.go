package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred when accessing the ledger database")
	ErrResourceNotFound = errors.New("there is no")
)
