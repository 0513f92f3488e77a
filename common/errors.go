package common

import "errors"

var (
	ErrorInvalidValue  = errors.New("invalid value")
	ErrorEmptyData     = errors.New("empty data")
	ErrorMissingColumn = errors.New("missing column")
	ErrorSourceLoad    = errors.New("load data source failed")
)
