package list

import "errors"

const NOT_FOUND int = -1

var (
	INDEX_OUT_OF_RANGE_ERR = errors.New("index out of range error")
	INVALID_ARGUMENT_ERR   = errors.New("invalid argument error")
)
