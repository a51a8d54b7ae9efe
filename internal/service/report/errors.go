package report

import "errors"

var ErrInvalidRange = errors.New("range end precedes start")
