package catalog

import "errors"

var ErrNotFound = errors.New("not found")
var ErrInvalid = errors.New("invalid catalog")
