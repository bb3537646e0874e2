package mocks

import "errors"

var ErrObjectNotFound = errors.New("object not found")
