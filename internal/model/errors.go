package model

import "github.com/rotisserie/eris"

// ErrNotFound is returned by lookups when no record matches.
var ErrNotFound = eris.New("not found")
