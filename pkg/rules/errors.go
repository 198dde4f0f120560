package rules

import "errors"

// ErrInvalidRule is returned when a skip/include token names a rule ID or
// keyword that does not exist. An invalid rule identifier in config is
// fatal before any file is processed.
var ErrInvalidRule = errors.New("invalid rule identifier")
