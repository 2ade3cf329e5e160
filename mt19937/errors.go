package mt19937

import "errors"

// ErrBadStateLength is returned by UnmarshalState when the supplied slice
// does not hold exactly N words.
var ErrBadStateLength = errors.New("mt19937: state slice must have exactly 624 elements")
