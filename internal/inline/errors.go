package inline

import "errors"

// ErrUnpairedDelimiter indicates a Plain span with an odd number of
// occurrences of an emphasis or code delimiter.
var ErrUnpairedDelimiter = errors.New("unpaired delimiter")
