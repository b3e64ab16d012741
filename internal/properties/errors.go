package properties

import "errors"

// ErrLoadSource is returned when a property file exists but cannot be read
// or parsed.
var ErrLoadSource = errors.New("error loading property source")
