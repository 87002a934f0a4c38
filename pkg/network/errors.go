package network

import "errors"

// ErrEmptyGraph is returned by Assemble when the minimum-mentions filter
// leaves no nodes or no edges. The pipeline fails atomically: no partial
// graph accompanies this error.
var ErrEmptyGraph = errors.New("network: no nodes or edges after filtering")
