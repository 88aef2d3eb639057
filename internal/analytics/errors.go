package analytics

import "errors"

// Typed emptiness signals. A rollup over a wholly empty record set is
// an error the composing layer must handle; an empty subset after
// filtering is not.
var (
	ErrNoDeals      = errors.New("no deals data available")
	ErrNoWorkOrders = errors.New("no work orders data available")
)
