package board

import "errors"

var (
	ErrOrderNotFound     = errors.New("order not on the board")
	ErrActionUnavailable = errors.New("action not available for order status")

	// ErrStaleAfterUpdate means the server accepted the mutation but the
	// follow-up refresh failed, so the local snapshot lags reality.
	ErrStaleAfterUpdate = errors.New("order updated but board refresh failed")
)
