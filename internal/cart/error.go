package cart

import "errors"

var (
	// -- Validation & Input --
	ErrUnknownItem     = errors.New("menu item not in current catalog")
	ErrLineIndex       = errors.New("cart line index out of range")
	ErrNoTableSelected = errors.New("no table selected")

	// -- Resource State --
	ErrEmptyCart = errors.New("cart is empty")
)
