package catalog

import "errors"

var (
	ErrValidation       = errors.New("validation error")
	ErrNotFound         = errors.New("not found")
	ErrCategoryNotEmpty = errors.New("category still has items assigned")
	ErrItemReserved     = errors.New("item is held by an active reservation")
)
