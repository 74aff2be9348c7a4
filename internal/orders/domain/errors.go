package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidLimit is returned by Recent for limits below one.
var ErrInvalidLimit = errors.New("limit must be at least 1")

// ReceiptNotFoundError indicates that no receipt with the given GUID exists.
type ReceiptNotFoundError struct {
	GUID string
}

// Error implements the error interface.
func (e *ReceiptNotFoundError) Error() string {
	return fmt.Sprintf("receipt not found: guid=%q", e.GUID)
}
