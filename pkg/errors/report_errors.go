package custom_error

import "fmt"

// UnknownCurrencyError is returned when a currency code is missing from the rate table.
type UnknownCurrencyError struct {
	Code string
}

func (e *UnknownCurrencyError) Error() string {
	return fmt.Sprintf("unknown currency: %q", e.Code)
}

// DanglingOfficeReferenceError is returned when an asset points at an office
// that is not part of the current snapshot.
type DanglingOfficeReferenceError struct {
	AssetID  int
	OfficeID int
}

func (e *DanglingOfficeReferenceError) Error() string {
	return fmt.Sprintf("asset %d references missing office %d", e.AssetID, e.OfficeID)
}

type InvalidAssetError struct {
	AssetID int
	Reason  string
}

func (e *InvalidAssetError) Error() string {
	return fmt.Sprintf("invalid asset %d: %s", e.AssetID, e.Reason)
}

// StorageUnavailableError wraps any failure of the storage layer.
type StorageUnavailableError struct {
	Op  string
	Err error
}

func (e *StorageUnavailableError) Error() string {
	return fmt.Sprintf("storage unavailable: %s: %v", e.Op, e.Err)
}

func (e *StorageUnavailableError) Unwrap() error {
	return e.Err
}

func NewStorageUnavailable(op string, err error) error {
	return &StorageUnavailableError{Op: op, Err: err}
}
