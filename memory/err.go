package memory

import (
	"errors"

	"github.com/ezrec/tta/translate"
)

var f = translate.From

var (
	// Memory errors
	ErrAddress = errors.New(f("address out of range"))
)

// ErrAddressRange reports the offending word address.
type ErrAddressRange struct {
	Addr int64
	Size int
}

func (err ErrAddressRange) Error() string {
	return f("address 0x%x out of range 0x%x", err.Addr, err.Size)
}

func (err ErrAddressRange) Unwrap() error {
	return ErrAddress
}
