package netaddr

import "fmt"

// AddressFormatError reports a MAC or IPv4 string/byte conversion that
// received input of the wrong length or with invalid characters. Malformed
// input is always an error, never a silent truncation.
type AddressFormatError struct {
	Input  string
	Reason string
}

func (e *AddressFormatError) Error() string {
	return fmt.Sprintf("invalid address %q: %s", e.Input, e.Reason)
}
