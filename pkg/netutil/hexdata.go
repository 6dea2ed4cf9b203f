package netutil

import (
	"encoding/hex"
	"strings"

	"github.com/pkg/errors"
)

// ParseHexData converts a hex string to raw bytes. Whitespace between hex
// pairs is tolerated so hex dumps can be pasted back in.
func ParseHexData(s string) ([]byte, error) {
	data, err := hex.DecodeString(strings.Join(strings.Fields(s), ""))
	if err != nil {
		return nil, errors.Wrap(err, "hex.DecodeString")
	}
	return data, nil
}
