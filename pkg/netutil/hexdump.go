package netutil

import (
	"fmt"
	"strings"
)

// DefaultHexDumpWidth is the number of bytes rendered per hex dump row.
const DefaultHexDumpWidth = 16

// HexDump renders data as fixed-width rows of space-separated two-digit hex
// pairs. Each row is labeled with the zero-based starting byte offset as
// 8-digit lowercase hex, and the hex column is padded so columns line up
// even on a short final row. With showASCII, a printable-ASCII column
// follows, non-printable bytes shown as '.'.
//
//	00000000  00 11 22 33 44 55 aa bb cc dd ee ff 08 00 45 00  |.."3DU........E.|
//	00000010  00 3c 12 34                                      |.<.4|
//
// A width <= 0 selects DefaultHexDumpWidth.
func HexDump(data []byte, width int, showASCII bool) string {
	if width <= 0 {
		width = DefaultHexDumpWidth
	}

	var lines []string
	for i := 0; i < len(data); i += width {
		chunk := data[i:min(i+width, len(data))]

		hexPart := strings.Builder{}
		for k, b := range chunk {
			if k > 0 {
				hexPart.WriteByte(' ')
			}
			fmt.Fprintf(&hexPart, "%02x", b)
		}

		if showASCII {
			ascii := make([]byte, len(chunk))
			for k, b := range chunk {
				if b >= 0x20 && b <= 0x7e {
					ascii[k] = b
				} else {
					ascii[k] = '.'
				}
			}
			lines = append(lines, fmt.Sprintf("%08x  %-*s  |%s|", i, width*3-1, hexPart.String(), ascii))
		} else {
			lines = append(lines, fmt.Sprintf("%08x  %-*s", i, width*3-1, hexPart.String()))
		}
	}
	return strings.Join(lines, "\n")
}
