package pktlayer

import "fmt"

// Layer identifies one protocol header within an encapsulated packet.
type Layer uint8

const (
	LayerEthernet Layer = iota
	LayerIPv4
	LayerTCP
	LayerUDP
)

var layer2str = map[Layer]string{
	LayerEthernet: "Ethernet",
	LayerIPv4:     "IPv4",
	LayerTCP:      "TCP",
	LayerUDP:      "UDP",
}

func (l Layer) String() string {
	s, ok := layer2str[l]
	if !ok {
		return fmt.Sprintf("layer(%d)", l)
	}
	return s
}

// TruncatedError reports a buffer too short to hold a layer's minimum
// fixed-size header. Needed and Available let the caller render a precise
// diagnostic without re-deriving offsets.
type TruncatedError struct {
	Layer     Layer
	Needed    int
	Available int
}

func (e *TruncatedError) Error() string {
	return fmt.Sprintf("%s: truncated header, need %d bytes, have %d", e.Layer, e.Needed, e.Available)
}

// MalformedHeaderError reports a structurally required field that failed
// validation, e.g. an IPv4 IHL below 5.
type MalformedHeaderError struct {
	Layer  Layer
	Detail string
}

func (e *MalformedHeaderError) Error() string {
	return fmt.Sprintf("%s: malformed header, %s", e.Layer, e.Detail)
}
