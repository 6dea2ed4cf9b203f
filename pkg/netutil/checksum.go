package netutil

// Checksum computes the Internet checksum (RFC 1071) over data: the
// one's-complement of the one's-complement sum of big-endian 16-bit words,
// folding overflow back into the low 16 bits. An odd-length input is summed
// as if padded with a single zero byte; data is never modified.
//
// It computes a checksum over arbitrary bytes; comparing against a header's
// stored checksum is the caller's responsibility.
func Checksum(data []byte) uint16 {
	var csum uint32

	n := len(data) - 1
	for i := 0; i < n; i += 2 {
		csum += uint32(data[i])<<8 | uint32(data[i+1])
	}
	if len(data)%2 == 1 {
		csum += uint32(data[len(data)-1]) << 8
	}
	for csum > 0xffff {
		csum = (csum >> 16) + (csum & 0xffff)
	}
	return ^uint16(csum)
}
