package service

import (
	"sync"

	"github.com/pktlens/pktlens/pkg/netutil"
	"github.com/pktlens/pktlens/pkg/pktlayer"
	"github.com/sirupsen/logrus"
)

// Stats counts decode outcomes since the service started.
type Stats struct {
	Total   uint64 `json:"total"`
	Full    uint64 `json:"full"`    // all selected layers decoded
	Partial uint64 `json:"partial"` // success with a stop note
	Failed  uint64 `json:"failed"`  // truncated or malformed
}

// DecodeService exposes the packet decoding core to the API layer. The
// decoder itself is stateless; the mutex only guards the outcome counters.
type DecodeService struct {
	mu    sync.RWMutex
	stats Stats
}

func NewDecodeService() (*DecodeService, error) {
	return &DecodeService{}, nil
}

func (s *DecodeService) DecodePacket(data []byte, assumeEthernetFraming bool) (*pktlayer.ParsedPacket, error) {
	pkt, err := pktlayer.DecodePacket(data, assumeEthernetFraming)

	s.mu.Lock()
	s.stats.Total++
	switch {
	case err != nil:
		s.stats.Failed++
	case pkt.Note() != "":
		s.stats.Partial++
	default:
		s.stats.Full++
	}
	s.mu.Unlock()

	if err != nil {
		logrus.WithError(err).WithField("len", len(data)).Debug("Decode failure")
	}
	return pkt, err
}

func (s *DecodeService) Checksum(data []byte) uint16 {
	return netutil.Checksum(data)
}

func (s *DecodeService) HexDump(data []byte, width int, showASCII bool) string {
	return netutil.HexDump(data, width, showASCII)
}

func (s *DecodeService) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stats
}
