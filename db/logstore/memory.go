package logstore

// MemoryStore serves records from memory. Used as a fixture in tests
// and for callers that already hold the log (for example a chat bot
// that received it over RPC).
type MemoryStore struct {
	records []Record
}

func NewMemoryStore(records []Record) *MemoryStore {
	return &MemoryStore{records: records}
}

func (s *MemoryStore) Records() ([]Record, error) {
	out := make([]Record, len(s.records))
	copy(out, s.records)
	return out, nil
}
