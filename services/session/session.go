// Package session persists ranked search results under a session ID so
// a follow-up request ("open the second result") can resolve a file
// path after the original response has been sent.
package session

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/zyronlabs/recall/db/kvdb"
	"github.com/zyronlabs/recall/logger"
	"github.com/zyronlabs/recall/services/finder"
)

var ErrIndexOutOfRange = errors.New("result index out of range")

type Service struct {
	logger logger.Logger
	kv     kvdb.DB
}

func New(logger logger.Logger, kv kvdb.DB) *Service {
	return &Service{
		logger: logger,
		kv:     kv,
	}
}

// Save stores the results under sessionID, replacing any previous
// results saved for the same session.
func (s *Service) Save(sessionID string, results []finder.ScoredResult) error {
	data, err := json.Marshal(results)
	if err != nil {
		s.logger.Error("failed to marshal search results", "session_id", sessionID, "err", err.Error())
		return fmt.Errorf("failed to marshal search results: %w", err)
	}

	if err := s.kv.Set(sessionID, string(data)); err != nil {
		s.logger.Error("failed to save search session", "session_id", sessionID, "err", err.Error())
		return err
	}

	return nil
}

// PathAt returns the file path of the index-th saved result of a
// session. Returns kvdb.ErrNotFound (wrapped) for unknown sessions and
// ErrIndexOutOfRange when the session has fewer results.
func (s *Service) PathAt(sessionID string, index int) (string, error) {
	value, err := s.kv.Get(sessionID)
	if err != nil {
		return "", err
	}

	var results []finder.ScoredResult
	if err := json.Unmarshal([]byte(value), &results); err != nil {
		s.logger.Error("failed to unmarshal saved search session", "session_id", sessionID, "err", err.Error())
		return "", fmt.Errorf("failed to unmarshal search session %s: %w", sessionID, err)
	}

	path, ok := finder.FilePathAt(results, index)
	if !ok {
		return "", ErrIndexOutOfRange
	}

	return path, nil
}
