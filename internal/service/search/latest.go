package search

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/heartmarshall/vntravel-backend/internal/domain"
)

// SearchLatest runs a search that a newer call with the same session key
// supersedes. The older call returns domain.ErrSuperseded. An empty key
// disables superseding. The configured latency is applied here only.
func (s *Service) SearchLatest(ctx context.Context, sessionKey string, input Input) (*Result, error) {
	ctx, cancel := context.WithCancelCause(ctx)
	defer cancel(nil)

	if sessionKey != "" {
		sess := s.register(sessionKey, cancel)
		defer s.release(sessionKey, sess)
	}

	if s.latency > 0 {
		timer := time.NewTimer(s.latency)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, s.cancelled(ctx, sessionKey)
		case <-timer.C:
		}
	}

	res, err := s.Search(ctx, input)
	if err != nil {
		if ctx.Err() != nil {
			return nil, s.cancelled(ctx, sessionKey)
		}
		return nil, err
	}
	if ctx.Err() != nil {
		return nil, s.cancelled(ctx, sessionKey)
	}
	return res, nil
}

// register makes cancel the in-flight search of key, cancelling the previous one.
func (s *Service) register(key string, cancel context.CancelCauseFunc) *session {
	s.mu.Lock()
	defer s.mu.Unlock()

	if prev, ok := s.inflight[key]; ok {
		prev.cancel(domain.ErrSuperseded)
	}
	sess := &session{cancel: cancel}
	s.inflight[key] = sess
	return sess
}

func (s *Service) release(key string, sess *session) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.inflight[key] == sess {
		delete(s.inflight, key)
	}
}

func (s *Service) cancelled(ctx context.Context, key string) error {
	cause := context.Cause(ctx)
	if errors.Is(cause, domain.ErrSuperseded) {
		s.log.DebugContext(ctx, "search superseded", slog.String("session", key))
		return domain.ErrSuperseded
	}
	return cause
}
