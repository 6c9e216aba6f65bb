package app

import (
	"context"
	"log/slog"

	"tableflip.dev/snip/pkg/persist"
)

// Recover snapshots the model as a backup, clears the store and rewrites it
// from that backup. The model adopts whatever the recovery ended with and
// the blocking status is cleared in both terminal outcomes. A non-nil error
// means even the defaults could not be written; it is also raised as a
// transient status.
func (s *Service) Recover(ctx context.Context) (persist.RecoveryResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	backup := s.model.Snapshot()
	res, err := s.pipeline.Recover(ctx, backup)
	s.model.Restore(res.Snapshot)
	s.model.TakeDirty()
	s.Status.ClearBlocking()

	s.Logger.Info("recovery finished",
		slog.String("outcome", res.Outcome.String()),
		slog.Int("items", len(res.Snapshot.Items)))
	if err != nil {
		s.Status.Transient(MsgSaveFailed)
		return res, err
	}
	return res, nil
}
