package savegame

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"igusafarm/internal/app/ports"
	"igusafarm/internal/domain/game"
)

// Key is the single slot every snapshot is written to.
const Key = "igusa_game_save"

// Adapter mirrors GameState into a SnapshotStore. No method returns an
// error: failures are logged, counted and otherwise ignored so gameplay
// continues without persistence.
type Adapter struct {
	store   ports.SnapshotStore
	logger  *slog.Logger
	metrics ports.GameMetrics
}

func NewAdapter(store ports.SnapshotStore, logger *slog.Logger, metrics ports.GameMetrics) *Adapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Adapter{store: store, logger: logger, metrics: metrics}
}

func (a *Adapter) Save(ctx context.Context, state game.GameState) {
	payload, err := json.Marshal(state)
	if err != nil {
		a.fail("save", err)
		return
	}
	if err := a.store.Put(ctx, Key, payload); err != nil {
		a.fail("save", err)
	}
}

// Load returns nil when there is no save or the stored one is unusable.
func (a *Adapter) Load(ctx context.Context) *game.GameState {
	payload, err := a.store.Get(ctx, Key)
	if errors.Is(err, ports.ErrNotFound) {
		return nil
	}
	if err != nil {
		a.fail("load", err)
		return nil
	}
	var state game.GameState
	if err := json.Unmarshal(payload, &state); err != nil {
		a.fail("load", err)
		return nil
	}
	if err := state.Validate(); err != nil {
		a.fail("load", err)
		return nil
	}
	return &state
}

func (a *Adapter) Clear(ctx context.Context) {
	if err := a.store.Delete(ctx, Key); err != nil {
		a.fail("clear", err)
	}
}

func (a *Adapter) fail(op string, err error) {
	a.logger.Warn("game save unavailable", "op", op, "key", Key, "error", err)
	if a.metrics != nil {
		a.metrics.RecordPersistFailure(op)
	}
}
