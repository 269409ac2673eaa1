package gormrepo

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"igusafarm/internal/adapter/repo/gorm/model"
	"igusafarm/internal/app/ports"
)

// SnapshotStore keeps the latest payload per key in game_saves and appends
// every write to game_save_history in the same transaction.
type SnapshotStore struct {
	db  *gorm.DB
	tx  TxManager
	now func() time.Time
}

type Revision struct {
	Revision  int64
	Payload   []byte
	WrittenAt time.Time
}

func NewSnapshotStore(db *gorm.DB) SnapshotStore {
	return SnapshotStore{db: db, tx: NewTxManager(db), now: time.Now}
}

func (s SnapshotStore) Get(ctx context.Context, key string) ([]byte, error) {
	var m model.GameSave
	if err := dbFor(ctx, s.db).WithContext(ctx).Where("save_key = ?", key).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	return m.Payload, nil
}

func (s SnapshotStore) Put(ctx context.Context, key string, payload []byte) error {
	return s.tx.RunInTx(ctx, func(ctx context.Context) error {
		db := dbFor(ctx, s.db)
		now := s.now().UTC()

		var current model.GameSave
		err := db.Clauses(clause.Locking{Strength: "UPDATE"}).Where("save_key = ?", key).First(&current).Error
		revision := int64(1)
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			if err := db.Create(&model.GameSave{SaveKey: key, Payload: payload, Revision: revision, UpdatedAt: now}).Error; err != nil {
				return err
			}
		case err != nil:
			return err
		default:
			revision = current.Revision + 1
			res := db.Model(&model.GameSave{}).
				Where("save_key = ? AND revision = ?", key, current.Revision).
				Updates(map[string]any{
					"payload":    payload,
					"revision":   revision,
					"updated_at": now,
				})
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return ports.ErrConflict
			}
		}

		return db.Create(&model.GameSaveHistory{
			SaveKey:   key,
			Revision:  revision,
			Payload:   payload,
			WrittenAt: now,
		}).Error
	})
}

// Delete drops the live save. History rows are kept.
func (s SnapshotStore) Delete(ctx context.Context, key string) error {
	return dbFor(ctx, s.db).WithContext(ctx).Where("save_key = ?", key).Delete(&model.GameSave{}).Error
}

// History returns up to limit past writes for key, newest first.
func (s SnapshotStore) History(ctx context.Context, key string, limit int) ([]Revision, error) {
	var rows []model.GameSaveHistory
	err := dbFor(ctx, s.db).WithContext(ctx).
		Where("save_key = ?", key).
		Order("revision DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]Revision, 0, len(rows))
	for _, r := range rows {
		out = append(out, Revision{Revision: r.Revision, Payload: r.Payload, WrittenAt: r.WrittenAt})
	}
	return out, nil
}
