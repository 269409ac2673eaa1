package gormrepo

import (
	"context"

	"gorm.io/gorm"
)

type txCtxKey struct{}

// dbFor returns the transaction carried by ctx, or base outside one.
func dbFor(ctx context.Context, base *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txCtxKey{}).(*gorm.DB); ok && tx != nil {
		return tx
	}
	return base
}

// TxManager runs save writes in one transaction. Calls made inside fn
// join it rather than opening a nested one.
type TxManager struct {
	db *gorm.DB
}

func NewTxManager(db *gorm.DB) TxManager {
	return TxManager{db: db}
}

func (t TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txCtxKey{}).(*gorm.DB); ok {
		return fn(ctx)
	}
	return t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txCtxKey{}, tx))
	})
}
