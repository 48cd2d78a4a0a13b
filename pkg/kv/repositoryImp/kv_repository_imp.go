package repositoryImp

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"orchardlog/entities"
	"orchardlog/pkg/kv/repository"
)

type kvRepo struct{ db *gorm.DB }

func NewSQLite(db *gorm.DB) repository.KVRepository { return &kvRepo{db} }

func (r *kvRepo) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var rows []entities.KVEntry
	// Find instead of First: a missing key is normal and should not hit the gorm error log
	if err := r.db.WithContext(ctx).Where("entry_key = ?", key).Limit(1).Find(&rows).Error; err != nil {
		return nil, false, fmt.Errorf("kv get %q: %w", key, err)
	}
	if len(rows) == 0 {
		return nil, false, nil
	}
	return []byte(rows[0].Value), true, nil
}

func (r *kvRepo) Put(ctx context.Context, key string, value []byte) error {
	e := entities.KVEntry{Key: key, Value: string(value), UpdatedAt: time.Now()}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "entry_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&e).Error
	if err != nil {
		return fmt.Errorf("kv put %q: %w", key, err)
	}
	return nil
}
