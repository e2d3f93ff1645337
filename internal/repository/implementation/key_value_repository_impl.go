package implementation

import (
	"context"
	"errors"

	"ai-notetaking-be/internal/model"
	"ai-notetaking-be/internal/repository/contract"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type KeyValueRepositoryImpl struct {
	db *gorm.DB
}

func NewKeyValueRepository(db *gorm.DB) contract.KeyValueRepository {
	return &KeyValueRepositoryImpl{db: db}
}

func (r *KeyValueRepositoryImpl) Get(ctx context.Context, key string) ([]byte, error) {
	var m model.KeyValue
	if err := r.db.WithContext(ctx).Where("key = ?", key).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, contract.ErrKeyNotFound
		}
		return nil, err
	}
	return []byte(m.Value), nil
}

func (r *KeyValueRepositoryImpl) Set(ctx context.Context, key string, value []byte) error {
	m := model.KeyValue{Key: key, Value: datatypes.JSON(value)}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&m).Error
}

func (r *KeyValueRepositoryImpl) Delete(ctx context.Context, key string) error {
	return r.db.WithContext(ctx).Where("key = ?", key).Delete(&model.KeyValue{}).Error
}
