package model

import (
	"time"

	"gorm.io/datatypes"
)

type KeyValue struct {
	Key       string         `gorm:"type:varchar(255);primaryKey"`
	Value     datatypes.JSON `gorm:"type:jsonb;not null"`
	CreatedAt time.Time      `gorm:"autoCreateTime"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"`
}

func (KeyValue) TableName() string {
	return "key_values"
}
