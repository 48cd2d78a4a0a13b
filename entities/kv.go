package entities

import "time"

// KVEntry is one durable key holding a JSON-encoded value.
type KVEntry struct {
	Key       string `gorm:"column:entry_key;primaryKey;size:128"`
	Value     string `gorm:"type:text"`
	UpdatedAt time.Time
}

func (KVEntry) TableName() string { return "kv_entries" }
