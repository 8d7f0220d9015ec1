package models

import "time"

// BaseModel provides common persistence fields. IDs are allocated from
// the counters table, never by the database's own autoincrement, so the
// column is a plain primary key.
type BaseModel struct {
	ID        int64 `gorm:"primaryKey;autoIncrement:false"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CounterModel backs the per-collection id sequence. Value holds the
// last id handed out for the named collection.
type CounterModel struct {
	Name  string `gorm:"primaryKey;type:varchar(50)"`
	Value int64  `gorm:"not null"`
}

// TableName returns the table name for GORM
func (CounterModel) TableName() string {
	return "counters"
}
