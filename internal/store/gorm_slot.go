package store

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RecordSlot is the database row backing a GormSlot: one named slot, one
// serialized payload.
type RecordSlot struct {
	Name      string    `gorm:"primaryKey;type:varchar(128)"`
	Payload   []byte    `gorm:"type:bytea;not null"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (RecordSlot) TableName() string {
	return "record_slots"
}

// GormSlot persists the collection as a single upserted row in Postgres.
type GormSlot struct {
	db   *gorm.DB
	name string
}

func NewGormSlot(db *gorm.DB, name string) *GormSlot {
	if name == "" {
		name = SlotName
	}
	return &GormSlot{db: db, name: name}
}

func (g *GormSlot) Load(ctx context.Context) ([]byte, error) {
	var row RecordSlot
	err := g.db.WithContext(ctx).First(&row, "name = ?", g.name).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return row.Payload, nil
}

func (g *GormSlot) Store(ctx context.Context, data []byte) error {
	row := RecordSlot{Name: g.name, Payload: data}
	return g.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
		}).
		Create(&row).Error
}
