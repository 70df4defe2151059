package store

import (
	"encoding/json"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Collection is the single table backing the store: one row per collection,
// the records themselves as a jsonb payload.
type Collection struct {
	Name string `gorm:"primaryKey;size:64"`
	Data []byte `gorm:"type:jsonb;not null"`
}

type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Load(collection string, out any) error {
	var row Collection
	if err := s.db.First(&row, "name = ?", collection).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return json.Unmarshal([]byte("[]"), out)
		}
		return err
	}
	return json.Unmarshal(row.Data, out)
}

func (s *GormStore) Save(collection string, records any) error {
	data, err := json.Marshal(records)
	if err != nil {
		return err
	}
	row := Collection{Name: collection, Data: data}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"data"}),
	}).Create(&row).Error
}
