// Package model defines the database schema.
package model

import (
	"gorm.io/gorm"
)

// AutoMigrate creates or updates the tables for the given models.
// With no names it migrates everything.
func AutoMigrate(db *gorm.DB, names ...string) error {
	all := map[string]any{
		"User": &User{},
		"Note": &Note{},
	}

	if len(names) == 0 {
		return db.AutoMigrate(&User{}, &Note{})
	}

	for _, name := range names {
		m, ok := all[name]
		if !ok {
			continue
		}
		if err := db.AutoMigrate(m); err != nil {
			return err
		}
	}
	return nil
}
