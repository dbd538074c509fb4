package models

import (
	"fmt"

	"github.com/jinzhu/gorm"
)

// A Run records one enhancement applied to an image, together with the
// files it produced. Runs are append-only history; the images themselves
// are never stored in the database.
type Run struct {
	gorm.Model
	Source string
	Method string
	Gamma  float64
	Output string
	Report string
}

func (r Run) String() string {
	if r.Gamma > 0 {
		return fmt.Sprintf("%s (gamma=%.2f) on %s", r.Method, r.Gamma, r.Source)
	}
	return fmt.Sprintf("%s on %s", r.Method, r.Source)
}

// Create records the run in the DB.
func (r *Run) Create(db *gorm.DB) error {
	return db.Create(r).Error
}

// ListRuns returns all recorded runs, most recent first.
func ListRuns(db *gorm.DB) ([]Run, error) {
	runs := []Run{}
	err := db.Order("created_at desc").Find(&runs).Error
	return runs, err
}
