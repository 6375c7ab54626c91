package database

import (
	"errors"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/inkwell-blog/backend/models"
)

type DailyStatRepo struct {
	db *gorm.DB
}

func NewDailyStatRepo(db *gorm.DB) *DailyStatRepo {
	return &DailyStatRepo{db}
}

func (r *DailyStatRepo) WithTx(tx *gorm.DB) *DailyStatRepo {
	return &DailyStatRepo{tx}
}

// FindByDate returns the stat record for exactly the given date, or
// nil when none was recorded.
func (r *DailyStatRepo) FindByDate(date datatypes.Date) (*models.DailyStat, error) {
	var stat models.DailyStat
	err := r.db.First(&stat, "date = ?", date).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &stat, nil
}

// FindAll returns the full stat series ordered by date ascending.
func (r *DailyStatRepo) FindAll() ([]*models.DailyStat, error) {
	var stats []*models.DailyStat
	err := r.db.Order("date ASC").Find(&stats).Error
	return stats, err
}

// Add inserts a new daily stat record into the database
func (r *DailyStatRepo) Add(stat *models.DailyStat) error {
	return r.db.Create(stat).Error
}
