package models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// DailyStat is one day of engagement metrics. The cumulative columns
// are running site-wide totals as of the stat's date; views and
// comments are the day-over-day deltas derived from the previous
// day's cumulative record.
type DailyStat struct {
	ID                 uuid.UUID      `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Date               datatypes.Date `json:"date" db:"date" gorm:"not null;uniqueIndex:uq_daily_stats_date"`
	CumulativeViews    int            `json:"cumulativeViews" db:"cumulative_views" gorm:"type:integer;not null;default:0"`
	CumulativeComments int            `json:"cumulativeComments" db:"cumulative_comments" gorm:"type:integer;not null;default:0"`
	Views              int            `json:"views" db:"views" gorm:"type:integer;not null;default:0"`
	Comments           int            `json:"comments" db:"comments" gorm:"type:integer;not null;default:0"`
}

func (s *DailyStat) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
