package models

import "time"

// PageVisit суточная статистика заходов на страницу
type PageVisit struct {
	ID        uint   `gorm:"primaryKey"`
	Page      string `gorm:"type:varchar(100);not null;uniqueIndex:idx_page_visits_page_day"`
	Day       string `gorm:"type:varchar(10);not null;uniqueIndex:idx_page_visits_page_day"` // YYYY-MM-DD
	Count     int64  `gorm:"default:0;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
