package entity

import "time"

// CalendarEvent is a scheduled activity shown on the center calendar.
type CalendarEvent struct {
	ID          string    `json:"id" gorm:"primaryKey;size:36"`
	Title       string    `json:"title" gorm:"size:200;not null"`
	Location    string    `json:"location" gorm:"size:200"`
	StartsAt    time.Time `json:"startsAt" gorm:"index;not null"`
	EndsAt      time.Time `json:"endsAt" gorm:"not null"`
	Description string    `json:"description" gorm:"size:500"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (CalendarEvent) TableName() string {
	return "calendar_events"
}
