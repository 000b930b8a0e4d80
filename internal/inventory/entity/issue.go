package entity

import "time"

// IssueEvent is one withdrawal from the stock pool. The log is append-only:
// events are never updated or deleted, and deleting a CatalogItem does not
// cascade into its history.
type IssueEvent struct {
	ID        string    `json:"id" gorm:"primaryKey;size:36"`
	Name      string    `json:"name" gorm:"size:200;not null;index:idx_issue_events_key,priority:1"`
	Category  string    `json:"category" gorm:"size:100;not null;index:idx_issue_events_key,priority:2"`
	Quantity  int64     `json:"quantity" gorm:"not null"`
	IssueDate time.Time `json:"issueDate" gorm:"not null;index"`
	CreatedAt time.Time `json:"createdAt"`
}

func (IssueEvent) TableName() string {
	return "issue_events"
}
