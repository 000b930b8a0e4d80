package entity

import "time"

// Enrollment request lifecycle. A request starts pending and can move to
// approved or rejected exactly once; terminal states do not transition.
const (
	EnrollmentPending  = "pending"
	EnrollmentApproved = "approved"
	EnrollmentRejected = "rejected"
)

// ValidEnrollmentStatus reports whether s is a known lifecycle status.
func ValidEnrollmentStatus(s string) bool {
	return s == EnrollmentPending || s == EnrollmentApproved || s == EnrollmentRejected
}

// EnrollmentRequest is a parent's application to enroll a child.
type EnrollmentRequest struct {
	ID         string    `json:"id" gorm:"primaryKey;size:36"`
	ChildName  string    `json:"childName" gorm:"size:200;not null"`
	ParentName string    `json:"parentName" gorm:"size:200;not null"`
	Phone      string    `json:"phone" gorm:"size:50"`
	Email      string    `json:"email" gorm:"size:200"`
	StartDate  time.Time `json:"startDate" gorm:"not null"`
	Status     string    `json:"status" gorm:"size:20;index;not null"`
	Notes      string    `json:"notes" gorm:"size:500"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func (EnrollmentRequest) TableName() string {
	return "enrollment_requests"
}
