package model

import (
	"time"
)

type StudentStatus string

const (
	StatusActive   StudentStatus = "Active"
	StatusInactive StudentStatus = "Inactive"
	StatusOnLeave  StudentStatus = "On Leave"
)

// StudentStatuses lists every accepted enrollment status.
var StudentStatuses = []StudentStatus{StatusActive, StatusInactive, StatusOnLeave}

// Valid reports whether s is one of StudentStatuses.
func (s StudentStatus) Valid() bool {
	for _, candidate := range StudentStatuses {
		if s == candidate {
			return true
		}
	}
	return false
}

const (
	MinGPA = 0.0
	MaxGPA = 4.0
)

// Student is the row stored in the students table.
type Student struct {
	ID             string        `gorm:"primaryKey;type:varchar(36)" json:"id"`
	FirstName      string        `gorm:"type:varchar(100);not null;index" json:"firstName"`
	LastName       string        `gorm:"type:varchar(100);not null;index" json:"lastName"`
	Email          string        `gorm:"type:varchar(255);not null;uniqueIndex" json:"email"`
	Phone          string        `gorm:"type:varchar(50)" json:"phone"`
	DateOfBirth    string        `gorm:"type:varchar(10)" json:"dateOfBirth"` // YYYY-MM-DD or empty
	EnrollmentDate time.Time     `gorm:"not null" json:"enrollmentDate"`
	GPA            float64       `gorm:"not null;default:0" json:"gpa"`
	Status         StudentStatus `gorm:"type:varchar(20);not null;default:Active;index" json:"status"`
	CreatedAt      time.Time     `gorm:"index" json:"createdAt"`
	UpdatedAt      time.Time     `json:"updatedAt"`
}

// TableName pins the table name regardless of naming strategy.
func (Student) TableName() string {
	return "students"
}
