package entity

import "time"

type ContactMessage struct {
	ID          uint64
	ReferenceID string
	Name        string
	Email       string
	Company     *string
	Subject     string
	Message     string
	RemoteIP    string
	CreatedAt   time.Time
}
