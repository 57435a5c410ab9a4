package domain

import (
	"time"

	"github.com/google/uuid"
)

type File struct {
	ID        string
	Name      string
	URL       string
	OwnerID   string
	CreatedAt time.Time
}

func NewFile(name, url, ownerID string) *File {
	return &File{
		ID:        uuid.NewString(),
		Name:      name,
		URL:       url,
		OwnerID:   ownerID,
		CreatedAt: time.Now().UTC(),
	}
}
