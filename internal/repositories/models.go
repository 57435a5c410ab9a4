package repository

import "time"

// Row types are the GORM mapping of the domain; mappers.go translates in
// both directions. Domain entities never carry gorm tags.

type UserRow struct {
	ID           string `gorm:"primaryKey;size:36"`
	Email        string `gorm:"uniqueIndex;not null"`
	Username     string `gorm:"not null"`
	PasswordHash string `gorm:"not null"`
	Role         string `gorm:"type:varchar(20);not null"`
	CreatedAt    time.Time
}

func (UserRow) TableName() string { return "users" }

type TaskRow struct {
	ID          string    `gorm:"primaryKey;size:36"`
	Title       string    `gorm:"not null"`
	Description string    `gorm:"not null"`
	Priority    string    `gorm:"type:varchar(10);not null"`
	Deadline    time.Time `gorm:"not null"`
	Status      string    `gorm:"type:varchar(20);not null"`
	OwnerID     string    `gorm:"size:36;index;not null"`
	Version     uint      `gorm:"not null;default:1"`
	ChangedAt   time.Time
	CreatedAt   time.Time

	Owner     *UserRow      `gorm:"foreignKey:OwnerID"`
	Assignees []UserRow     `gorm:"many2many:task_assignees;joinForeignKey:TaskID;joinReferences:UserID"`
	Solutions []SolutionRow `gorm:"foreignKey:TaskID"`
}

func (TaskRow) TableName() string { return "tasks" }

type SolutionRow struct {
	ID                string `gorm:"primaryKey;size:36"`
	TaskID            string `gorm:"size:36;index;not null"`
	FileID            string `gorm:"size:36;not null"`
	CreatorID         string `gorm:"size:36;index;not null"`
	AdditionalDetails string
	Status            string `gorm:"type:varchar(20);not null"`
	Version           uint   `gorm:"not null;default:1"`
	CreatedAt         time.Time
	UpdatedAt         time.Time

	File *FileRow `gorm:"foreignKey:FileID"`
}

func (SolutionRow) TableName() string { return "solutions" }

type ReviewRow struct {
	ID         string `gorm:"primaryKey;size:36"`
	SolutionID string `gorm:"size:36;index;not null"`
	ReviewerID string `gorm:"size:36;not null"`
	Status     string `gorm:"type:varchar(20);not null"`
	Feedback   string
	CreatedAt  time.Time
}

func (ReviewRow) TableName() string { return "reviews" }

type FileRow struct {
	ID        string `gorm:"primaryKey;size:36"`
	Name      string `gorm:"not null"`
	URL       string `gorm:"not null"`
	OwnerID   string `gorm:"size:36;index;not null"`
	CreatedAt time.Time
}

func (FileRow) TableName() string { return "files" }

// AllModels is the AutoMigrate set.
func AllModels() []any {
	return []any{&UserRow{}, &TaskRow{}, &SolutionRow{}, &ReviewRow{}, &FileRow{}}
}
