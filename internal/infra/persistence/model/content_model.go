package model

import (
	"time"

	"prepai/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ProblemModel mirrors the 'dsa_problems' table. List-shaped fields are JSON columns.
type ProblemModel struct {
	ID              uuid.UUID                            `gorm:"type:uuid;primaryKey"`
	Title           string                               `gorm:"type:varchar(255);uniqueIndex;not null"`
	Description     string                               `gorm:"type:text;not null"`
	Difficulty      string                               `gorm:"type:varchar(16);not null;index"`
	Topics          datatypes.JSONSlice[string]          `gorm:"not null"`
	TestCases       datatypes.JSONSlice[entity.TestCase] `gorm:"not null"`
	Solution        datatypes.JSONType[entity.Solution]  `gorm:"not null"`
	Hints           datatypes.JSONSlice[string]          `gorm:"not null"`
	TimeComplexity  string                               `gorm:"type:varchar(64)"`
	SpaceComplexity string                               `gorm:"type:varchar(64)"`
	CreatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProblemModel) TableName() string {
	return "dsa_problems"
}

// BeforeCreate assigns a UUID when the caller did not.
func (m *ProblemModel) BeforeCreate(_ *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}

	return nil
}

// QuestionModel mirrors the 'interview_questions' table.
type QuestionModel struct {
	ID                uuid.UUID                   `gorm:"type:uuid;primaryKey"`
	Category          string                      `gorm:"type:varchar(32);not null;index"`
	Role              string                      `gorm:"type:varchar(64);not null;index"`
	Difficulty        string                      `gorm:"type:varchar(16);not null"`
	Question          string                      `gorm:"type:text;uniqueIndex;not null"`
	ExpectedAnswer    string                      `gorm:"type:text"`
	Keywords          datatypes.JSONSlice[string] `gorm:"not null"`
	FollowUpQuestions datatypes.JSONSlice[string] `gorm:"not null"`
	CreatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (QuestionModel) TableName() string {
	return "interview_questions"
}

// BeforeCreate assigns a UUID when the caller did not.
func (m *QuestionModel) BeforeCreate(_ *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}

	return nil
}
