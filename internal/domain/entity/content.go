package entity

import (
	"time"

	"github.com/google/uuid"
)

// Difficulty grades problems and questions.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// IsValid checks if the Difficulty is a valid value.
func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	default:
		return false
	}
}

// QuestionCategory groups interview questions.
type QuestionCategory string

const (
	CategoryTechnical    QuestionCategory = "technical"
	CategoryBehavioral   QuestionCategory = "behavioral"
	CategorySystemDesign QuestionCategory = "system_design"
)

// IsValid checks if the QuestionCategory is a valid value.
func (c QuestionCategory) IsValid() bool {
	switch c {
	case CategoryTechnical, CategoryBehavioral, CategorySystemDesign:
		return true
	default:
		return false
	}
}

// DSAProblem is a coding problem with its test cases, reference solution and hints.
type DSAProblem struct {
	ID              uuid.UUID
	Title           string
	Description     string
	Difficulty      Difficulty
	Topics          []string
	TestCases       []TestCase
	Solution        Solution
	Hints           []string
	TimeComplexity  string
	SpaceComplexity string
	CreatedAt       time.Time
}

// TestCase is one input/output example of a problem.
type TestCase struct {
	Input       string `json:"input" yaml:"input"`
	Output      string `json:"output" yaml:"output"`
	Explanation string `json:"explanation" yaml:"explanation"`
}

// Solution is the reference approach, keyed by language in Code.
type Solution struct {
	Approach        string            `json:"approach" yaml:"approach"`
	TimeComplexity  string            `json:"timeComplexity" yaml:"timeComplexity"`
	SpaceComplexity string            `json:"spaceComplexity" yaml:"spaceComplexity"`
	Code            map[string]string `json:"code" yaml:"code"`
}

// InterviewQuestion is a bank entry used by mock interviews.
type InterviewQuestion struct {
	ID                uuid.UUID
	Category          QuestionCategory
	Role              string // Target job role, e.g. "SDE".
	Difficulty        Difficulty
	Question          string
	ExpectedAnswer    string
	Keywords          []string
	FollowUpQuestions []string
	CreatedAt         time.Time
}
