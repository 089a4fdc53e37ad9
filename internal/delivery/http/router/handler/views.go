package handler

import (
	"time"

	"prepai/internal/domain/entity"
)

// UserView is the public projection of a user. Credentials never leave the server.
type UserView struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Image string `json:"image,omitempty"`
	Role  string `json:"role"`
}

func newUserView(u *entity.User) *UserView {
	if u == nil {
		return nil
	}

	return &UserView{
		ID:    u.ID.String(),
		Name:  u.Name,
		Email: u.Email,
		Image: u.AvatarURL,
		Role:  entity.RoleOrDefault(u.Role).String(),
	}
}

// ProblemView is the JSON shape of a DSA problem.
type ProblemView struct {
	ID              string            `json:"id"`
	Title           string            `json:"title"`
	Description     string            `json:"description"`
	Difficulty      string            `json:"difficulty"`
	Topics          []string          `json:"topics"`
	TestCases       []entity.TestCase `json:"testCases"`
	Solution        entity.Solution   `json:"solution"`
	Hints           []string          `json:"hints"`
	TimeComplexity  string            `json:"timeComplexity"`
	SpaceComplexity string            `json:"spaceComplexity"`
	CreatedAt       time.Time         `json:"createdAt"`
}

func newProblemView(p *entity.DSAProblem) *ProblemView {
	return &ProblemView{
		ID:              p.ID.String(),
		Title:           p.Title,
		Description:     p.Description,
		Difficulty:      string(p.Difficulty),
		Topics:          nonNil(p.Topics),
		TestCases:       nonNil(p.TestCases),
		Solution:        p.Solution,
		Hints:           nonNil(p.Hints),
		TimeComplexity:  p.TimeComplexity,
		SpaceComplexity: p.SpaceComplexity,
		CreatedAt:       p.CreatedAt,
	}
}

// QuestionView is the JSON shape of an interview question.
type QuestionView struct {
	ID                string    `json:"id"`
	Category          string    `json:"category"`
	Role              string    `json:"role"`
	Difficulty        string    `json:"difficulty"`
	Question          string    `json:"question"`
	ExpectedAnswer    string    `json:"expectedAnswer"`
	Keywords          []string  `json:"keywords"`
	FollowUpQuestions []string  `json:"followUpQuestions"`
	CreatedAt         time.Time `json:"createdAt"`
}

func newQuestionView(q *entity.InterviewQuestion) *QuestionView {
	return &QuestionView{
		ID:                q.ID.String(),
		Category:          string(q.Category),
		Role:              q.Role,
		Difficulty:        string(q.Difficulty),
		Question:          q.Question,
		ExpectedAnswer:    q.ExpectedAnswer,
		Keywords:          nonNil(q.Keywords),
		FollowUpQuestions: nonNil(q.FollowUpQuestions),
		CreatedAt:         q.CreatedAt,
	}
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}

	return s
}
