package postgres

import (
	"context"
	"encoding/json"

	"prepai/internal/domain/entity"
	domainerrors "prepai/internal/domain/errors"
	"prepai/internal/domain/repository"
	"prepai/internal/errors"
	"prepai/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// problemRepository implements the domain.ProblemRepository interface.
type problemRepository struct {
	db *gorm.DB
}

// NewProblemRepository is the constructor for problemRepository.
func NewProblemRepository(db *gorm.DB) repository.ProblemRepository {
	return &problemRepository{db: db}
}

// Create persists a new problem.
func (repo *problemRepository) Create(ctx context.Context, problem *entity.DSAProblem) error {
	problemM := fromProblemDomain(problem)

	if err := repo.db.WithContext(ctx).Create(problemM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return errors.Wrapf(repository.ErrContentConflict, "problem %q", problem.Title)
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create problem")
	}

	problem.ID = problemM.ID
	problem.CreatedAt = problemM.CreatedAt

	return nil
}

// FindByID retrieves a problem by id.
func (repo *problemRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.DSAProblem, error) {
	return repo.first(ctx, "id = ?", id)
}

// FindByTitle retrieves a problem by its exact title.
func (repo *problemRepository) FindByTitle(ctx context.Context, title string) (*entity.DSAProblem, error) {
	return repo.first(ctx, "title = ?", title)
}

// List returns problems ordered by creation time.
func (repo *problemRepository) List(ctx context.Context, filter repository.ProblemFilter) ([]*entity.DSAProblem, error) {
	query := repo.db.WithContext(ctx).Model(&model.ProblemModel{})
	if filter.Difficulty != "" {
		query = query.Where("difficulty = ?", string(filter.Difficulty))
	}
	if filter.Topic != "" {
		var err error
		if query, err = whereJSONArrayContains(query, "topics", filter.Topic); err != nil {
			return nil, err
		}
	}

	var models []model.ProblemModel
	if err := paginate(query, filter.Limit, filter.Offset).Order("created_at, title").Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list problems")
	}

	problems := make([]*entity.DSAProblem, 0, len(models))
	for i := range models {
		problems = append(problems, toProblemDomain(&models[i]))
	}

	return problems, nil
}

func (repo *problemRepository) first(ctx context.Context, query string, args ...any) (*entity.DSAProblem, error) {
	var problemM model.ProblemModel
	if err := repo.db.WithContext(ctx).Where(query, args...).First(&problemM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrContentNotFound
		}

		return nil, errors.Wrap(err, "failed to find problem")
	}

	return toProblemDomain(&problemM), nil
}

// questionRepository implements the domain.QuestionRepository interface.
type questionRepository struct {
	db *gorm.DB
}

// NewQuestionRepository is the constructor for questionRepository.
func NewQuestionRepository(db *gorm.DB) repository.QuestionRepository {
	return &questionRepository{db: db}
}

// Create persists a new interview question.
func (repo *questionRepository) Create(ctx context.Context, question *entity.InterviewQuestion) error {
	questionM := fromQuestionDomain(question)

	if err := repo.db.WithContext(ctx).Create(questionM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrContentConflict
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create interview question")
	}

	question.ID = questionM.ID
	question.CreatedAt = questionM.CreatedAt

	return nil
}

// FindByQuestion retrieves a question by its exact text.
func (repo *questionRepository) FindByQuestion(ctx context.Context, question string) (*entity.InterviewQuestion, error) {
	var questionM model.QuestionModel
	if err := repo.db.WithContext(ctx).Where("question = ?", question).First(&questionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrContentNotFound
		}

		return nil, errors.Wrap(err, "failed to find interview question")
	}

	return toQuestionDomain(&questionM), nil
}

// List returns interview questions ordered by creation time.
func (repo *questionRepository) List(ctx context.Context, filter repository.QuestionFilter) ([]*entity.InterviewQuestion, error) {
	query := repo.db.WithContext(ctx).Model(&model.QuestionModel{})
	if filter.Category != "" {
		query = query.Where("category = ?", string(filter.Category))
	}
	if filter.Role != "" {
		query = query.Where("role = ?", filter.Role)
	}
	if filter.Difficulty != "" {
		query = query.Where("difficulty = ?", string(filter.Difficulty))
	}

	var models []model.QuestionModel
	if err := paginate(query, filter.Limit, filter.Offset).Order("created_at, question").Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list interview questions")
	}

	questions := make([]*entity.InterviewQuestion, 0, len(models))
	for i := range models {
		questions = append(questions, toQuestionDomain(&models[i]))
	}

	return questions, nil
}

func paginate(query *gorm.DB, limit, offset int) *gorm.DB {
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	return query
}

// whereJSONArrayContains filters rows whose JSON array column holds value.
func whereJSONArrayContains(query *gorm.DB, column, value string) (*gorm.DB, error) {
	switch query.Dialector.Name() {
	case "postgres":
		encoded, err := json.Marshal([]string{value})
		if err != nil {
			return nil, errors.Wrap(err, "failed to encode json filter")
		}

		return query.Where(column+" @> ?::jsonb", string(encoded)), nil
	case "sqlite":
		return query.Where("EXISTS (SELECT 1 FROM json_each(CAST("+column+" AS TEXT)) WHERE json_each.value = ?)", value), nil
	default:
		return nil, errors.Errorf("json array filter unsupported for dialect %s", query.Dialector.Name())
	}
}

func toProblemDomain(m *model.ProblemModel) *entity.DSAProblem {
	return &entity.DSAProblem{
		ID:              m.ID,
		Title:           m.Title,
		Description:     m.Description,
		Difficulty:      entity.Difficulty(m.Difficulty),
		Topics:          []string(m.Topics),
		TestCases:       []entity.TestCase(m.TestCases),
		Solution:        m.Solution.Data(),
		Hints:           []string(m.Hints),
		TimeComplexity:  m.TimeComplexity,
		SpaceComplexity: m.SpaceComplexity,
		CreatedAt:       m.CreatedAt,
	}
}

func fromProblemDomain(p *entity.DSAProblem) *model.ProblemModel {
	return &model.ProblemModel{
		ID:              p.ID,
		Title:           p.Title,
		Description:     p.Description,
		Difficulty:      string(p.Difficulty),
		Topics:          datatypes.NewJSONSlice(nonNil(p.Topics)),
		TestCases:       datatypes.NewJSONSlice(nonNil(p.TestCases)),
		Solution:        datatypes.NewJSONType(p.Solution),
		Hints:           datatypes.NewJSONSlice(nonNil(p.Hints)),
		TimeComplexity:  p.TimeComplexity,
		SpaceComplexity: p.SpaceComplexity,
	}
}

func toQuestionDomain(m *model.QuestionModel) *entity.InterviewQuestion {
	return &entity.InterviewQuestion{
		ID:                m.ID,
		Category:          entity.QuestionCategory(m.Category),
		Role:              m.Role,
		Difficulty:        entity.Difficulty(m.Difficulty),
		Question:          m.Question,
		ExpectedAnswer:    m.ExpectedAnswer,
		Keywords:          []string(m.Keywords),
		FollowUpQuestions: []string(m.FollowUpQuestions),
		CreatedAt:         m.CreatedAt,
	}
}

func fromQuestionDomain(q *entity.InterviewQuestion) *model.QuestionModel {
	return &model.QuestionModel{
		ID:                q.ID,
		Category:          string(q.Category),
		Role:              q.Role,
		Difficulty:        string(q.Difficulty),
		Question:          q.Question,
		ExpectedAnswer:    q.ExpectedAnswer,
		Keywords:          datatypes.NewJSONSlice(nonNil(q.Keywords)),
		FollowUpQuestions: datatypes.NewJSONSlice(nonNil(q.FollowUpQuestions)),
	}
}

// nonNil keeps empty lists encoded as [] rather than null.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}

	return s
}
