package postgres

import (
	"context"
	"fmt"
	"testing"

	"prepai/internal/domain/entity"
	"prepai/internal/domain/repository"
	"prepai/internal/errors"
	"prepai/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an isolated in-memory SQLite database with the persistence models migrated.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Discard,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&model.UserModel{},
		&model.AuthenticationModel{},
		&model.ProblemModel{},
		&model.QuestionModel{},
	))

	return db
}

func TestUserRepository_CreateAndFind(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := &entity.User{Email: "ada@example.com", Name: "Ada", AvatarURL: "https://img/ada"}
	require.NoError(t, repo.Create(ctx, user))
	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.Equal(t, entity.RoleUser, user.Role)

	byEmail, err := repo.FindByEmail(ctx, "ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)
	assert.Equal(t, "https://img/ada", byEmail.AvatarURL)

	byID, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ada", byID.Name)

	role, err := repo.FindRoleByEmail(ctx, "ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleUser, role)
}

func TestUserRepository_NotFoundAndConflict(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	_, err := repo.FindByEmail(ctx, "missing@example.com")
	assert.True(t, errors.Is(err, repository.ErrUserNotFound))

	_, err = repo.FindRoleByEmail(ctx, "missing@example.com")
	assert.True(t, errors.Is(err, repository.ErrUserNotFound))

	_, err = repo.FindByID(ctx, uuid.New())
	assert.True(t, errors.Is(err, repository.ErrUserNotFound))

	require.NoError(t, repo.Create(ctx, &entity.User{Email: "dup@example.com"}))
	err = repo.Create(ctx, &entity.User{Email: "dup@example.com"})
	assert.True(t, errors.Is(err, repository.ErrUserConflict))
}

func TestUserRepository_StoresAdminRole(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &entity.User{Email: "root@example.com", Role: entity.RoleAdmin}))

	role, err := repo.FindRoleByEmail(ctx, "root@example.com")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, role)
}

func TestAuthRepository(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	repo := NewAuthRepository(db)
	ctx := context.Background()

	user := &entity.User{Email: "ada@example.com"}
	require.NoError(t, users.Create(ctx, user))

	auth := &entity.Authentication{
		UserID:         user.ID,
		Provider:       entity.ProviderTypeCredentials,
		ProviderUserID: user.Email,
		PasswordHash:   "hash",
	}
	require.NoError(t, repo.CreateAuthentication(ctx, auth))
	assert.NotEqual(t, uuid.Nil, auth.ID)

	found, err := repo.FindAuthentication(ctx, entity.ProviderTypeCredentials, user.Email)
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.UserID)
	assert.Equal(t, "hash", found.PasswordHash)

	byUser, err := repo.FindAuthenticationByUserIDAndProvider(ctx, user.ID, entity.ProviderTypeCredentials)
	require.NoError(t, err)
	assert.Equal(t, auth.ID, byUser.ID)

	_, err = repo.FindAuthenticationByUserIDAndProvider(ctx, user.ID, entity.ProviderTypeGoogle)
	assert.True(t, errors.Is(err, repository.ErrAuthNotFound))

	err = repo.CreateAuthentication(ctx, &entity.Authentication{
		UserID:         user.ID,
		Provider:       entity.ProviderTypeCredentials,
		ProviderUserID: user.Email,
	})
	assert.True(t, errors.Is(err, repository.ErrAuthConflict))
}

func TestTransactionManager_RollsBackOnError(t *testing.T) {
	db := newTestDB(t)
	tm := NewTransactionManager(db)
	ctx := context.Background()
	boom := errors.New("boom")

	err := tm.Execute(ctx, func(f repository.RepositoryFactory) error {
		if err := f.UserRepo().Create(ctx, &entity.User{Email: "rolled@example.com"}); err != nil {
			return err
		}

		return boom
	})
	assert.True(t, errors.Is(err, boom))

	_, err = NewUserRepository(db).FindByEmail(ctx, "rolled@example.com")
	assert.True(t, errors.Is(err, repository.ErrUserNotFound))

	err = tm.Execute(ctx, func(f repository.RepositoryFactory) error {
		return f.UserRepo().Create(ctx, &entity.User{Email: "kept@example.com"})
	})
	require.NoError(t, err)

	_, err = NewUserRepository(db).FindByEmail(ctx, "kept@example.com")
	assert.NoError(t, err)
}

func TestProblemRepository(t *testing.T) {
	db := newTestDB(t)
	repo := NewProblemRepository(db)
	ctx := context.Background()

	twoSum := &entity.DSAProblem{
		Title:       "Two Sum",
		Description: "Find two numbers adding up to target.",
		Difficulty:  entity.DifficultyEasy,
		Topics:      []string{"Array", "Hash Table"},
		TestCases:   []entity.TestCase{{Input: "nums = [2,7,11,15], target = 9", Output: "[0,1]"}},
		Solution: entity.Solution{
			Approach:        "Hash map of complements",
			TimeComplexity:  "O(n)",
			SpaceComplexity: "O(n)",
			Code:            map[string]string{"python": "def two_sum(): pass"},
		},
		Hints:          []string{"Use a hash map"},
		TimeComplexity: "O(n)",
	}
	parens := &entity.DSAProblem{
		Title:       "Valid Parentheses",
		Description: "Check brackets.",
		Difficulty:  entity.DifficultyEasy,
		Topics:      []string{"Stack", "String"},
	}
	require.NoError(t, repo.Create(ctx, twoSum))
	require.NoError(t, repo.Create(ctx, parens))

	found, err := repo.FindByTitle(ctx, "Two Sum")
	require.NoError(t, err)
	assert.Equal(t, twoSum.ID, found.ID)
	assert.Equal(t, []string{"Array", "Hash Table"}, found.Topics)
	assert.Equal(t, twoSum.TestCases, found.TestCases)
	assert.Equal(t, twoSum.Solution, found.Solution)
	assert.Equal(t, []string{}, parensHints(t, repo, parens.ID))

	_, err = repo.FindByTitle(ctx, "Missing")
	assert.True(t, errors.Is(err, repository.ErrContentNotFound))

	err = repo.Create(ctx, &entity.DSAProblem{Title: "Two Sum", Description: "dup", Difficulty: entity.DifficultyEasy})
	assert.True(t, errors.Is(err, repository.ErrContentConflict))

	all, err := repo.List(ctx, repository.ProblemFilter{Difficulty: entity.DifficultyEasy})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	stack, err := repo.List(ctx, repository.ProblemFilter{Topic: "Stack"})
	require.NoError(t, err)
	require.Len(t, stack, 1)
	assert.Equal(t, "Valid Parentheses", stack[0].Title)

	hard, err := repo.List(ctx, repository.ProblemFilter{Difficulty: entity.DifficultyHard})
	require.NoError(t, err)
	assert.Empty(t, hard)

	page, err := repo.List(ctx, repository.ProblemFilter{Limit: 1})
	require.NoError(t, err)
	assert.Len(t, page, 1)
}

func parensHints(t *testing.T, repo repository.ProblemRepository, id uuid.UUID) []string {
	t.Helper()

	problem, err := repo.FindByID(context.Background(), id)
	require.NoError(t, err)

	return problem.Hints
}

func TestQuestionRepository(t *testing.T) {
	db := newTestDB(t)
	repo := NewQuestionRepository(db)
	ctx := context.Background()

	question := &entity.InterviewQuestion{
		Category:          entity.CategoryBehavioral,
		Role:              "SDE",
		Difficulty:        entity.DifficultyMedium,
		Question:          "Tell me about a time you disagreed with a teammate.",
		Keywords:          []string{"conflict", "communication"},
		FollowUpQuestions: []string{"What would you do differently?"},
	}
	require.NoError(t, repo.Create(ctx, question))

	found, err := repo.FindByQuestion(ctx, question.Question)
	require.NoError(t, err)
	assert.Equal(t, question.ID, found.ID)
	assert.Equal(t, question.Keywords, found.Keywords)

	_, err = repo.FindByQuestion(ctx, "unknown")
	assert.True(t, errors.Is(err, repository.ErrContentNotFound))

	listed, err := repo.List(ctx, repository.QuestionFilter{Category: entity.CategoryBehavioral, Role: "SDE"})
	require.NoError(t, err)
	assert.Len(t, listed, 1)

	none, err := repo.List(ctx, repository.QuestionFilter{Category: entity.CategoryTechnical})
	require.NoError(t, err)
	assert.Empty(t, none)
}
