package seed

import (
	"testing"

	"prepai/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedDataset(t *testing.T) {
	source := NewEmbeddedDataset()

	problems, err := source.Problems()
	require.NoError(t, err)
	require.Len(t, problems, 3)

	titles := make([]string, 0, len(problems))
	for _, p := range problems {
		titles = append(titles, p.Title)
		assert.Equal(t, entity.DifficultyEasy, p.Difficulty)
		assert.NotEmpty(t, p.TestCases)
		assert.Contains(t, p.Solution.Code, "javascript")
		assert.Contains(t, p.Solution.Code, "python")
		assert.Len(t, p.Hints, 3)
	}
	assert.Equal(t, []string{"Two Sum", "Valid Parentheses", "Binary Tree Inorder Traversal"}, titles)
	assert.Equal(t, []string{"Array", "Hash Table"}, problems[0].Topics)
	assert.Equal(t, "[0,1]", problems[0].TestCases[0].Output)
	assert.Equal(t, "O(h)", problems[2].Solution.SpaceComplexity)
	assert.Contains(t, problems[1].Solution.Code["python"], "return len(stack) == 0")

	questions, err := source.Questions()
	require.NoError(t, err)
	require.Len(t, questions, 3)
	assert.Equal(t, entity.CategoryTechnical, questions[0].Category)
	assert.Equal(t, entity.CategoryBehavioral, questions[1].Category)
	assert.Equal(t, entity.CategorySystemDesign, questions[2].Category)
	assert.Equal(t, entity.DifficultyHard, questions[2].Difficulty)
	for _, q := range questions {
		assert.Equal(t, "SDE", q.Role)
		assert.Len(t, q.FollowUpQuestions, 3)
	}
}

func TestDataset_ReturnsFreshCopies(t *testing.T) {
	source := NewEmbeddedDataset()

	first, err := source.Problems()
	require.NoError(t, err)
	first[0].Title = "mutated"

	second, err := source.Problems()
	require.NoError(t, err)
	assert.Equal(t, "Two Sum", second[0].Title)
}

func TestDataset_RejectsInvalidDocuments(t *testing.T) {
	tests := map[string]string{
		"malformed":          "problems: [",
		"missing title":      "problems:\n  - difficulty: Easy\n",
		"unknown difficulty": "problems:\n  - title: X\n    difficulty: Trivial\n",
		"duplicate title":    "problems:\n  - title: X\n    difficulty: Easy\n  - title: X\n    difficulty: Easy\n",
		"unknown category":   "questions:\n  - question: Q\n    category: trivia\n    difficulty: Easy\n",
	}

	for name, raw := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := NewDataset([]byte(raw)).Problems()
			assert.Error(t, err)
		})
	}
}
