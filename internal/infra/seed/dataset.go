// Package seed provides the reference practice content loaded by the seed command.
package seed

import (
	_ "embed"
	"sync"

	"prepai/internal/domain/entity"
	"prepai/internal/domain/service"
	"prepai/internal/errors"

	"gopkg.in/yaml.v3"
)

//go:embed dataset.yaml
var embeddedDataset []byte

type problemRecord struct {
	Title           string            `yaml:"title"`
	Description     string            `yaml:"description"`
	Difficulty      entity.Difficulty `yaml:"difficulty"`
	Topics          []string          `yaml:"topics"`
	TestCases       []entity.TestCase `yaml:"testCases"`
	Solution        entity.Solution   `yaml:"solution"`
	Hints           []string          `yaml:"hints"`
	TimeComplexity  string            `yaml:"timeComplexity"`
	SpaceComplexity string            `yaml:"spaceComplexity"`
}

type questionRecord struct {
	Category          entity.QuestionCategory `yaml:"category"`
	Role              string                  `yaml:"role"`
	Difficulty        entity.Difficulty       `yaml:"difficulty"`
	Question          string                  `yaml:"question"`
	ExpectedAnswer    string                  `yaml:"expectedAnswer"`
	Keywords          []string                `yaml:"keywords"`
	FollowUpQuestions []string                `yaml:"followUpQuestions"`
}

type document struct {
	Problems  []problemRecord  `yaml:"problems"`
	Questions []questionRecord `yaml:"questions"`
}

// Dataset is a YAML-backed SeedSource. The document is decoded once and validated on first use.
type Dataset struct {
	raw []byte

	once sync.Once
	doc  *document
	err  error
}

// NewEmbeddedDataset returns the dataset compiled into the binary.
func NewEmbeddedDataset() service.SeedSource {
	return NewDataset(embeddedDataset)
}

// NewDataset parses raw YAML lazily.
func NewDataset(raw []byte) *Dataset {
	return &Dataset{raw: raw}
}

func (d *Dataset) load() (*document, error) {
	d.once.Do(func() {
		var doc document
		if err := yaml.Unmarshal(d.raw, &doc); err != nil {
			d.err = errors.Wrap(err, "failed to decode seed dataset")

			return
		}
		if err := doc.validate(); err != nil {
			d.err = err

			return
		}
		d.doc = &doc
	})

	return d.doc, d.err
}

// Problems returns fresh copies of the dataset problems.
func (d *Dataset) Problems() ([]*entity.DSAProblem, error) {
	doc, err := d.load()
	if err != nil {
		return nil, err
	}

	problems := make([]*entity.DSAProblem, 0, len(doc.Problems))
	for _, p := range doc.Problems {
		problems = append(problems, &entity.DSAProblem{
			Title:           p.Title,
			Description:     p.Description,
			Difficulty:      p.Difficulty,
			Topics:          p.Topics,
			TestCases:       p.TestCases,
			Solution:        p.Solution,
			Hints:           p.Hints,
			TimeComplexity:  p.TimeComplexity,
			SpaceComplexity: p.SpaceComplexity,
		})
	}

	return problems, nil
}

// Questions returns fresh copies of the dataset interview questions.
func (d *Dataset) Questions() ([]*entity.InterviewQuestion, error) {
	doc, err := d.load()
	if err != nil {
		return nil, err
	}

	questions := make([]*entity.InterviewQuestion, 0, len(doc.Questions))
	for _, q := range doc.Questions {
		questions = append(questions, &entity.InterviewQuestion{
			Category:          q.Category,
			Role:              q.Role,
			Difficulty:        q.Difficulty,
			Question:          q.Question,
			ExpectedAnswer:    q.ExpectedAnswer,
			Keywords:          q.Keywords,
			FollowUpQuestions: q.FollowUpQuestions,
		})
	}

	return questions, nil
}

func (doc *document) validate() error {
	titles := make(map[string]struct{}, len(doc.Problems))
	for i, p := range doc.Problems {
		if p.Title == "" {
			return errors.Errorf("problem %d has no title", i)
		}
		if !p.Difficulty.IsValid() {
			return errors.Errorf("problem %q has unknown difficulty %q", p.Title, p.Difficulty)
		}
		if _, dup := titles[p.Title]; dup {
			return errors.Errorf("problem %q is listed twice", p.Title)
		}
		titles[p.Title] = struct{}{}
	}

	for i, q := range doc.Questions {
		if q.Question == "" {
			return errors.Errorf("question %d has no text", i)
		}
		if !q.Category.IsValid() {
			return errors.Errorf("question %d has unknown category %q", i, q.Category)
		}
		if !q.Difficulty.IsValid() {
			return errors.Errorf("question %d has unknown difficulty %q", i, q.Difficulty)
		}
	}

	return nil
}
