package impl

import (
	"context"
	"log/slog"

	deliverycontext "prepai/internal/delivery/context"
	"prepai/internal/domain/entity"
	"prepai/internal/domain/repository"
	"prepai/internal/domain/service"
	"prepai/internal/errors"
	"prepai/internal/usecase"

	"go.uber.org/fx"
)

// seedService implements the SeedUsecase interface.
type seedService struct {
	txManager repository.TransactionManager
	source    service.SeedSource
	logger    *slog.Logger
}

// SeedServiceParams holds dependencies for SeedService, injected by Fx.
type SeedServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Source    service.SeedSource
	Logger    *slog.Logger
}

// NewSeedService creates the dataset loader.
func NewSeedService(params SeedServiceParams) usecase.SeedUsecase {
	return &seedService{
		txManager: params.TxManager,
		source:    params.Source,
		logger:    params.Logger,
	}
}

func (srv *seedService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Seed inserts the dataset in one transaction. Entries already stored under the same title or
// question text are skipped, so running it again changes nothing.
func (srv *seedService) Seed(ctx context.Context) (*usecase.SeedReport, error) {
	problems, err := srv.source.Problems()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load seed problems")
	}

	questions, err := srv.source.Questions()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load seed questions")
	}

	report := &usecase.SeedReport{}
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := srv.seedProblems(ctx, repoFactory.ProblemRepo(), problems, report); err != nil {
			return err
		}

		return srv.seedQuestions(ctx, repoFactory.QuestionRepo(), questions, report)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute seed transaction")
	}

	srv.log(ctx).Info("Seed completed",
		slog.Int("problemsCreated", report.ProblemsCreated),
		slog.Int("problemsSkipped", report.ProblemsSkipped),
		slog.Int("questionsCreated", report.QuestionsCreated),
		slog.Int("questionsSkipped", report.QuestionsSkipped))

	return report, nil
}

func (srv *seedService) seedProblems(
	ctx context.Context,
	repo repository.ProblemRepository,
	problems []*entity.DSAProblem,
	report *usecase.SeedReport,
) error {
	for _, problem := range problems {
		_, err := repo.FindByTitle(ctx, problem.Title)
		if err == nil {
			report.ProblemsSkipped++

			continue
		}
		if !errors.Is(err, repository.ErrContentNotFound) {
			return errors.Wrapf(err, "failed to look up problem %q", problem.Title)
		}

		if err := repo.Create(ctx, problem); err != nil {
			return errors.Wrapf(err, "failed to create problem %q", problem.Title)
		}
		report.ProblemsCreated++
		srv.log(ctx).Debug("Created problem", slog.String("title", problem.Title))
	}

	return nil
}

func (srv *seedService) seedQuestions(
	ctx context.Context,
	repo repository.QuestionRepository,
	questions []*entity.InterviewQuestion,
	report *usecase.SeedReport,
) error {
	for _, question := range questions {
		_, err := repo.FindByQuestion(ctx, question.Question)
		if err == nil {
			report.QuestionsSkipped++

			continue
		}
		if !errors.Is(err, repository.ErrContentNotFound) {
			return errors.Wrap(err, "failed to look up interview question")
		}

		if err := repo.Create(ctx, question); err != nil {
			return errors.Wrap(err, "failed to create interview question")
		}
		report.QuestionsCreated++
	}

	return nil
}
