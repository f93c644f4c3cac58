package cmd

import (
	"database/sql"
	"fmt"

	"finsim/api"
	"finsim/internal/app"
	"finsim/internal/logger"
	"finsim/internal/notifier"
	"finsim/internal/repository"
	"finsim/internal/service"
	"finsim/internal/util"

	"go.uber.org/zap"

	_ "github.com/lib/pq"
)

const notifierBufferSize = 256

type Dependencies struct {
	Secrets    *util.Secrets
	ApiHandler *api.ApiHandler
	Notifier   *notifier.AsyncNotifier
	Logger     *zap.SugaredLogger
}

func CloseDependencies(deps *Dependencies) {
	// drain pending nudges before the db goes away
	deps.Notifier.Close()
	if err := deps.ApiHandler.Db.Close(); err != nil {
		deps.Logger.Errorf("failed to close db: %v", err)
	}
	_ = deps.Logger.Sync()
}

func InitializeDependencies() (*Dependencies, error) {
	lg := logger.New()

	secrets, err := util.LoadSecrets()
	if err != nil {
		return nil, fmt.Errorf("failed to load secrets: %w", err)
	}

	narrativeRepository, err := repository.NewNarrativeRepository(secrets.ChatGPTApiKey)
	if err != nil {
		return nil, err
	}

	dbConn, err := sql.Open("postgres", secrets.Db.ToConnectionStr())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to db: %w", err)
	}

	unitOfWork := repository.NewUnitOfWork(dbConn)
	portfolioRepository := repository.NewVirtualPortfolioRepository(dbConn)
	scenarioRepository := repository.NewSimulationScenarioRepository(dbConn)
	commitmentRepository := repository.NewCommitmentRepository(dbConn)
	behaviorLogRepository := repository.NewBehaviorLogRepository(dbConn)
	apiRequestRepository := repository.NewApiRequestRepository(dbConn)

	nudges := notifier.NewAsyncNotifier(notifierBufferSize, lg, notifier.LogHandler(lg))

	portfolioService := service.NewPortfolioService(unitOfWork, portfolioRepository)
	scenarioService := service.NewScenarioService(
		unitOfWork,
		scenarioRepository,
		narrativeRepository,
		nil,
		secrets.NarrativeTimeout(),
	)
	commitmentService := service.NewCommitmentService(
		unitOfWork,
		portfolioRepository,
		commitmentRepository,
		behaviorLogRepository,
		nudges,
	)
	planningApp := app.NewPlanningApp(nudges)

	apiHandler := &api.ApiHandler{
		Db:                   dbConn,
		PortfolioService:     portfolioService,
		ScenarioService:      scenarioService,
		CommitmentService:    commitmentService,
		PlanningApp:          planningApp,
		ApiRequestRepository: apiRequestRepository,
		JwtDecodeToken:       secrets.Jwt,
	}

	return &Dependencies{
		Secrets:    secrets,
		ApiHandler: apiHandler,
		Notifier:   nudges,
		Logger:     lg,
	}, nil
}
