package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"finsim/internal/domain"
	"finsim/internal/logger"
	"finsim/internal/repository"
	"finsim/internal/schema"

	"github.com/google/uuid"
	"github.com/montanaflynn/stats"
)

const DefaultNarrativeTimeout = 30 * time.Second

type ScenarioService interface {
	Start(ctx context.Context, userAccountID uuid.UUID) (*domain.SimulationScenario, error)
	Continue(ctx context.Context, userAccountID, scenarioID uuid.UUID, choiceID string) (*domain.SimulationScenario, error)
	Get(ctx context.Context, userAccountID, scenarioID uuid.UUID) (*domain.SimulationScenario, error)
	Summary(ctx context.Context, userAccountID, scenarioID uuid.UUID) (*ScenarioSummary, error)
	End(ctx context.Context, userAccountID, scenarioID uuid.UUID) (*domain.SimulationScenario, error)
}

type ScenarioSummary struct {
	SimulationScenarioID uuid.UUID
	IsActive             bool
	StepsTaken           int
	CurrentStatus        domain.LifeStatus
	ChosenOptions        []domain.EventOption
	TotalSavingsImpact   float64
	TotalHappinessImpact float64
	MeanHappinessImpact  float64
}

type scenarioServiceHandler struct {
	UnitOfWork          repository.UnitOfWork
	ScenarioRepository  repository.SimulationScenarioRepository
	NarrativeRepository repository.NarrativeRepository
	Rand                domain.RandSource
	NarrativeTimeout    time.Duration
}

// globalRand uses the package level source, which is safe for concurrent use
type globalRand struct{}

func (globalRand) Float64() float64 {
	return rand.Float64()
}

func NewScenarioService(
	unitOfWork repository.UnitOfWork,
	scenarioRepository repository.SimulationScenarioRepository,
	narrativeRepository repository.NarrativeRepository,
	randSource domain.RandSource,
	narrativeTimeout time.Duration,
) ScenarioService {
	if randSource == nil {
		randSource = globalRand{}
	}
	if narrativeTimeout <= 0 {
		narrativeTimeout = DefaultNarrativeTimeout
	}
	return scenarioServiceHandler{
		UnitOfWork:          unitOfWork,
		ScenarioRepository:  scenarioRepository,
		NarrativeRepository: narrativeRepository,
		Rand:                randSource,
		NarrativeTimeout:    narrativeTimeout,
	}
}

// generateEvent is the only call that leaves the process. nothing is
// written until it returns a validated event
func (h scenarioServiceHandler) generateEvent(ctx context.Context, prompt string) (*domain.SimulationEvent, error) {
	timeout := h.NarrativeTimeout
	if timeout <= 0 {
		timeout = DefaultNarrativeTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	raw, err := h.NarrativeRepository.Generate(ctx, prompt)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w: narrative provider timed out after %s", domain.ErrNarrativeParse, timeout.String())
		}
		logger.FromContext(ctx).Errorf("narrative provider failed: %v", err)
		return nil, fmt.Errorf("%w: %w", domain.ErrNarrativeProvider, err)
	}

	payload, err := schema.ParseEvent(raw)
	if err != nil {
		return nil, err
	}
	return schema.GeneratedEvent(payload)
}

func (h scenarioServiceHandler) Start(ctx context.Context, userAccountID uuid.UUID) (*domain.SimulationScenario, error) {
	status := domain.InitialLifeStatus()
	if _, err := schema.EncodeSimulationStatus(status); err != nil {
		return nil, err
	}

	event, err := h.generateEvent(ctx, startScenarioPrompt(status))
	if err != nil {
		return nil, err
	}

	var out *domain.SimulationScenario
	err = h.UnitOfWork.Do(ctx, func(tx *sql.Tx) error {
		added, err := h.ScenarioRepository.Add(tx, domain.SimulationScenario{
			UserAccountID: userAccountID,
			CurrentStatus: status,
			Decisions:     []domain.SimulationEvent{*event},
			IsActive:      true,
		})
		out = added
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to start scenario: %w", err)
	}

	return out, nil
}

// getOwned reports a scenario owned by someone else as not found
func (h scenarioServiceHandler) getOwned(userAccountID, scenarioID uuid.UUID) (*domain.SimulationScenario, error) {
	scenario, err := h.ScenarioRepository.Get(scenarioID)
	if err != nil {
		return nil, err
	}
	if scenario.UserAccountID != userAccountID {
		return nil, fmt.Errorf("simulation scenario %s: %w", scenarioID.String(), domain.ErrNotFound)
	}
	return scenario, nil
}

func (h scenarioServiceHandler) Get(ctx context.Context, userAccountID, scenarioID uuid.UUID) (*domain.SimulationScenario, error) {
	return h.getOwned(userAccountID, scenarioID)
}

func (h scenarioServiceHandler) Continue(ctx context.Context, userAccountID, scenarioID uuid.UUID, choiceID string) (*domain.SimulationScenario, error) {
	scenario, err := h.getOwned(userAccountID, scenarioID)
	if err != nil {
		return nil, err
	}
	if !scenario.IsActive {
		return nil, fmt.Errorf("simulation scenario %s: %w", scenarioID.String(), domain.ErrScenarioInactive)
	}

	step, err := scenario.Choose(choiceID, h.Rand.Float64())
	if err != nil {
		return nil, err
	}

	next, err := h.generateEvent(ctx, continueScenarioPrompt(step.Pending, step.Chosen, step.NextStatus))
	if err != nil {
		return nil, err
	}
	resolved := scenario.Resolve(*step, *next)

	var out *domain.SimulationScenario
	err = h.UnitOfWork.Do(ctx, func(tx *sql.Tx) error {
		locked, err := h.ScenarioRepository.GetForUpdate(tx, scenarioID)
		if err != nil {
			return err
		}
		if !locked.IsActive {
			return fmt.Errorf("simulation scenario %s: %w", scenarioID.String(), domain.ErrScenarioInactive)
		}
		// another continue committed while the event was generated
		if len(locked.Decisions) != len(scenario.Decisions) {
			return fmt.Errorf("%w: event %q was already resolved", domain.ErrInvalidChoice, step.Pending.EventTitle)
		}

		out, err = h.ScenarioRepository.Update(tx, resolved)
		return err
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

func (h scenarioServiceHandler) End(ctx context.Context, userAccountID, scenarioID uuid.UUID) (*domain.SimulationScenario, error) {
	var out *domain.SimulationScenario
	err := h.UnitOfWork.Do(ctx, func(tx *sql.Tx) error {
		scenario, err := h.ScenarioRepository.GetForUpdate(tx, scenarioID)
		if err != nil {
			return err
		}
		if scenario.UserAccountID != userAccountID {
			return fmt.Errorf("simulation scenario %s: %w", scenarioID.String(), domain.ErrNotFound)
		}
		if !scenario.IsActive {
			out = scenario
			return nil
		}

		scenario.IsActive = false
		out, err = h.ScenarioRepository.Update(tx, *scenario)
		return err
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

func (h scenarioServiceHandler) Summary(ctx context.Context, userAccountID, scenarioID uuid.UUID) (*ScenarioSummary, error) {
	scenario, err := h.getOwned(userAccountID, scenarioID)
	if err != nil {
		return nil, err
	}
	return summarizeScenario(*scenario), nil
}

func summarizeScenario(scenario domain.SimulationScenario) *ScenarioSummary {
	chosen := []domain.EventOption{}
	for i := 1; i < len(scenario.Decisions); i++ {
		if option, ok := chosenOption(scenario.Decisions[i-1], scenario.Decisions[i]); ok {
			chosen = append(chosen, option)
		}
	}

	savings := stats.Float64Data{}
	happiness := stats.Float64Data{}
	for _, option := range chosen {
		savings = append(savings, option.Impact.Savings)
		happiness = append(happiness, option.Impact.Happiness)
	}

	summary := &ScenarioSummary{
		SimulationScenarioID: scenario.SimulationScenarioID,
		IsActive:             scenario.IsActive,
		StepsTaken:           len(chosen),
		CurrentStatus:        scenario.CurrentStatus,
		ChosenOptions:        chosen,
	}
	if len(chosen) == 0 {
		return summary
	}

	// errors only come back on empty input, ruled out above
	summary.TotalSavingsImpact, _ = stats.Sum(savings)
	summary.TotalHappinessImpact, _ = stats.Sum(happiness)
	mean, _ := stats.Mean(happiness)
	summary.MeanHappinessImpact, _ = stats.Round(mean, 2)

	return summary
}

// chosenOption finds the option on prev that led to next, by id when next
// records one and by text for older records
func chosenOption(prev, next domain.SimulationEvent) (domain.EventOption, bool) {
	if next.PrecedingChoiceID != nil {
		option, ok := prev.FindOption(*next.PrecedingChoiceID)
		if !ok {
			return domain.EventOption{}, false
		}
		return *option, true
	}
	if next.PrecedingChoice == nil {
		return domain.EventOption{}, false
	}
	for _, option := range prev.Options {
		if option.Text == *next.PrecedingChoice {
			return option, true
		}
	}
	return domain.EventOption{}, false
}
