package schema

import (
	"encoding/json"
	"fmt"

	"finsim/internal/domain"
)

type impactDto struct {
	Savings   *float64 `json:"savings" validate:"required"`
	Happiness *float64 `json:"happiness" validate:"required"`
}

type eventOptionDto struct {
	ID     *string    `json:"id" validate:"required,min=1"`
	Text   *string    `json:"text" validate:"required"`
	Impact *impactDto `json:"impact" validate:"required"`
}

type simulationEventDto struct {
	EventTitle  *string          `json:"eventTitle" validate:"required"`
	Description *string          `json:"description" validate:"required"`
	Options     []eventOptionDto `json:"options" validate:"required,min=1,dive"`
	AINudge     *string          `json:"aiNudge" validate:"required"`
	Choice      *string          `json:"choice"`
	ChoiceID    *string          `json:"choiceId"`
}

func (dto simulationEventDto) toDomain() domain.SimulationEvent {
	options := make([]domain.EventOption, 0, len(dto.Options))
	for _, o := range dto.Options {
		options = append(options, domain.EventOption{
			ID:   *o.ID,
			Text: *o.Text,
			Impact: domain.Impact{
				Savings:   *o.Impact.Savings,
				Happiness: *o.Impact.Happiness,
			},
		})
	}
	return domain.SimulationEvent{
		EventTitle:        *dto.EventTitle,
		Description:       *dto.Description,
		Options:           options,
		AINudge:           *dto.AINudge,
		PrecedingChoice:   dto.Choice,
		PrecedingChoiceID: dto.ChoiceID,
	}
}

func checkEventDto(name SchemaName, dto simulationEventDto) error {
	if err := validate.Struct(dto); err != nil {
		return structError(name, err)
	}
	seen := map[string]bool{}
	for _, o := range dto.Options {
		if seen[*o.ID] {
			return newValidationError(name, "duplicate option id %q", *o.ID)
		}
		seen[*o.ID] = true
	}
	return nil
}

func SimulationEvent(payload []byte) (*domain.SimulationEvent, error) {
	name := SchemaName_SimulationEvent

	var dto *simulationEventDto
	if err := decodeStrict(name, payload, &dto); err != nil {
		return nil, err
	}
	if dto == nil {
		return nil, newValidationError(name, "expected an object")
	}
	if err := checkEventDto(name, *dto); err != nil {
		return nil, err
	}

	event := dto.toDomain()
	return &event, nil
}

// GeneratedEvent is SimulationEvent plus the rules every freshly generated
// event must follow: exactly two options, and no preceding choice. the
// choice is recorded by the engine, so one supplied by the provider is
// dropped
func GeneratedEvent(payload []byte) (*domain.SimulationEvent, error) {
	event, err := SimulationEvent(payload)
	if err != nil {
		return nil, err
	}
	if len(event.Options) != 2 {
		return nil, newValidationError(SchemaName_SimulationEvent, "expected exactly 2 options, got %d", len(event.Options))
	}
	event.PrecedingChoice = nil
	event.PrecedingChoiceID = nil
	return event, nil
}

func SimulationDecisions(payload []byte) ([]domain.SimulationEvent, error) {
	name := SchemaName_SimulationDecisions

	var dtos []simulationEventDto
	if err := decodeStrict(name, payload, &dtos); err != nil {
		return nil, err
	}
	if dtos == nil {
		return nil, newValidationError(name, "expected an array")
	}

	out := make([]domain.SimulationEvent, 0, len(dtos))
	for i, dto := range dtos {
		if err := checkEventDto(name, dto); err != nil {
			return nil, fmt.Errorf("decision %d: %w", i, err)
		}
		out = append(out, dto.toDomain())
	}
	return out, nil
}

func EncodeSimulationEvent(event domain.SimulationEvent) ([]byte, error) {
	out, err := json.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("failed to encode event: %w", err)
	}
	if _, err := SimulationEvent(out); err != nil {
		return nil, err
	}
	return out, nil
}

func EncodeSimulationDecisions(decisions []domain.SimulationEvent) ([]byte, error) {
	if decisions == nil {
		decisions = []domain.SimulationEvent{}
	}
	out, err := json.Marshal(decisions)
	if err != nil {
		return nil, fmt.Errorf("failed to encode decisions: %w", err)
	}
	if _, err := SimulationDecisions(out); err != nil {
		return nil, err
	}
	return out, nil
}
