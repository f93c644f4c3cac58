package schema

import (
	"encoding/json"
	"fmt"

	"finsim/internal/domain"
)

// every field is optional and unknown keys pass through, but a key that
// is present must carry the right type
type simulationStatusDto struct {
	Age       *float64 `json:"age" validate:"omitempty,gte=0"`
	Job       *string  `json:"job"`
	Salary    *float64 `json:"salary"`
	Savings   *float64 `json:"savings"`
	Goals     []string `json:"goals"`
	Happiness *float64 `json:"happiness"`
}

func SimulationStatus(payload []byte) (*domain.LifeStatus, error) {
	name := SchemaName_SimulationStatus

	var dto *simulationStatusDto
	if err := decodeStrict(name, payload, &dto); err != nil {
		return nil, err
	}
	if dto == nil {
		return nil, newValidationError(name, "expected an object")
	}
	if err := validate.Struct(dto); err != nil {
		return nil, structError(name, err)
	}

	status := domain.LifeStatus{}
	if err := json.Unmarshal(payload, &status); err != nil {
		return nil, newValidationError(name, "%s", err.Error())
	}
	return &status, nil
}

func EncodeSimulationStatus(status domain.LifeStatus) ([]byte, error) {
	out, err := json.Marshal(status)
	if err != nil {
		return nil, fmt.Errorf("failed to encode status: %w", err)
	}
	if _, err := SimulationStatus(out); err != nil {
		return nil, err
	}
	return out, nil
}
