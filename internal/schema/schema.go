package schema

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"finsim/internal/domain"

	"github.com/go-playground/validator/v10"
)

type SchemaName string

const (
	SchemaName_PortfolioAssets     SchemaName = "PORTFOLIO_ASSETS"
	SchemaName_SimulationStatus    SchemaName = "SIMULATION_STATUS"
	SchemaName_SimulationEvent     SchemaName = "SIMULATION_EVENT"
	SchemaName_SimulationDecisions SchemaName = "SIMULATION_DECISIONS"
)

// ValidationError is returned whenever a payload does not match its schema.
// errors.Is(err, domain.ErrValidation) holds for every ValidationError
type ValidationError struct {
	Schema SchemaName
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s: %s", domain.ErrValidation.Error(), e.Schema, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return domain.ErrValidation
}

func newValidationError(name SchemaName, format string, args ...any) error {
	return &ValidationError{
		Schema: name,
		Reason: fmt.Sprintf(format, args...),
	}
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// report json field names instead of go field names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func structError(name SchemaName, err error) error {
	validationErrors := validator.ValidationErrors{}
	if !errors.As(err, &validationErrors) {
		return newValidationError(name, "%s", err.Error())
	}
	issues := []string{}
	for _, fe := range validationErrors {
		issues = append(issues, fmt.Sprintf("%s failed on %s", fe.Namespace(), fe.Tag()))
	}
	return newValidationError(name, "%s", strings.Join(issues, "; "))
}

// Check validates payload against the named schema without returning the
// narrowed value
func Check(name SchemaName, payload []byte) error {
	var err error
	switch name {
	case SchemaName_PortfolioAssets:
		_, err = PortfolioAssets(payload)
	case SchemaName_SimulationStatus:
		_, err = SimulationStatus(payload)
	case SchemaName_SimulationEvent:
		_, err = SimulationEvent(payload)
	case SchemaName_SimulationDecisions:
		_, err = SimulationDecisions(payload)
	default:
		return fmt.Errorf("unknown schema %q", name)
	}
	return err
}

// decodeStrict decodes into out, mapping json errors (wrong types, bad
// syntax) to a ValidationError
func decodeStrict(name SchemaName, payload []byte, out any) error {
	if len(strings.TrimSpace(string(payload))) == 0 {
		return newValidationError(name, "payload is empty")
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return newValidationError(name, "%s", err.Error())
	}
	return nil
}
