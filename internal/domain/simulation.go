package domain

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const (
	DefaultHappiness = 100.0

	// a roll above this ages the simulated person by a year
	agingThreshold = 0.7
)

// RandSource is the random draw used for aging. *rand.Rand satisfies it
type RandSource interface {
	Float64() float64
}

type Impact struct {
	Savings   float64 `json:"savings"`
	Happiness float64 `json:"happiness"`
}

type EventOption struct {
	ID     string `json:"id"`
	Text   string `json:"text"`
	Impact Impact `json:"impact"`
}

type SimulationEvent struct {
	EventTitle  string        `json:"eventTitle"`
	Description string        `json:"description"`
	Options     []EventOption `json:"options"`
	AINudge     string        `json:"aiNudge"`
	// PrecedingChoice is the text of the option picked on the event before
	// this one. nil on the first event of a scenario
	PrecedingChoice *string `json:"choice,omitempty"`
	// PrecedingChoiceID is the id of that option. option texts are not
	// unique, ids are. records written before it existed only carry the text
	PrecedingChoiceID *string `json:"choiceId,omitempty"`
}

func (e SimulationEvent) FindOption(id string) (*EventOption, bool) {
	for _, o := range e.Options {
		if o.ID == id {
			option := o
			return &option, true
		}
	}
	return nil, false
}

type LifeStatus struct {
	Age       int      `json:"age"`
	Job       string   `json:"job"`
	Salary    float64  `json:"salary"`
	Savings   float64  `json:"savings"`
	Goals     []string `json:"goals"`
	Happiness *float64 `json:"happiness,omitempty"`

	// keys the engine does not model. kept so that a round trip through
	// storage does not drop them
	Extra map[string]json.RawMessage `json:"-"`
}

var lifeStatusKeys = map[string]bool{
	"age":       true,
	"job":       true,
	"salary":    true,
	"savings":   true,
	"goals":     true,
	"happiness": true,
}

func InitialLifeStatus() LifeStatus {
	return LifeStatus{
		Age:     22,
		Job:     "Junior Developer",
		Salary:  15000000,
		Savings: 5000000,
		Goals:   []string{"Buy a house", "Emergency fund"},
	}
}

func (s LifeStatus) HappinessOrDefault() float64 {
	if s.Happiness == nil {
		return DefaultHappiness
	}
	return *s.Happiness
}

func (s LifeStatus) DeepCopy() LifeStatus {
	out := s
	if s.Goals != nil {
		out.Goals = append([]string{}, s.Goals...)
	}
	if s.Happiness != nil {
		h := *s.Happiness
		out.Happiness = &h
	}
	if s.Extra != nil {
		out.Extra = make(map[string]json.RawMessage, len(s.Extra))
		for k, v := range s.Extra {
			out.Extra[k] = v
		}
	}
	return out
}

// Fold applies an option's impact to the status
func (s LifeStatus) Fold(impact Impact, roll float64) LifeStatus {
	out := s.DeepCopy()
	out.Savings = s.Savings + impact.Savings
	happiness := s.HappinessOrDefault() + impact.Happiness
	out.Happiness = &happiness
	if roll > agingThreshold {
		out.Age++
	}
	return out
}

func (s LifeStatus) MarshalJSON() ([]byte, error) {
	type plain LifeStatus
	known, err := json.Marshal(plain(s))
	if err != nil || len(s.Extra) == 0 {
		return known, err
	}

	merged := map[string]json.RawMessage{}
	if err := json.Unmarshal(known, &merged); err != nil {
		return nil, err
	}
	for k, v := range s.Extra {
		if _, ok := merged[k]; !ok {
			merged[k] = v
		}
	}
	return json.Marshal(merged)
}

func (s *LifeStatus) UnmarshalJSON(b []byte) error {
	type plain LifeStatus
	p := plain{}
	if err := json.Unmarshal(b, &p); err != nil {
		return err
	}

	all := map[string]json.RawMessage{}
	if err := json.Unmarshal(b, &all); err != nil {
		return err
	}
	for k := range all {
		if lifeStatusKeys[k] {
			delete(all, k)
		}
	}
	p.Extra = nil
	if len(all) > 0 {
		p.Extra = all
	}

	*s = LifeStatus(p)
	return nil
}

type SimulationScenario struct {
	SimulationScenarioID uuid.UUID
	UserAccountID        uuid.UUID
	CurrentStatus        LifeStatus
	// Decisions holds every event so far. the last one is pending: it has
	// options and no event after it records a choice against it
	Decisions  []SimulationEvent
	IsActive   bool
	CreatedAt  time.Time
	ModifiedAt time.Time
}

func (s SimulationScenario) PendingEvent() (*SimulationEvent, error) {
	if len(s.Decisions) == 0 {
		return nil, fmt.Errorf("%w: scenario %s has no pending event", ErrValidation, s.SimulationScenarioID)
	}
	e := s.Decisions[len(s.Decisions)-1]
	return &e, nil
}

// ScenarioStep is a choice made against the pending event. it is not part
// of the scenario until Resolve is called with the next event
type ScenarioStep struct {
	Pending    SimulationEvent
	Chosen     EventOption
	NextStatus LifeStatus
}

func (s SimulationScenario) Choose(choiceID string, roll float64) (*ScenarioStep, error) {
	pending, err := s.PendingEvent()
	if err != nil {
		return nil, err
	}
	option, ok := pending.FindOption(choiceID)
	if !ok {
		return nil, fmt.Errorf("%w: option %q is not available on %q", ErrInvalidChoice, choiceID, pending.EventTitle)
	}

	return &ScenarioStep{
		Pending:    *pending,
		Chosen:     *option,
		NextStatus: s.CurrentStatus.Fold(option.Impact, roll),
	}, nil
}

// Resolve returns a copy of the scenario with the step committed and next
// appended as the new pending event
func (s SimulationScenario) Resolve(step ScenarioStep, next SimulationEvent) SimulationScenario {
	chosenText, chosenID := step.Chosen.Text, step.Chosen.ID
	next.PrecedingChoice = &chosenText
	next.PrecedingChoiceID = &chosenID

	decisions := make([]SimulationEvent, 0, len(s.Decisions)+1)
	decisions = append(decisions, s.Decisions...)
	decisions = append(decisions, next)

	out := s
	out.CurrentStatus = step.NextStatus.DeepCopy()
	out.Decisions = decisions
	return out
}
