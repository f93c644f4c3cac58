package service

import (
	"encoding/json"
	"fmt"

	"finsim/internal/domain"
)

const eventFormat = `Format: JSON {
  "eventTitle": string,
  "description": string,
  "options": [
    { "id": "A", "text": string, "impact": { "savings": number, "happiness": number } },
    { "id": "B", "text": string, "impact": { "savings": number, "happiness": number } }
  ],
  "aiNudge": string
}`

func statusJson(status domain.LifeStatus) string {
	bytes, err := json.Marshal(status)
	if err != nil {
		return "{}"
	}
	return string(bytes)
}

func startScenarioPrompt(status domain.LifeStatus) string {
	return fmt.Sprintf(`Current User Status: %s

Task: Generate a realistic life event (e.g., job offer, medical emergency, investment opportunity).
The event must require a financial decision.

%s`, statusJson(status), eventFormat)
}

func continueScenarioPrompt(previous domain.SimulationEvent, choice domain.EventOption, status domain.LifeStatus) string {
	return fmt.Sprintf(`Previous Event: %s
User Choice: %s
Current User Status: %s

Task: Generate the NEXT realistic life event based on the previous choice.
The event must require a financial decision.

%s`, previous.EventTitle, choice.Text, statusJson(status), eventFormat)
}
