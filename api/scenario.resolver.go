package api

import (
	"net/http"

	"finsim/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type scenarioResponse struct {
	SimulationScenarioID uuid.UUID                `json:"id"`
	UserAccountID        uuid.UUID                `json:"userId"`
	CurrentStatus        domain.LifeStatus        `json:"currentStatus"`
	Decisions            []domain.SimulationEvent `json:"decisions"`
	IsActive             bool                     `json:"isActive"`
	// PendingEvent is the last decision, the one awaiting a choice
	PendingEvent *domain.SimulationEvent `json:"event,omitempty"`
}

func scenarioToResponse(s domain.SimulationScenario) scenarioResponse {
	out := scenarioResponse{
		SimulationScenarioID: s.SimulationScenarioID,
		UserAccountID:        s.UserAccountID,
		CurrentStatus:        s.CurrentStatus,
		Decisions:            s.Decisions,
		IsActive:             s.IsActive,
	}
	if pending, err := s.PendingEvent(); err == nil && s.IsActive {
		out.PendingEvent = pending
	}
	return out
}

func (m ApiHandler) startScenario(c *gin.Context) {
	userAccountID, ok := mustUserAccountID(c)
	if !ok {
		return
	}

	scenario, err := m.ScenarioService.Start(c.Request.Context(), userAccountID)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(http.StatusCreated, scenarioToResponse(*scenario))
}

func (m ApiHandler) getScenario(c *gin.Context) {
	userAccountID, ok := mustUserAccountID(c)
	if !ok {
		return
	}
	scenarioID, err := pathUUID(c, "id")
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	scenario, err := m.ScenarioService.Get(c.Request.Context(), userAccountID, scenarioID)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, scenarioToResponse(*scenario))
}

type continueScenarioRequest struct {
	ChoiceID string `json:"choiceId" binding:"required"`
}

func (m ApiHandler) continueScenario(c *gin.Context) {
	userAccountID, ok := mustUserAccountID(c)
	if !ok {
		return
	}
	scenarioID, err := pathUUID(c, "id")
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	var requestBody continueScenarioRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	scenario, err := m.ScenarioService.Continue(c.Request.Context(), userAccountID, scenarioID, requestBody.ChoiceID)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, scenarioToResponse(*scenario))
}

func (m ApiHandler) endScenario(c *gin.Context) {
	userAccountID, ok := mustUserAccountID(c)
	if !ok {
		return
	}
	scenarioID, err := pathUUID(c, "id")
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	scenario, err := m.ScenarioService.End(c.Request.Context(), userAccountID, scenarioID)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, scenarioToResponse(*scenario))
}

type scenarioSummaryResponse struct {
	SimulationScenarioID uuid.UUID            `json:"id"`
	IsActive             bool                 `json:"isActive"`
	StepsTaken           int                  `json:"stepsTaken"`
	CurrentStatus        domain.LifeStatus    `json:"currentStatus"`
	ChosenOptions        []domain.EventOption `json:"chosenOptions"`
	TotalSavingsImpact   float64              `json:"totalSavingsImpact"`
	TotalHappinessImpact float64              `json:"totalHappinessImpact"`
	MeanHappinessImpact  float64              `json:"meanHappinessImpact"`
}

func (m ApiHandler) scenarioSummary(c *gin.Context) {
	userAccountID, ok := mustUserAccountID(c)
	if !ok {
		return
	}
	scenarioID, err := pathUUID(c, "id")
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	summary, err := m.ScenarioService.Summary(c.Request.Context(), userAccountID, scenarioID)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, scenarioSummaryResponse{
		SimulationScenarioID: summary.SimulationScenarioID,
		IsActive:             summary.IsActive,
		StepsTaken:           summary.StepsTaken,
		CurrentStatus:        summary.CurrentStatus,
		ChosenOptions:        summary.ChosenOptions,
		TotalSavingsImpact:   summary.TotalSavingsImpact,
		TotalHappinessImpact: summary.TotalHappinessImpact,
		MeanHappinessImpact:  summary.MeanHappinessImpact,
	})
}
