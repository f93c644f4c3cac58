package api

import (
	"net/http"
	"time"

	"finsim/internal/domain"
	"finsim/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type commitmentResponse struct {
	CommitmentID  uuid.UUID       `json:"id"`
	UserAccountID uuid.UUID       `json:"userId"`
	GoalName      string          `json:"goalName"`
	TargetAmount  decimal.Decimal `json:"targetAmount"`
	LockedAmount  decimal.Decimal `json:"lockedAmount"`
	UnlockDate    time.Time       `json:"unlockDate"`
	PenaltyRate   decimal.Decimal `json:"penaltyRate"`
	CreatedAt     time.Time       `json:"createdAt"`
}

func commitmentToResponse(c domain.Commitment) commitmentResponse {
	return commitmentResponse{
		CommitmentID:  c.CommitmentID,
		UserAccountID: c.UserAccountID,
		GoalName:      c.GoalName,
		TargetAmount:  c.TargetAmount,
		LockedAmount:  c.LockedAmount,
		UnlockDate:    c.UnlockDate,
		PenaltyRate:   c.PenaltyRate,
		CreatedAt:     c.CreatedAt,
	}
}

func (m ApiHandler) listCommitments(c *gin.Context) {
	userAccountID, ok := mustUserAccountID(c)
	if !ok {
		return
	}

	commitments, err := m.CommitmentService.List(c.Request.Context(), userAccountID)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	out := []commitmentResponse{}
	for _, commitment := range commitments {
		out = append(out, commitmentToResponse(commitment))
	}

	c.JSON(200, out)
}

type createCommitmentRequest struct {
	GoalName     string          `json:"goalName"`
	TargetAmount decimal.Decimal `json:"targetAmount"`
	LockedAmount decimal.Decimal `json:"lockedAmount"`
	Months       int             `json:"months"`
}

func (m ApiHandler) createCommitment(c *gin.Context) {
	userAccountID, ok := mustUserAccountID(c)
	if !ok {
		return
	}

	var requestBody createCommitmentRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	commitment, err := m.CommitmentService.Create(c.Request.Context(), service.CreateCommitmentInput{
		UserAccountID: userAccountID,
		GoalName:      requestBody.GoalName,
		TargetAmount:  requestBody.TargetAmount,
		LockedAmount:  requestBody.LockedAmount,
		Months:        requestBody.Months,
	})
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(http.StatusCreated, commitmentToResponse(*commitment))
}

type withdrawCommitmentResponse struct {
	CommitmentID uuid.UUID       `json:"commitmentId"`
	Payout       decimal.Decimal `json:"payout"`
	Penalty      decimal.Decimal `json:"penalty"`
	Early        bool            `json:"early"`
	Message      string          `json:"message"`
}

func (m ApiHandler) withdrawCommitment(c *gin.Context) {
	userAccountID, ok := mustUserAccountID(c)
	if !ok {
		return
	}
	commitmentID, err := pathUUID(c, "id")
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	result, err := m.CommitmentService.Withdraw(c.Request.Context(), userAccountID, commitmentID)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, withdrawCommitmentResponse{
		CommitmentID: result.CommitmentID,
		Payout:       result.Payout,
		Penalty:      result.Penalty,
		Early:        result.Early,
		Message:      result.Message,
	})
}
