package api

import (
	"finsim/internal/calculator"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type evaluateBudgetRequest struct {
	Needs   decimal.Decimal `json:"needs"`
	Wants   decimal.Decimal `json:"wants"`
	Savings decimal.Decimal `json:"savings"`
}

type evaluateBudgetResponse struct {
	IsOptimal bool   `json:"isOptimal"`
	Cause     string `json:"cause"`
	Feedback  string `json:"feedback"`
	Nudge     string `json:"nudge"`
}

func (m ApiHandler) evaluateBudget(c *gin.Context) {
	userAccountID, ok := mustUserAccountID(c)
	if !ok {
		return
	}

	var requestBody evaluateBudgetRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	result, err := m.PlanningApp.EvaluateBudget(c.Request.Context(), userAccountID, calculator.BudgetAllocation{
		Needs:   requestBody.Needs,
		Wants:   requestBody.Wants,
		Savings: requestBody.Savings,
	})
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, evaluateBudgetResponse{
		IsOptimal: result.Optimal,
		Cause:     string(result.Cause),
		Feedback:  result.Feedback,
		Nudge:     result.Nudge,
	})
}

type stressTestRequest struct {
	MonthlyIncome   decimal.Decimal `json:"monthlyIncome"`
	MonthlyExpenses decimal.Decimal `json:"monthlyExpenses"`
	EmergencyFund   decimal.Decimal `json:"emergencyFund"`
}

type stressTestResponse struct {
	SurvivalMonths  string `json:"survivalMonths"`
	InflationStress struct {
		NewExpenses       decimal.Decimal `json:"newExpenses"`
		NewSurvivalMonths string          `json:"newSurvivalMonths"`
		Impact            string          `json:"impact"`
	} `json:"inflationStress"`
	Nudge string `json:"nudge"`
}

func (m ApiHandler) stressTest(c *gin.Context) {
	userAccountID, ok := mustUserAccountID(c)
	if !ok {
		return
	}

	var requestBody stressTestRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	result, err := m.PlanningApp.StressTest(c.Request.Context(), userAccountID, calculator.StressTestInput{
		MonthlyIncome:   requestBody.MonthlyIncome,
		MonthlyExpenses: requestBody.MonthlyExpenses,
		EmergencyFund:   requestBody.EmergencyFund,
	})
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	out := stressTestResponse{
		SurvivalMonths: result.SurvivalMonths,
		Nudge:          result.Nudge,
	}
	out.InflationStress.NewExpenses = result.InflationStress.NewExpenses
	out.InflationStress.NewSurvivalMonths = result.InflationStress.NewSurvivalMonths
	out.InflationStress.Impact = result.InflationStress.Impact

	c.JSON(200, out)
}

type longTermImpactRequest struct {
	Amount decimal.Decimal `json:"amount"`
	Years  int             `json:"years"`
}

type longTermImpactResponse struct {
	OriginalAmount decimal.Decimal `json:"originalAmount"`
	FutureValue    decimal.Decimal `json:"futureValue"`
	Years          int             `json:"years"`
	Nudge          string          `json:"nudge"`
}

func (m ApiHandler) longTermImpact(c *gin.Context) {
	userAccountID, ok := mustUserAccountID(c)
	if !ok {
		return
	}

	var requestBody longTermImpactRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	result, err := m.PlanningApp.LongTermImpact(c.Request.Context(), userAccountID, requestBody.Amount, requestBody.Years)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, longTermImpactResponse{
		OriginalAmount: result.OriginalAmount,
		FutureValue:    result.FutureValue,
		Years:          result.Years,
		Nudge:          result.Nudge,
	})
}
