package api

import (
	"finsim/internal/domain"
	"finsim/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type portfolioResponse struct {
	UserAccountID uuid.UUID                  `json:"userId"`
	Balance       decimal.Decimal            `json:"balance"`
	Assets        map[string]decimal.Decimal `json:"assets"`
}

func portfolioToResponse(p domain.VirtualPortfolio) portfolioResponse {
	assets := p.Assets
	if assets == nil {
		assets = map[string]decimal.Decimal{}
	}
	return portfolioResponse{
		UserAccountID: p.UserAccountID,
		Balance:       p.Balance,
		Assets:        assets,
	}
}

func (m ApiHandler) getPortfolio(c *gin.Context) {
	userAccountID, ok := mustUserAccountID(c)
	if !ok {
		return
	}

	portfolio, err := m.PortfolioService.GetOrCreate(c.Request.Context(), userAccountID)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, portfolioToResponse(*portfolio))
}

type tradeRequest struct {
	Symbol    string          `json:"symbol"`
	Quantity  decimal.Decimal `json:"quantity"`
	Side      string          `json:"type"`
	UnitPrice decimal.Decimal `json:"price"`
}

func (m ApiHandler) trade(c *gin.Context) {
	userAccountID, ok := mustUserAccountID(c)
	if !ok {
		return
	}

	var requestBody tradeRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}
	side, err := domain.ParseTradeSide(requestBody.Side)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	portfolio, err := m.PortfolioService.Trade(c.Request.Context(), service.TradeInput{
		UserAccountID: userAccountID,
		Symbol:        requestBody.Symbol,
		Quantity:      requestBody.Quantity,
		Side:          side,
		UnitPrice:     requestBody.UnitPrice,
	})
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, portfolioToResponse(*portfolio))
}
