package api

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"finsim/internal/app"
	"finsim/internal/domain"
	mock_notifier "finsim/internal/notifier/mocks"
	mock_repository "finsim/internal/repository/mocks"
	"finsim/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testJwtSecret = "test-secret"

type testDeps struct {
	uow         *mock_repository.MockUnitOfWork
	portfolios  *mock_repository.MockVirtualPortfolioRepository
	scenarios   *mock_repository.MockSimulationScenarioRepository
	narrative   *mock_repository.MockNarrativeRepository
	commitments *mock_repository.MockCommitmentRepository
	logs        *mock_repository.MockBehaviorLogRepository
	notifier    *mock_notifier.MockNotifier
}

func newTestRouter(t *testing.T) (*gin.Engine, testDeps) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	deps := testDeps{
		uow:         mock_repository.NewMockUnitOfWork(ctrl),
		portfolios:  mock_repository.NewMockVirtualPortfolioRepository(ctrl),
		scenarios:   mock_repository.NewMockSimulationScenarioRepository(ctrl),
		narrative:   mock_repository.NewMockNarrativeRepository(ctrl),
		commitments: mock_repository.NewMockCommitmentRepository(ctrl),
		logs:        mock_repository.NewMockBehaviorLogRepository(ctrl),
		notifier:    mock_notifier.NewMockNotifier(ctrl),
	}
	deps.uow.EXPECT().
		Do(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(*sql.Tx) error) error {
			return fn(nil)
		}).
		AnyTimes()

	handler := ApiHandler{
		PortfolioService: service.NewPortfolioService(deps.uow, deps.portfolios),
		ScenarioService:  service.NewScenarioService(deps.uow, deps.scenarios, deps.narrative, nil, time.Second),
		CommitmentService: service.NewCommitmentService(
			deps.uow, deps.portfolios, deps.commitments, deps.logs, deps.notifier,
		),
		PlanningApp:    app.NewPlanningApp(deps.notifier),
		JwtDecodeToken: testJwtSecret,
	}
	return handler.InitializeRouterEngine(), deps
}

func signedToken(t *testing.T, secret string, sub string, exp time.Time) string {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": sub,
		"exp": exp.Unix(),
	})
	out, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return out
}

func doRequest(router *gin.Engine, method, path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestApiHandler_auth(t *testing.T) {
	router, _ := newTestRouter(t)
	userID := uuid.New()

	t.Run("missing token", func(t *testing.T) {
		w := doRequest(router, "GET", "/portfolio", "", "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("wrong secret", func(t *testing.T) {
		token := signedToken(t, "other", userID.String(), time.Now().Add(time.Hour))
		w := doRequest(router, "GET", "/portfolio", token, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("expired", func(t *testing.T) {
		token := signedToken(t, testJwtSecret, userID.String(), time.Now().Add(-time.Hour))
		w := doRequest(router, "GET", "/portfolio", token, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("subject is not a user id", func(t *testing.T) {
		token := signedToken(t, testJwtSecret, "someone", time.Now().Add(time.Hour))
		w := doRequest(router, "GET", "/portfolio", token, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestApiHandler_portfolio(t *testing.T) {
	router, deps := newTestRouter(t)
	userID := uuid.New()
	token := signedToken(t, testJwtSecret, userID.String(), time.Now().Add(time.Hour))

	t.Run("first read creates the portfolio", func(t *testing.T) {
		deps.portfolios.EXPECT().GetOrCreate(nil, userID).Return(domain.NewVirtualPortfolio(userID), nil)

		w := doRequest(router, "GET", "/portfolio", token, "")
		require.Equal(t, 200, w.Code)

		out := portfolioResponse{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
		require.True(t, out.Balance.Equal(decimal.NewFromInt(100000)))
		require.Empty(t, out.Assets)
	})

	t.Run("overspending is a bad request", func(t *testing.T) {
		deps.portfolios.EXPECT().GetOrCreate(nil, userID).Return(domain.NewVirtualPortfolio(userID), nil)
		deps.portfolios.EXPECT().GetForUpdate(nil, userID).Return(domain.NewVirtualPortfolio(userID), nil)

		w := doRequest(router, "POST", "/portfolio/trade", token, `{"symbol":"BTC","quantity":3,"type":"BUY","price":40000}`)
		require.Equal(t, http.StatusBadRequest, w.Code)
		require.Contains(t, w.Body.String(), domain.ErrInsufficientBalance.Error())
	})

	t.Run("unknown side", func(t *testing.T) {
		w := doRequest(router, "POST", "/portfolio/trade", token, `{"symbol":"BTC","quantity":1,"type":"HOLD","price":1}`)
		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestApiHandler_scenarios(t *testing.T) {
	router, deps := newTestRouter(t)
	userID := uuid.New()
	token := signedToken(t, testJwtSecret, userID.String(), time.Now().Add(time.Hour))

	t.Run("malformed provider output is unprocessable", func(t *testing.T) {
		deps.narrative.EXPECT().Generate(gomock.Any(), gomock.Any()).Return("once upon a time", nil)

		w := doRequest(router, "POST", "/scenarios", token, "")
		require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("provider outage is a bad gateway", func(t *testing.T) {
		deps.narrative.EXPECT().Generate(gomock.Any(), gomock.Any()).Return("", fmt.Errorf("503 from upstream"))

		w := doRequest(router, "POST", "/scenarios", token, "")
		require.Equal(t, http.StatusBadGateway, w.Code)
	})

	t.Run("another user's scenario is not found", func(t *testing.T) {
		scenarioID := uuid.New()
		deps.scenarios.EXPECT().Get(scenarioID).Return(&domain.SimulationScenario{
			SimulationScenarioID: scenarioID,
			UserAccountID:        uuid.New(),
			IsActive:             true,
		}, nil)

		w := doRequest(router, "POST", "/scenarios/"+scenarioID.String()+"/continue", token, `{"choiceId":"A"}`)
		require.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("missing choice", func(t *testing.T) {
		w := doRequest(router, "POST", "/scenarios/"+uuid.NewString()+"/continue", token, `{}`)
		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("bad id", func(t *testing.T) {
		w := doRequest(router, "GET", "/scenarios/not-a-uuid", token, "")
		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestApiHandler_commitments(t *testing.T) {
	router, deps := newTestRouter(t)
	userID := uuid.New()
	token := signedToken(t, testJwtSecret, userID.String(), time.Now().Add(time.Hour))

	t.Run("withdrawing someone else's commitment is not found", func(t *testing.T) {
		commitmentID := uuid.New()
		deps.commitments.EXPECT().GetForUpdate(nil, commitmentID).Return(&domain.Commitment{
			CommitmentID:  commitmentID,
			UserAccountID: uuid.New(),
			LockedAmount:  decimal.NewFromInt(100),
			PenaltyRate:   domain.DefaultPenaltyRate,
		}, nil)

		w := doRequest(router, "POST", "/commitments/"+commitmentID.String()+"/withdraw", token, "")
		require.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("list", func(t *testing.T) {
		deps.commitments.EXPECT().List(userID).Return([]domain.Commitment{}, nil)

		w := doRequest(router, "GET", "/commitments", token, "")
		require.Equal(t, 200, w.Code)
		require.JSONEq(t, `[]`, w.Body.String())
	})
}

func TestApiHandler_planning(t *testing.T) {
	router, deps := newTestRouter(t)
	userID := uuid.New()
	token := signedToken(t, testJwtSecret, userID.String(), time.Now().Add(time.Hour))

	t.Run("allocation must sum to 100", func(t *testing.T) {
		w := doRequest(router, "POST", "/budget/evaluate", token, `{"needs":50,"wants":30,"savings":10}`)
		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("optimal budget", func(t *testing.T) {
		w := doRequest(router, "POST", "/budget/evaluate", token, `{"needs":50,"wants":30,"savings":20}`)
		require.Equal(t, 200, w.Code)

		out := evaluateBudgetResponse{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
		require.True(t, out.IsOptimal)
	})

	t.Run("stress test", func(t *testing.T) {
		deps.notifier.EXPECT().Emit(gomock.Any(), gomock.Any())

		w := doRequest(router, "POST", "/stress-test", token, `{"monthlyIncome":15000000,"monthlyExpenses":10000000,"emergencyFund":60000000}`)
		require.Equal(t, 200, w.Code)

		out := stressTestResponse{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
		require.Equal(t, "6.0", out.SurvivalMonths)
		require.Equal(t, "5.5", out.InflationStress.NewSurvivalMonths)
		require.Equal(t, "Severe", out.InflationStress.Impact)
	})
}

func Test_errorStatus(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{fmt.Errorf("scenario x: %w", domain.ErrNotFound), 404},
		{domain.ErrValidation, 422},
		{domain.ErrNarrativeParse, 422},
		{fmt.Errorf("%w: %w", domain.ErrNarrativeProvider, errors.New("quota")), 502},
		{domain.ErrInsufficientBalance, 400},
		{domain.ErrInsufficientAssets, 400},
		{domain.ErrInvalidAllocation, 400},
		{domain.ErrInvalidChoice, 400},
		{domain.ErrScenarioInactive, 400},
		{errors.New("connection refused"), 500},
	}
	for _, tc := range cases {
		require.Equal(t, tc.code, errorStatus(tc.err), tc.err.Error())
	}
}
