package api

import (
	"bytes"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"finsim/internal/app"
	"finsim/internal/db/models/postgres/public/model"
	"finsim/internal/domain"
	"finsim/internal/logger"
	"finsim/internal/repository"
	"finsim/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ApiHandler struct {
	Db                   *sql.DB
	PortfolioService     service.PortfolioService
	ScenarioService      service.ScenarioService
	CommitmentService    service.CommitmentService
	PlanningApp          app.PlanningApp
	ApiRequestRepository repository.ApiRequestRepository
	JwtDecodeToken       string
}

func int64Ptr(i int64) *int64 {
	return &i
}
func int32Ptr(i int32) *int32 {
	return &i
}
func strPtr(s string) *string {
	return &s
}

func (m ApiHandler) InitializeRouterEngine() *gin.Engine {
	router := gin.Default()
	router.Use(cors.Default())
	router.Use(m.logRequestMiddlware)

	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(200, map[string]string{"message": "welcome to finsim"})
	})

	authed := router.Group("/")
	authed.Use(m.authMiddleware)

	authed.GET("/portfolio", m.getPortfolio)
	authed.POST("/portfolio/trade", m.trade)

	authed.POST("/scenarios", m.startScenario)
	authed.GET("/scenarios/:id", m.getScenario)
	authed.POST("/scenarios/:id/continue", m.continueScenario)
	authed.POST("/scenarios/:id/end", m.endScenario)
	authed.GET("/scenarios/:id/summary", m.scenarioSummary)

	authed.GET("/commitments", m.listCommitments)
	authed.POST("/commitments", m.createCommitment)
	authed.POST("/commitments/:id/withdraw", m.withdrawCommitment)

	authed.POST("/budget/evaluate", m.evaluateBudget)
	authed.POST("/stress-test", m.stressTest)
	authed.POST("/long-term-impact", m.longTermImpact)

	return router
}

func (m ApiHandler) StartApi(port int) error {
	router := m.InitializeRouterEngine()
	return router.Run(fmt.Sprintf(":%d", port))
}

// errorStatus maps engine errors to a status code. ownership failures are
// reported as not found, so nothing here returns 403
func errorStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrNarrativeParse):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrNarrativeProvider):
		return http.StatusBadGateway
	case errors.Is(err, domain.ErrInsufficientBalance),
		errors.Is(err, domain.ErrInsufficientAssets),
		errors.Is(err, domain.ErrInvalidAllocation),
		errors.Is(err, domain.ErrInvalidChoice),
		errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrScenarioInactive):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func returnErrorJson(err error, c *gin.Context) {
	returnErrorJsonCode(err, c, errorStatus(err))
}

func returnErrorJsonCode(err error, c *gin.Context, code int) {
	lg := logger.FromContext(c.Request.Context())
	if code >= 500 {
		lg.Errorf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	} else {
		lg.Infof("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	}
	c.AbortWithStatusJSON(code, gin.H{
		"error": err.Error(),
	})
}

func pathUUID(c *gin.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %s is not a valid id", domain.ErrInvalidInput, name)
	}
	return id, nil
}

type responseBodyWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (r responseBodyWriter) Write(b []byte) (int, error) {
	r.body.Write(b)
	return r.ResponseWriter.Write(b)
}

func (m ApiHandler) logRequestMiddlware(ctx *gin.Context) {
	lg := logger.FromContext(ctx.Request.Context()).With("requestId", uuid.NewString())
	ctx.Request = ctx.Request.WithContext(logger.WithContext(ctx.Request.Context(), lg))

	if m.ApiRequestRepository == nil {
		ctx.Next()
		return
	}

	w := &responseBodyWriter{body: &bytes.Buffer{}, ResponseWriter: ctx.Writer}
	ctx.Writer = w

	body, err := ctx.GetRawData()
	if err != nil {
		lg.Warnf("failed to get raw data: %v", err)
	}
	ctx.Request.Body = io.NopCloser(bytes.NewReader(body))

	start := time.Now().UTC()
	req, err := m.ApiRequestRepository.Add(model.APIRequest{
		IPAddress:   strPtr(ctx.ClientIP()),
		Method:      ctx.Request.Method,
		Route:       ctx.Request.URL.Path,
		RequestBody: strPtr(string(body)),
		StartTs:     start,
	})
	if err != nil {
		lg.Warnf("failed to record request: %v", err)
	}

	ctx.Next()

	if req != nil {
		if userAccountID, err := getUserAccountID(ctx); err == nil {
			req.UserID = &userAccountID
		}
		req.DurationMs = int64Ptr(time.Since(start).Milliseconds())
		req.StatusCode = int32Ptr(int32(ctx.Writer.Status()))
		req.ResponseBody = strPtr(w.body.String())

		err = m.ApiRequestRepository.Update(*req)
		if err != nil {
			lg.Warnf("failed to update request: %v", err)
		}
	}
}
