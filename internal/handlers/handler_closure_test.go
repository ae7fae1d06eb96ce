package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/poscore/cashdesk_app/internal/apperrors"
	"github.com/poscore/cashdesk_app/internal/core/domain"
	portsrepo "github.com/poscore/cashdesk_app/internal/core/ports/repositories"
	portssvc "github.com/poscore/cashdesk_app/internal/core/ports/services"
	"github.com/poscore/cashdesk_app/internal/dto"
	"github.com/poscore/cashdesk_app/internal/handlers"
	"github.com/poscore/cashdesk_app/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock ClosureService ---
type MockClosureService struct {
	mock.Mock
}

func (m *MockClosureService) CreateClosure(ctx context.Context, req dto.CreateClosureRequest) (*domain.DailyClosure, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DailyClosure), args.Error(1)
}
func (m *MockClosureService) CloseClosure(ctx context.Context, closureID string, req dto.CloseClosureRequest) (*domain.DailyClosure, error) {
	args := m.Called(ctx, closureID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DailyClosure), args.Error(1)
}
func (m *MockClosureService) MarkReconciled(ctx context.Context, closureID string, actorID string) (*domain.DailyClosure, error) {
	args := m.Called(ctx, closureID, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DailyClosure), args.Error(1)
}
func (m *MockClosureService) GetClosureByID(ctx context.Context, closureID string) (*domain.DailyClosure, error) {
	args := m.Called(ctx, closureID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DailyClosure), args.Error(1)
}
func (m *MockClosureService) ListClosures(ctx context.Context, filter portsrepo.ClosureListFilter, limit int, nextToken *string) ([]domain.DailyClosure, *string, error) {
	args := m.Called(ctx, filter, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var token *string
	if args.Get(1) != nil {
		tokenVal := args.Get(1).(string)
		token = &tokenVal
	}
	return args.Get(0).([]domain.DailyClosure), token, args.Error(2)
}

// Ensure mock implements the interface
var _ portssvc.ClosureSvcFacade = (*MockClosureService)(nil)

// --- Test Suite ---
type ClosureHandlerTestSuite struct {
	suite.Suite
	router             *gin.Engine
	mockClosureService *MockClosureService
}

func (suite *ClosureHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()

	suite.mockClosureService = new(MockClosureService)

	cfg := &config.Config{RateLimit: "1000-M", IsProduction: true}
	handlers.RegisterRoutes(suite.router, cfg, &portssvc.ServiceContainer{
		Ledger:  new(MockLedgerService),
		Closure: suite.mockClosureService,
		Revenue: new(MockRevenueService),
	})
}

func TestClosureHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ClosureHandlerTestSuite))
}

func (suite *ClosureHandlerTestSuite) postJSON(path string, body any) *httptest.ResponseRecorder {
	payload, err := json.Marshal(body)
	suite.Require().NoError(err)

	req, _ := http.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func openClosure() *domain.DailyClosure {
	return &domain.DailyClosure{
		ClosureID:      uuid.NewString(),
		ClosureDate:    time.Date(2025, 11, 3, 0, 0, 0, 0, time.UTC),
		Status:         domain.ClosureOpen,
		OpeningBalance: decimal.RequireFromString("10000"),
		AuditFields:    domain.AuditFields{CreatedAt: time.Now().UTC(), CreatedBy: "emp-1"},
	}
}

// --- Test Cases ---

func (suite *ClosureHandlerTestSuite) TestCreateClosure_Success() {
	closure := openClosure()
	suite.mockClosureService.On("CreateClosure", mock.Anything, mock.MatchedBy(func(r dto.CreateClosureRequest) bool {
		return r.OpeningBalance.Equal(decimal.RequireFromString("10000")) && r.ActorID == "emp-1"
	})).Return(closure, nil).Once()

	w := suite.postJSON("/api/v1/closures", gin.H{
		"openingBalance": "10000",
		"actorID":        "emp-1",
	})

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.ClosureResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(closure.ClosureID, resp.ClosureID)
	suite.Equal("2025-11-03", resp.ClosureDate)
	suite.Equal(string(domain.ClosureOpen), resp.Status)
}

func (suite *ClosureHandlerTestSuite) TestCreateClosure_DuplicateOpen() {
	suite.mockClosureService.On("CreateClosure", mock.Anything, mock.AnythingOfType("dto.CreateClosureRequest")).
		Return(nil, fmt.Errorf("%w: 2025-11-03", apperrors.ErrDuplicateOpenClosure)).Once()

	w := suite.postJSON("/api/v1/closures", gin.H{
		"openingBalance": "10000",
		"actorID":        "emp-1",
	})

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *ClosureHandlerTestSuite) TestCloseClosure_Success() {
	closure := openClosure()
	closure.Status = domain.ClosureClosed
	expected := decimal.RequireFromString("15000")
	actual := decimal.RequireFromString("14800")
	difference := decimal.RequireFromString("-200")
	closure.ExpectedClosingBalance = &expected
	closure.ActualClosingBalance = &actual
	closure.Difference = &difference

	suite.mockClosureService.On("CloseClosure", mock.Anything, closure.ClosureID, mock.MatchedBy(func(r dto.CloseClosureRequest) bool {
		return r.ActualClosingBalance.Equal(actual)
	})).Return(closure, nil).Once()

	w := suite.postJSON("/api/v1/closures/"+closure.ClosureID+"/close", gin.H{
		"actualClosingBalance": "14800",
		"actorID":              "emp-1",
	})

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ClosureResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(string(domain.ClosureClosed), resp.Status)
	suite.Require().NotNil(resp.Difference)
	suite.True(difference.Equal(*resp.Difference))
}

func (suite *ClosureHandlerTestSuite) TestCloseClosure_AlreadyClosed() {
	closureID := uuid.NewString()
	suite.mockClosureService.On("CloseClosure", mock.Anything, closureID, mock.AnythingOfType("dto.CloseClosureRequest")).
		Return(nil, fmt.Errorf("%w: closure %s", apperrors.ErrAlreadyClosed, closureID)).Once()

	w := suite.postJSON("/api/v1/closures/"+closureID+"/close", gin.H{
		"actualClosingBalance": "14800",
		"actorID":              "emp-1",
	})

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *ClosureHandlerTestSuite) TestReconcileClosure_Success() {
	closure := openClosure()
	closure.Status = domain.ClosureReconciled

	suite.mockClosureService.On("MarkReconciled", mock.Anything, closure.ClosureID, "auditor-1").
		Return(closure, nil).Once()

	w := suite.postJSON("/api/v1/closures/"+closure.ClosureID+"/reconcile", gin.H{
		"actorID": "auditor-1",
	})

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ClosureResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(string(domain.ClosureReconciled), resp.Status)
}

func (suite *ClosureHandlerTestSuite) TestGetClosure_NotFound() {
	closureID := uuid.NewString()
	suite.mockClosureService.On("GetClosureByID", mock.Anything, closureID).
		Return(nil, apperrors.ErrNotFound).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/closures/"+closureID, nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *ClosureHandlerTestSuite) TestListClosures_FilterPassthrough() {
	suite.mockClosureService.On("ListClosures", mock.Anything, mock.MatchedBy(func(f portsrepo.ClosureListFilter) bool {
		return f.From != nil && f.From.Format("2006-01-02") == "2025-11-01" &&
			f.To != nil && f.To.Format("2006-01-02") == "2025-11-30" &&
			f.Status != nil && *f.Status == domain.ClosureClosed
	}), 0, (*string)(nil)).Return([]domain.DailyClosure{}, nil, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/closures?from=2025-11-01&to=2025-11-30&status=CLOSED", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockClosureService.AssertExpectations(suite.T())
}

func (suite *ClosureHandlerTestSuite) TestListClosures_BadStatus() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/closures?status=PENDING", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockClosureService.AssertNotCalled(suite.T(), "ListClosures", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
