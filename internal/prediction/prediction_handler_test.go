package prediction_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mirak10/PeopleIQ/internal/prediction"
	predictionerrors "github.com/mirak10/PeopleIQ/internal/prediction/errors"
	predictionMock "github.com/mirak10/PeopleIQ/internal/prediction/mock"
	"github.com/mirak10/PeopleIQ/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func setupHandlerRouter(t *testing.T) (*gin.Engine, *predictionMock.MockService) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	svc := predictionMock.NewMockService(ctrl)
	h := prediction.NewHandler(svc, zap.NewNop())

	r := gin.New()
	g := r.Group("/predictions")
	g.GET("/summary", h.Summary)
	g.GET("/turnover", h.Turnover)
	g.GET("/department/:dept", h.ByDepartment)
	g.GET("/:employeeCode", h.ByEmployeeCode)
	g.GET("", h.List)
	return r, svc
}

func get(r *gin.Engine, path string) (*httptest.ResponseRecorder, response.ApiEnvelope) {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	var env response.ApiEnvelope
	_ = json.Unmarshal(w.Body.Bytes(), &env)
	return w, env
}

func TestHandler_Turnover(t *testing.T) {
	r, svc := setupHandlerRouter(t)
	svc.EXPECT().Turnover(gomock.Any()).Return(prediction.TurnoverResponse{
		Distribution:      map[string]int64{"High": 2, "Medium": 1, "Low": 0},
		Departments:       []prediction.DepartmentRisk{},
		TopFactors:        []prediction.FactorCount{},
		HighRiskEmployees: []prediction.HighRiskEmployee{},
		TotalEmployees:    3,
	}, nil)

	w, env := get(r, "/predictions/turnover")
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Success)
	assert.Contains(t, w.Body.String(), `"distribution":{"High":2,"Low":0,"Medium":1}`)
	assert.Contains(t, w.Body.String(), `"highRiskEmployees":[]`)
	assert.Contains(t, w.Body.String(), `"totalEmployees":3`)
}

func TestHandler_Summary_Failure(t *testing.T) {
	r, svc := setupHandlerRouter(t)
	svc.EXPECT().Summary(gomock.Any()).Return(prediction.SummaryResponse{}, errors.New("db down"))

	w, env := get(r, "/predictions/summary")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.False(t, env.Success)
}

func TestHandler_ByEmployeeCode(t *testing.T) {
	r, svc := setupHandlerRouter(t)

	t.Run("found", func(t *testing.T) {
		svc.EXPECT().ByEmployeeCode(gomock.Any(), "EMP-000001").
			Return(prediction.PredictionResponse{EmployeeCode: "EMP-000001", Alerts: []string{}}, nil)

		w, _ := get(r, "/predictions/EMP-000001")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"employeeCode":"EMP-000001"`)
	})

	t.Run("missing", func(t *testing.T) {
		svc.EXPECT().ByEmployeeCode(gomock.Any(), "EMP-404").
			Return(prediction.PredictionResponse{}, predictionerrors.ErrPredictionNotFound)

		w, env := get(r, "/predictions/EMP-404")
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Prediction not found", env.Message)
	})
}

func TestHandler_ByDepartment(t *testing.T) {
	r, svc := setupHandlerRouter(t)
	svc.EXPECT().ByDepartment(gomock.Any(), "Sales").Return([]prediction.PredictionResponse{{EmployeeCode: "EMP-1"}}, nil)

	w, env := get(r, "/predictions/department/Sales")
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Success)
}

func TestHandler_List(t *testing.T) {
	r, svc := setupHandlerRouter(t)
	svc.EXPECT().
		List(gomock.Any(), prediction.ListQuery{Page: 2, Limit: 10, Risk: "High", Department: "Sales"}).
		Return([]prediction.PredictionResponse{}, response.NewPaginationMeta(11, 2, 10), nil)

	w, env := get(r, "/predictions?page=2&limit=10&risk=High&department=Sales")
	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, env.Pagination)
	assert.Equal(t, 2, env.Pagination.TotalPages)
	assert.Equal(t, int64(11), env.Pagination.Total)
}

func TestHandler_List_BadQuery(t *testing.T) {
	r, _ := setupHandlerRouter(t)

	w, env := get(r, "/predictions?page=abc")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, env.Success)
}
