package employee_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mirak10/PeopleIQ/internal/domain"
	"github.com/mirak10/PeopleIQ/internal/employee"
	employeeerrors "github.com/mirak10/PeopleIQ/internal/employee/errors"
	"github.com/mirak10/PeopleIQ/internal/middleware"
	"github.com/mirak10/PeopleIQ/internal/shared/response"
	usererrors "github.com/mirak10/PeopleIQ/internal/user/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEmployeeService struct {
	ListFn    func(ctx context.Context, page, limit int) ([]employee.EmployeeListItem, response.PaginationMeta, error)
	GetByIDFn func(ctx context.Context, id string) (employee.EmployeeResponse, error)
	CreateFn  func(ctx context.Context, req employee.CreateEmployeeRequest) (employee.CreateEmployeeResponse, error)
	UpdateFn  func(ctx context.Context, id string, role domain.Role, patch map[string]any) (employee.EmployeeResponse, error)
	DeleteFn  func(ctx context.Context, id string) error
}

func (f *fakeEmployeeService) List(ctx context.Context, page, limit int) ([]employee.EmployeeListItem, response.PaginationMeta, error) {
	return f.ListFn(ctx, page, limit)
}
func (f *fakeEmployeeService) GetByID(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	return f.GetByIDFn(ctx, id)
}
func (f *fakeEmployeeService) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.CreateEmployeeResponse, error) {
	return f.CreateFn(ctx, req)
}
func (f *fakeEmployeeService) Update(ctx context.Context, id string, role domain.Role, patch map[string]any) (employee.EmployeeResponse, error) {
	return f.UpdateFn(ctx, id, role, patch)
}
func (f *fakeEmployeeService) Delete(ctx context.Context, id string) error {
	return f.DeleteFn(ctx, id)
}

type envelope struct {
	Success    bool                     `json:"success"`
	Data       json.RawMessage          `json:"data"`
	Pagination *response.PaginationMeta `json:"pagination"`
	Message    string                   `json:"message"`
	Code       string                   `json:"code"`
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func withRole(role domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ContextRole, role)
		c.Next()
	}
}

func newRouter(h *employee.Handler, role domain.Role) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	g := r.Group("/api/v1/employees", withRole(role))
	g.GET("", h.GetAll)
	g.GET("/:id", h.GetByID)
	g.POST("", h.Create)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
	return r
}

func serve(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestEmployeeHandler_GetAll(t *testing.T) {
	svc := &fakeEmployeeService{
		ListFn: func(_ context.Context, page, limit int) ([]employee.EmployeeListItem, response.PaginationMeta, error) {
			assert.Equal(t, 2, page)
			assert.Equal(t, 10, limit)
			return []employee.EmployeeListItem{{EmployeeCode: "EMP-000001", AttritionRisk: 0.4}},
				response.NewPaginationMeta(11, page, limit), nil
		},
	}
	w := serve(newRouter(employee.NewHandler(svc), domain.RoleHR), http.MethodGet, "/api/v1/employees?page=2&limit=10", "")

	require.Equal(t, http.StatusOK, w.Code)
	env := decodeEnvelope(t, w)
	assert.True(t, env.Success)
	require.NotNil(t, env.Pagination)
	assert.Equal(t, 2, env.Pagination.TotalPages)
	assert.Contains(t, string(env.Data), `"attritionRisk":0.4`)
}

func TestEmployeeHandler_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeEmployeeService{
			CreateFn: func(_ context.Context, req employee.CreateEmployeeRequest) (employee.CreateEmployeeResponse, error) {
				assert.Equal(t, "John Doe", req.Name)
				assert.Equal(t, "Finance", req.Department)
				return employee.CreateEmployeeResponse{
					Employee:     employee.EmployeeResponse{ID: uuid.NewString(), Name: req.Name, EmployeeCode: "EMP-000010"},
					TempPassword: "abcd1234",
				}, nil
			},
		}
		w := serve(newRouter(employee.NewHandler(svc), domain.RoleAdmin), http.MethodPost, "/api/v1/employees",
			`{"name":"John Doe","email":"john@example.com","department":"Finance"}`)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"tempPassword":"abcd1234"`)
	})

	t.Run("missing email", func(t *testing.T) {
		w := serve(newRouter(employee.NewHandler(&fakeEmployeeService{}), domain.RoleAdmin), http.MethodPost, "/api/v1/employees",
			`{"name":"John Doe"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		env := decodeEnvelope(t, w)
		assert.False(t, env.Success)
		assert.Equal(t, "INVALID_INPUT", env.Code)
	})

	t.Run("duplicate email", func(t *testing.T) {
		svc := &fakeEmployeeService{
			CreateFn: func(context.Context, employee.CreateEmployeeRequest) (employee.CreateEmployeeResponse, error) {
				return employee.CreateEmployeeResponse{}, usererrors.ErrEmailAlreadyRegistered
			},
		}
		w := serve(newRouter(employee.NewHandler(svc), domain.RoleAdmin), http.MethodPost, "/api/v1/employees",
			`{"name":"John","email":"john@example.com"}`)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, "Email already registered", decodeEnvelope(t, w).Message)
	})
}

func TestEmployeeHandler_Update(t *testing.T) {
	id := uuid.NewString()
	svc := &fakeEmployeeService{
		UpdateFn: func(_ context.Context, gotID string, role domain.Role, patch map[string]any) (employee.EmployeeResponse, error) {
			assert.Equal(t, id, gotID)
			assert.Equal(t, domain.RoleManager, role)
			assert.Equal(t, json.Number("4"), patch["trainingCount"])
			return employee.EmployeeResponse{ID: gotID}, nil
		},
	}

	t.Run("passes caller role and raw patch", func(t *testing.T) {
		w := serve(newRouter(employee.NewHandler(svc), domain.RoleManager), http.MethodPut, "/api/v1/employees/"+id,
			`{"trainingCount":4}`)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		w := serve(newRouter(employee.NewHandler(svc), domain.RoleManager), http.MethodPut, "/api/v1/employees/"+id, `{`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("no role in context", func(t *testing.T) {
		gin.SetMode(gin.TestMode)
		r := gin.New()
		r.PUT("/employees/:id", employee.NewHandler(svc).Update)
		w := serve(r, http.MethodPut, "/employees/"+id, `{}`)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestEmployeeHandler_GetByIDAndDelete(t *testing.T) {
	svc := &fakeEmployeeService{
		GetByIDFn: func(context.Context, string) (employee.EmployeeResponse, error) {
			return employee.EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
		},
		DeleteFn: func(context.Context, string) error { return nil },
	}
	r := newRouter(employee.NewHandler(svc), domain.RoleAdmin)

	w := serve(r, http.MethodGet, "/api/v1/employees/"+uuid.NewString(), "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Employee not found", decodeEnvelope(t, w).Message)

	w = serve(r, http.MethodDelete, "/api/v1/employees/"+uuid.NewString(), "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Employee deleted")
}
