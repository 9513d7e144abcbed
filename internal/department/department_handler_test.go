package department_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-hradmin/internal/department"
	departmenterrors "go-hradmin/internal/department/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeDepartmentService struct {
	createFn  func(ctx context.Context, req department.CreateDepartmentRequest) (department.DepartmentResponse, error)
	getAllFn  func(ctx context.Context) ([]department.DepartmentResponse, error)
	getByIDFn func(ctx context.Context, id string) (department.DepartmentResponse, error)
	updateFn  func(ctx context.Context, id string, req department.UpdateDepartmentRequest) (department.DepartmentResponse, error)
	deleteFn  func(ctx context.Context, id string) error
}

func (f *fakeDepartmentService) Create(ctx context.Context, req department.CreateDepartmentRequest) (department.DepartmentResponse, error) {
	return f.createFn(ctx, req)
}
func (f *fakeDepartmentService) GetAll(ctx context.Context) ([]department.DepartmentResponse, error) {
	return f.getAllFn(ctx)
}
func (f *fakeDepartmentService) GetByID(ctx context.Context, id string) (department.DepartmentResponse, error) {
	return f.getByIDFn(ctx, id)
}
func (f *fakeDepartmentService) Update(ctx context.Context, id string, req department.UpdateDepartmentRequest) (department.DepartmentResponse, error) {
	return f.updateFn(ctx, id, req)
}
func (f *fakeDepartmentService) Delete(ctx context.Context, id string) error {
	return f.deleteFn(ctx, id)
}

func init() {
	gin.SetMode(gin.TestMode)
}

func TestDepartmentHandler_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeDepartmentService{
			createFn: func(ctx context.Context, req department.CreateDepartmentRequest) (department.DepartmentResponse, error) {
				return department.DepartmentResponse{ID: uuid.New().String(), Name: req.Name}, nil
			},
		}

		h := department.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/departments", strings.NewReader(`{"name":"Engineering"}`))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Create(c)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("negative validation error", func(t *testing.T) {
		h := department.NewHandler(&fakeDepartmentService{})
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/departments", strings.NewReader(`{}`))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("negative service error", func(t *testing.T) {
		svc := &fakeDepartmentService{
			createFn: func(ctx context.Context, req department.CreateDepartmentRequest) (department.DepartmentResponse, error) {
				return department.DepartmentResponse{}, errors.New("boom")
			},
		}

		h := department.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/departments", strings.NewReader(`{"name":"Engineering"}`))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Create(c)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestDepartmentHandler_GetById(t *testing.T) {
	t.Run("negative unknown department", func(t *testing.T) {
		deptID := uuid.New().String()
		svc := &fakeDepartmentService{
			getByIDFn: func(ctx context.Context, id string) (department.DepartmentResponse, error) {
				assert.Equal(t, deptID, id)
				return department.DepartmentResponse{}, departmenterrors.ErrDepartmentNotFound
			},
		}

		h := department.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/departments/"+deptID, nil)
		c.Params = []gin.Param{{Key: "id", Value: deptID}}

		h.GetById(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestDepartmentHandler_Delete(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		deptID := uuid.New().String()
		svc := &fakeDepartmentService{
			deleteFn: func(ctx context.Context, id string) error {
				assert.Equal(t, deptID, id)
				return nil
			},
		}

		h := department.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodDelete, "/departments/"+deptID, nil)
		c.Params = []gin.Param{{Key: "id", Value: deptID}}

		h.Delete(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}
