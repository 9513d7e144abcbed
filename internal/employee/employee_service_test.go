package employee_test

import (
	"context"
	"testing"

	"go-hradmin/internal/employee"
	employeeerrors "go-hradmin/internal/employee/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeEmployeeRepository struct {
	createFn      func(ctx context.Context, emp *employee.Employee) error
	findAllFn     func(ctx context.Context) ([]employee.Employee, error)
	findByIDFn    func(ctx context.Context, id string) (*employee.Employee, error)
	findOptionsFn func(ctx context.Context, excludeEmployeeID string) ([]employee.Employee, error)
	updateFn      func(ctx context.Context, emp *employee.Employee) error
	deleteFn      func(ctx context.Context, id string) error
}

func (f *fakeEmployeeRepository) Create(ctx context.Context, emp *employee.Employee) error {
	if f.createFn != nil {
		return f.createFn(ctx, emp)
	}
	return nil
}

func (f *fakeEmployeeRepository) FindAll(ctx context.Context) ([]employee.Employee, error) {
	if f.findAllFn != nil {
		return f.findAllFn(ctx)
	}
	return nil, nil
}

func (f *fakeEmployeeRepository) FindByID(ctx context.Context, id string) (*employee.Employee, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeEmployeeRepository) FindOptions(ctx context.Context, excludeEmployeeID string) ([]employee.Employee, error) {
	if f.findOptionsFn != nil {
		return f.findOptionsFn(ctx, excludeEmployeeID)
	}
	return nil, nil
}

func (f *fakeEmployeeRepository) Update(ctx context.Context, emp *employee.Employee) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, emp)
	}
	return nil
}

func (f *fakeEmployeeRepository) Delete(ctx context.Context, id string) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return nil
}

func TestEmployeeService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		repo := &fakeEmployeeRepository{
			createFn: func(ctx context.Context, emp *employee.Employee) error {
				assert.Equal(t, "Jamie Doe", emp.FullName)
				assert.NotEqual(t, uuid.Nil, emp.ID)
				return nil
			},
		}
		svc := employee.NewService(repo, nil)

		resp, err := svc.Create(ctx, employee.CreateEmployeeRequest{
			FullName: "Jamie Doe",
			Email:    "jamie@example.com",
		})

		assert.NoError(t, err)
		assert.Equal(t, "Jamie Doe", resp.FullName)
	})
}

func TestEmployeeService_GetOptions(t *testing.T) {
	ctx := context.Background()

	t.Run("success filters out the requesting employee", func(t *testing.T) {
		me := uuid.New()
		other := uuid.New()

		repo := &fakeEmployeeRepository{
			findOptionsFn: func(ctx context.Context, excludeEmployeeID string) ([]employee.Employee, error) {
				return []employee.Employee{
					{ID: me, FullName: "Me"},
					{ID: other, FullName: "Colleague"},
				}, nil
			},
		}
		svc := employee.NewService(repo, nil)

		options, err := svc.GetOptions(ctx, me.String())

		assert.NoError(t, err)
		assert.Len(t, options, 1)
		assert.Equal(t, other.String(), options[0].ID)
	})

	t.Run("success without exclusion returns everyone", func(t *testing.T) {
		repo := &fakeEmployeeRepository{
			findOptionsFn: func(ctx context.Context, excludeEmployeeID string) ([]employee.Employee, error) {
				return []employee.Employee{
					{ID: uuid.New(), FullName: "A"},
					{ID: uuid.New(), FullName: "B"},
				}, nil
			},
		}
		svc := employee.NewService(repo, nil)

		options, err := svc.GetOptions(ctx, "")

		assert.NoError(t, err)
		assert.Len(t, options, 2)
	})
}

func TestEmployeeService_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("negative unknown employee", func(t *testing.T) {
		svc := employee.NewService(&fakeEmployeeRepository{}, nil)

		_, err := svc.GetByID(ctx, uuid.New().String())
		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})

	t.Run("negative malformed id", func(t *testing.T) {
		svc := employee.NewService(&fakeEmployeeRepository{}, nil)

		_, err := svc.GetByID(ctx, "nope")
		assert.ErrorIs(t, err, employeeerrors.ErrInvalidEmployeeID)
	})
}
