package employee

import (
	"context"
	"encoding/json"
	"time"

	employeeerrors "go-hradmin/internal/employee/errors"
	"go-hradmin/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const OptionsCacheKey = "employees:options"

type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context) ([]EmployeeResponse, error)
	GetOptions(ctx context.Context, excludeEmployeeID string) ([]EmployeeOption, error)
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		repo:   repo,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("email", req.Email),
	)

	emp := &Employee{
		ID:       uuid.New(),
		FullName: req.FullName,
		Email:    req.Email,
	}
	if req.DepartmentID != "" {
		deptID, err := uuid.Parse(req.DepartmentID)
		if err != nil {
			return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
		}
		emp.DepartmentID = &deptID
	}
	if req.PositionID != "" {
		posID, err := uuid.Parse(req.PositionID)
		if err != nil {
			return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
		}
		emp.PositionID = &posID
	}

	if err := s.repo.Create(ctx, emp); err != nil {
		s.logger.Error("create employee failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	s.invalidateOptionsCache(ctx)
	s.logger.Info("create employee success", zap.String("employee_id", emp.ID.String()))
	return mapToEmployeeResponse(emp), nil
}

func (s *service) GetAll(ctx context.Context) ([]EmployeeResponse, error) {
	emps, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]EmployeeResponse, len(emps))
	for i := range emps {
		resp[i] = mapToEmployeeResponse(&emps[i])
	}
	return resp, nil
}

// GetOptions serves the approver picker. The full option list is cached as
// one entry and the requesting employee is filtered out after the cache read,
// so one cache key covers every caller.
func (s *service) GetOptions(ctx context.Context, excludeEmployeeID string) ([]EmployeeOption, error) {
	if s.rdb != nil {
		cached, err := s.rdb.Get(ctx, OptionsCacheKey).Result()
		if err == nil {
			var options []EmployeeOption
			if err := json.Unmarshal([]byte(cached), &options); err == nil {
				return filterOption(options, excludeEmployeeID), nil
			}
		} else if err != redis.Nil {
			s.logger.Warn("employee options cache read failed", zap.Error(err))
		}
	}

	v, err, _ := s.sf.Do(OptionsCacheKey, func() (interface{}, error) {
		emps, err := s.repo.FindOptions(ctx, "")
		if err != nil {
			return nil, err
		}

		options := make([]EmployeeOption, len(emps))
		for i, e := range emps {
			options[i] = EmployeeOption{ID: e.ID.String(), FullName: e.FullName}
		}

		if s.rdb != nil {
			if payload, err := json.Marshal(options); err == nil {
				if err := s.rdb.Set(ctx, OptionsCacheKey, payload, time.Hour).Err(); err != nil {
					s.logger.Warn("employee options cache write failed", zap.Error(err))
				}
			}
		}
		return options, nil
	})
	if err != nil {
		return nil, err
	}

	return filterOption(v.([]EmployeeOption), excludeEmployeeID), nil
}

func (s *service) GetByID(ctx context.Context, id string) (EmployeeResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}

	emp, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}
	return mapToEmployeeResponse(emp), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}

	emp, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	emp.FullName = req.FullName
	emp.Email = req.Email
	emp.DepartmentID = nil
	emp.PositionID = nil
	if req.DepartmentID != "" {
		deptID, err := uuid.Parse(req.DepartmentID)
		if err != nil {
			return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
		}
		emp.DepartmentID = &deptID
	}
	if req.PositionID != "" {
		posID, err := uuid.Parse(req.PositionID)
		if err != nil {
			return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
		}
		emp.PositionID = &posID
	}

	if err := s.repo.Update(ctx, emp); err != nil {
		s.logger.Error("update employee failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	s.invalidateOptionsCache(ctx)
	s.logger.Info("update employee success", zap.String("employee_id", id))
	return mapToEmployeeResponse(emp), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return employeeerrors.ErrInvalidEmployeeID
	}

	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return mapRepositoryError(err)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("delete employee failed", zap.Error(err))
		return err
	}

	s.invalidateOptionsCache(ctx)
	s.logger.Info("delete employee success", zap.String("employee_id", id))
	return nil
}

func (s *service) invalidateOptionsCache(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, OptionsCacheKey).Err(); err != nil {
		s.logger.Warn("employee options cache invalidation failed", zap.Error(err))
	}
}

func filterOption(options []EmployeeOption, excludeID string) []EmployeeOption {
	if excludeID == "" {
		return options
	}
	filtered := make([]EmployeeOption, 0, len(options))
	for _, o := range options {
		if o.ID != excludeID {
			filtered = append(filtered, o)
		}
	}
	return filtered
}

func mapToEmployeeResponse(emp *Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:       emp.ID.String(),
		FullName: emp.FullName,
		Email:    emp.Email,
	}
	if emp.DepartmentID != nil {
		resp.DepartmentID = emp.DepartmentID.String()
	}
	if emp.PositionID != nil {
		resp.PositionID = emp.PositionID.String()
	}
	return resp
}
