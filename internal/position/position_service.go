package position

import (
	"context"
	"errors"

	positionerrors "go-hradmin/internal/position/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Service interface {
	Create(ctx context.Context, req CreatePositionRequest) (PositionResponse, error)
	GetAll(ctx context.Context) ([]PositionResponse, error)
	GetByID(ctx context.Context, id string) (PositionResponse, error)
	Update(ctx context.Context, id string, req UpdatePositionRequest) (PositionResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, req CreatePositionRequest) (PositionResponse, error) {
	pos := &Position{
		ID:   uuid.New(),
		Name: req.Name,
	}
	if req.DepartmentID != "" {
		deptID, err := uuid.Parse(req.DepartmentID)
		if err != nil {
			return PositionResponse{}, positionerrors.ErrInvalidPositionID
		}
		pos.DepartmentID = &deptID
	}

	if err := s.repo.Create(ctx, pos); err != nil {
		return PositionResponse{}, err
	}

	return mapToPositionResponse(pos), nil
}

func (s *service) GetAll(ctx context.Context) ([]PositionResponse, error) {
	positions, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]PositionResponse, len(positions))
	for i := range positions {
		resp[i] = mapToPositionResponse(&positions[i])
	}
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, id string) (PositionResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return PositionResponse{}, positionerrors.ErrInvalidPositionID
	}

	pos, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return PositionResponse{}, positionerrors.ErrPositionNotFound
		}
		return PositionResponse{}, err
	}
	return mapToPositionResponse(pos), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdatePositionRequest) (PositionResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return PositionResponse{}, positionerrors.ErrInvalidPositionID
	}

	pos, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return PositionResponse{}, positionerrors.ErrPositionNotFound
		}
		return PositionResponse{}, err
	}

	pos.Name = req.Name
	pos.DepartmentID = nil
	if req.DepartmentID != "" {
		deptID, err := uuid.Parse(req.DepartmentID)
		if err != nil {
			return PositionResponse{}, positionerrors.ErrInvalidPositionID
		}
		pos.DepartmentID = &deptID
	}

	if err := s.repo.Update(ctx, pos); err != nil {
		return PositionResponse{}, err
	}

	return mapToPositionResponse(pos), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return positionerrors.ErrInvalidPositionID
	}

	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return positionerrors.ErrPositionNotFound
		}
		return err
	}

	return s.repo.Delete(ctx, id)
}

func mapToPositionResponse(pos *Position) PositionResponse {
	resp := PositionResponse{
		ID:   pos.ID.String(),
		Name: pos.Name,
	}
	if pos.DepartmentID != nil {
		resp.DepartmentID = pos.DepartmentID.String()
	}
	return resp
}
