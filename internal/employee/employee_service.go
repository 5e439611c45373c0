package employee

import (
	"context"

	employeeerrors "go-leave/internal/employee/errors"
	"go-leave/internal/shared/contextutil"

	"go.uber.org/zap"
)

type Service interface {
	Save(ctx context.Context, id int64, req SaveEmployeeRequest) (EmployeeResponse, error)
	GetByID(ctx context.Context, id int64) (EmployeeResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Save(ctx context.Context, id int64, req SaveEmployeeRequest) (EmployeeResponse, error) {
	log := contextutil.Logger(ctx, s.logger)
	if id <= 0 {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}

	e := Employee{
		ID:    id,
		Name:  req.Name,
		Email: req.Email,
	}
	if err := s.repo.Save(ctx, e); err != nil {
		log.Error("save employee failed", zap.Int64("employee_id", id), zap.Error(err))
		return EmployeeResponse{}, err
	}

	log.Info("save employee success", zap.Int64("employee_id", id))
	return mapToResponse(e), nil
}

func (s *service) GetByID(ctx context.Context, id int64) (EmployeeResponse, error) {
	e, found, err := s.repo.FindByID(ctx, id)
	if err != nil {
		contextutil.Logger(ctx, s.logger).Error("find employee failed", zap.Int64("employee_id", id), zap.Error(err))
		return EmployeeResponse{}, err
	}
	if !found {
		return EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
	}
	return mapToResponse(e), nil
}
