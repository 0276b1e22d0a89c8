package service

import (
	"context"
	"time"

	"guardpost/internal/domain"

	"github.com/google/uuid"
)

const defaultTaxCode = "1257L"

type workforceService struct {
	repo EmployeeRepository
}

func NewWorkforceService(repo EmployeeRepository) WorkforceService {
	return &workforceService{repo: repo}
}

func (s *workforceService) Create(ctx context.Context, req domain.CreateEmployeeRequest) (uuid.UUID, error) {
	taxCode := req.TaxCode
	if taxCode == "" {
		taxCode = defaultTaxCode
	}

	emp := &domain.Employee{
		ID:           uuid.New(),
		Name:         req.Name,
		Email:        req.Email,
		Department:   req.Department,
		Position:     req.Position,
		AnnualSalary: req.AnnualSalary,
		ContractID:   req.ContractID,
		BankAccount:  req.BankAccount,
		SortCode:     req.SortCode,
		TaxCode:      taxCode,
		NINumber:     req.NINumber,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, emp); err != nil {
		return uuid.Nil, err
	}
	return emp.ID, nil
}

func (s *workforceService) List(ctx context.Context) ([]*domain.Employee, error) {
	return s.repo.List(ctx)
}

func (s *workforceService) Get(ctx context.Context, id uuid.UUID) (*domain.Employee, error) {
	return s.repo.Get(ctx, id)
}

func (s *workforceService) Update(ctx context.Context, id uuid.UUID, req domain.UpdateEmployeeRequest) error {
	emp, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if req.Name != nil {
		emp.Name = *req.Name
	}
	if req.Email != nil {
		emp.Email = *req.Email
	}
	if req.Department != nil {
		emp.Department = *req.Department
	}
	if req.Position != nil {
		emp.Position = *req.Position
	}
	if req.AnnualSalary != nil {
		emp.AnnualSalary = *req.AnnualSalary
	}
	if req.ContractID != nil {
		emp.ContractID = req.ContractID
	}
	if req.BankAccount != nil {
		emp.BankAccount = *req.BankAccount
	}
	if req.SortCode != nil {
		emp.SortCode = *req.SortCode
	}
	if req.TaxCode != nil {
		emp.TaxCode = *req.TaxCode
	}
	if req.NINumber != nil {
		emp.NINumber = *req.NINumber
	}
	return s.repo.Update(ctx, emp)
}

func (s *workforceService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
