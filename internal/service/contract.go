package service

import (
	"context"
	"time"

	"guardpost/internal/domain"

	"github.com/google/uuid"
)

type contractService struct {
	contracts ContractRepository
	employees EmployeeRepository
}

func NewContractService(contracts ContractRepository, employees EmployeeRepository) ContractService {
	return &contractService{contracts: contracts, employees: employees}
}

func (s *contractService) Create(ctx context.Context, req domain.CreateContractRequest) (uuid.UUID, error) {
	status := req.Status
	if status == "" {
		status = domain.ContractActive
	}

	c := &domain.Contract{
		ID:          uuid.New(),
		Name:        req.Name,
		Client:      req.Client,
		Budget:      req.Budget,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Description: req.Description,
		Status:      status,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.contracts.Create(ctx, c); err != nil {
		return uuid.Nil, err
	}
	return c.ID, nil
}

func (s *contractService) List(ctx context.Context) ([]*domain.ContractSummary, error) {
	contracts, err := s.contracts.List(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]*domain.ContractSummary, 0, len(contracts))
	for _, c := range contracts {
		summary, err := s.summarize(ctx, c, false)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

func (s *contractService) Get(ctx context.Context, id uuid.UUID) (*domain.ContractSummary, error) {
	c, err := s.contracts.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.summarize(ctx, c, true)
}

func (s *contractService) Update(ctx context.Context, id uuid.UUID, req domain.UpdateContractRequest) error {
	c, err := s.contracts.Get(ctx, id)
	if err != nil {
		return err
	}
	if req.Name != nil {
		c.Name = *req.Name
	}
	if req.Client != nil {
		c.Client = *req.Client
	}
	if req.Budget != nil {
		c.Budget = *req.Budget
	}
	if req.StartDate != nil {
		c.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		c.EndDate = *req.EndDate
	}
	if req.Description != nil {
		c.Description = *req.Description
	}
	if req.Status != nil {
		c.Status = *req.Status
	}
	return s.contracts.Update(ctx, c)
}

func (s *contractService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.contracts.Delete(ctx, id)
}

// summarize derives labor costs from the employees assigned to the contract.
// Annual salaries are the labor cost basis; utilization is a percentage of
// budget and guarded against a zero budget.
func (s *contractService) summarize(ctx context.Context, c *domain.Contract, includeEmployees bool) (*domain.ContractSummary, error) {
	assigned, err := s.employees.ListByContract(ctx, c.ID)
	if err != nil {
		return nil, err
	}

	laborCost := 0.0
	for _, emp := range assigned {
		laborCost += emp.AnnualSalary
	}

	summary := &domain.ContractSummary{
		Contract:         *c,
		EmployeeCount:    len(assigned),
		LaborCost:        round2(laborCost),
		MonthlyLaborCost: round2(laborCost / 12),
		BudgetRemaining:  round2(c.Budget - laborCost),
	}
	if c.Budget > 0 {
		summary.BudgetUtilization = round2(laborCost / c.Budget * 100)
	}
	if includeEmployees {
		summary.Employees = assigned
	}
	return summary, nil
}
