package service

import (
	"context"
	"math"
	"time"

	"guardpost/internal/domain"

	"github.com/google/uuid"
)

type payrollService struct {
	payslips  PayslipRepository
	employees EmployeeRepository
}

func NewPayrollService(payslips PayslipRepository, employees EmployeeRepository) PayrollService {
	return &payrollService{payslips: payslips, employees: employees}
}

func (s *payrollService) Create(ctx context.Context, req domain.CreatePayslipRequest) (*domain.Payslip, error) {
	emp, err := s.employees.Get(ctx, req.EmployeeID)
	if err != nil {
		return nil, err
	}

	gross := round2(emp.AnnualSalary / 12)
	other := 0.0
	for _, d := range req.OtherDeductions {
		other += d.Amount
	}
	net := round2(gross + req.Bonuses - req.TaxDeduction - req.NIDeduction - other)

	ps := &domain.Payslip{
		ID:              uuid.New(),
		EmployeeID:      emp.ID,
		EmployeeName:    emp.Name,
		PeriodMonth:     req.PeriodMonth,
		PeriodYear:      req.PeriodYear,
		GrossSalary:     gross,
		TaxDeduction:    req.TaxDeduction,
		NIDeduction:     req.NIDeduction,
		OtherDeductions: req.OtherDeductions,
		Bonuses:         req.Bonuses,
		NetSalary:       net,
		CreatedAt:       time.Now().UTC(),
	}
	if err := s.payslips.Create(ctx, ps); err != nil {
		return nil, err
	}
	return ps, nil
}

func (s *payrollService) List(ctx context.Context) ([]*domain.Payslip, error) {
	return s.payslips.List(ctx)
}

func (s *payrollService) Get(ctx context.Context, id uuid.UUID) (*domain.Payslip, error) {
	return s.payslips.Get(ctx, id)
}

func (s *payrollService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.payslips.Delete(ctx, id)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
