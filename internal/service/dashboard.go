package service

import (
	"context"

	"guardpost/internal/domain"
)

const recentPayslipsLimit = 5

type dashboardService struct {
	repo DashboardRepository
}

func NewDashboardService(repo DashboardRepository) DashboardService {
	return &dashboardService{repo: repo}
}

func (s *dashboardService) GetDashboard(ctx context.Context) (*domain.DashboardStats, error) {
	count, annualTotal, err := s.repo.EmployeeTotals(ctx)
	if err != nil {
		return nil, err
	}

	departments, err := s.repo.DepartmentRollup(ctx)
	if err != nil {
		return nil, err
	}

	recent, err := s.repo.RecentPayslips(ctx, recentPayslipsLimit)
	if err != nil {
		return nil, err
	}

	stats := &domain.DashboardStats{
		TotalEmployees:      int(count),
		TotalMonthlyPayroll: round2(annualTotal / 12),
		Departments:         departments,
		RecentPayslips:      recent,
	}
	if count > 0 {
		stats.AverageSalary = round2(annualTotal / float64(count))
	}
	return stats, nil
}
