package postgres

import (
	"context"
	"time"

	"guardpost/internal/domain"

	"github.com/google/uuid"
)

type CheckpointRepository interface {
	Create(ctx context.Context, cp *domain.Checkpoint) error
	List(ctx context.Context, page, limit int) ([]*domain.Checkpoint, int64, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Checkpoint, error)
	Update(ctx context.Context, cp *domain.Checkpoint) error
	Deactivate(ctx context.Context, id uuid.UUID) error // soft delete
	ListActive(ctx context.Context, siteName string) ([]*domain.Checkpoint, error)
}

type CheckInRepository interface {
	Insert(ctx context.Context, ev *domain.CheckInEvent) error
	ListInScope(ctx context.Context, scope domain.ComplianceScope) ([]*domain.CheckInEvent, error)
	LastCheckinAt(ctx context.Context, checkpointID uuid.UUID) (*time.Time, error)
}

type AttendanceRepository interface {
	OpenShift(ctx context.Context, rec *domain.AttendanceRecord) error
	CloseShift(ctx context.Context, employeeID uuid.UUID, clockOut time.Time, location *domain.Coordinate, hoursWorked float64) (*domain.AttendanceRecord, error)
	GetOpen(ctx context.Context, employeeID uuid.UUID) (*domain.AttendanceRecord, error)
}

type JobSiteRepository interface {
	Create(ctx context.Context, site *domain.JobSite) error
	Get(ctx context.Context, id uuid.UUID) (*domain.JobSite, error)
	List(ctx context.Context) ([]*domain.JobSite, error)
}

type EmployeeRepository interface {
	Create(ctx context.Context, emp *domain.Employee) error
	List(ctx context.Context) ([]*domain.Employee, error)
	ListByContract(ctx context.Context, contractID uuid.UUID) ([]*domain.Employee, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Employee, error)
	Update(ctx context.Context, emp *domain.Employee) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type PayslipRepository interface {
	Create(ctx context.Context, ps *domain.Payslip) error
	List(ctx context.Context) ([]*domain.Payslip, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Payslip, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type ContractRepository interface {
	Create(ctx context.Context, c *domain.Contract) error
	List(ctx context.Context) ([]*domain.Contract, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Contract, error)
	Update(ctx context.Context, c *domain.Contract) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type DashboardRepository interface {
	EmployeeTotals(ctx context.Context) (count int64, annualTotal float64, err error)
	DepartmentRollup(ctx context.Context) ([]domain.DepartmentRollup, error)
	RecentPayslips(ctx context.Context, limit int) ([]domain.RecentPayslip, error)
}
