package service

import (
	"context"
	"time"

	"guardpost/internal/domain"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=mocks/mock.go

// Use-case surfaces consumed by the HTTP layer.

type CheckpointAdminService interface {
	Create(ctx context.Context, req domain.CreateCheckpointRequest) (uuid.UUID, error)
	List(ctx context.Context, page, limit int) ([]*domain.Checkpoint, int64, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Checkpoint, error)
	Update(ctx context.Context, id uuid.UUID, req domain.UpdateCheckpointRequest) error
	Deactivate(ctx context.Context, id uuid.UUID) error
}

type PatrolService interface {
	CheckIn(ctx context.Context, req domain.CheckInRequest) (*domain.CheckInEvent, error)
	GetCadence(ctx context.Context, checkpointID uuid.UUID, now time.Time) (*domain.CadenceState, error)
	GetCompliance(ctx context.Context, scope domain.ComplianceScope, now time.Time) (*domain.ComplianceSnapshot, error)
}

type AttendanceService interface {
	ClockIn(ctx context.Context, req domain.ClockInRequest) (*domain.AttendanceRecord, error)
	ClockOut(ctx context.Context, req domain.ClockOutRequest) (*domain.ClockOutResponse, error)
}

type JobSiteService interface {
	Create(ctx context.Context, req domain.CreateJobSiteRequest) (uuid.UUID, error)
	List(ctx context.Context) ([]*domain.JobSite, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.JobSite, error)
}

type WorkforceService interface {
	Create(ctx context.Context, req domain.CreateEmployeeRequest) (uuid.UUID, error)
	List(ctx context.Context) ([]*domain.Employee, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Employee, error)
	Update(ctx context.Context, id uuid.UUID, req domain.UpdateEmployeeRequest) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type PayrollService interface {
	Create(ctx context.Context, req domain.CreatePayslipRequest) (*domain.Payslip, error)
	List(ctx context.Context) ([]*domain.Payslip, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Payslip, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type ContractService interface {
	Create(ctx context.Context, req domain.CreateContractRequest) (uuid.UUID, error)
	List(ctx context.Context) ([]*domain.ContractSummary, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.ContractSummary, error)
	Update(ctx context.Context, id uuid.UUID, req domain.UpdateContractRequest) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type DashboardService interface {
	GetDashboard(ctx context.Context) (*domain.DashboardStats, error)
}

// Storage and cache dependencies, narrowed to what the services call.

type CheckpointRepository interface {
	Create(ctx context.Context, cp *domain.Checkpoint) error
	List(ctx context.Context, page, limit int) ([]*domain.Checkpoint, int64, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Checkpoint, error)
	Update(ctx context.Context, cp *domain.Checkpoint) error
	Deactivate(ctx context.Context, id uuid.UUID) error
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

type CheckpointCacheService interface {
	GetActive(ctx context.Context) ([]*domain.Checkpoint, error)
	SetActive(ctx context.Context, checkpoints []*domain.Checkpoint, ttl time.Duration) error
	Invalidate(ctx context.Context) error
}

type AlertQueue interface {
	Enqueue(ctx context.Context, alert domain.OverdueAlert) error
}

type Service struct {
	Checkpoints CheckpointAdminService
	Patrol      PatrolService
	Attendance  AttendanceService
	JobSites    JobSiteService
	Workforce   WorkforceService
	Payroll     PayrollService
	Contracts   ContractService
	Dashboard   DashboardService
}

func NewService(
	checkpoints CheckpointAdminService,
	patrol PatrolService,
	attendance AttendanceService,
	jobSites JobSiteService,
	workforce WorkforceService,
	payroll PayrollService,
	contracts ContractService,
	dashboard DashboardService,
) *Service {
	return &Service{
		Checkpoints: checkpoints,
		Patrol:      patrol,
		Attendance:  attendance,
		JobSites:    jobSites,
		Workforce:   workforce,
		Payroll:     payroll,
		Contracts:   contracts,
		Dashboard:   dashboard,
	}
}
