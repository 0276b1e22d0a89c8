package domain

import (
	"time"

	"github.com/google/uuid"
)

type ContractStatus string

const (
	ContractActive    ContractStatus = "active"
	ContractCompleted ContractStatus = "completed"
	ContractOnHold    ContractStatus = "on_hold"
)

type Contract struct {
	ID          uuid.UUID      `json:"id"`
	Name        string         `json:"name"`
	Client      string         `json:"client"`
	Budget      float64        `json:"budget"`
	StartDate   string         `json:"start_date"`
	EndDate     string         `json:"end_date,omitempty"`
	Description string         `json:"description,omitempty"`
	Status      ContractStatus `json:"status"`
	CreatedAt   time.Time      `json:"created_at"`
}

// ContractSummary enriches a contract with labor costs derived from the
// employees currently assigned to it.
type ContractSummary struct {
	Contract
	EmployeeCount     int         `json:"employee_count"`
	LaborCost         float64     `json:"labor_cost"`
	MonthlyLaborCost  float64     `json:"monthly_labor_cost"`
	BudgetRemaining   float64     `json:"budget_remaining"`
	BudgetUtilization float64     `json:"budget_utilization"`
	Employees         []*Employee `json:"employees,omitempty"`
}

type CreateContractRequest struct {
	Name        string         `json:"name" validate:"required"`
	Client      string         `json:"client" validate:"required"`
	Budget      float64        `json:"budget" validate:"min=0"`
	StartDate   string         `json:"start_date" validate:"required"`
	EndDate     string         `json:"end_date"`
	Description string         `json:"description"`
	Status      ContractStatus `json:"status" validate:"omitempty,oneof=active completed on_hold"`
}

type UpdateContractRequest struct {
	Name        *string         `json:"name" validate:"omitempty,min=1"`
	Client      *string         `json:"client" validate:"omitempty,min=1"`
	Budget      *float64        `json:"budget" validate:"omitempty,min=0"`
	StartDate   *string         `json:"start_date"`
	EndDate     *string         `json:"end_date"`
	Description *string         `json:"description"`
	Status      *ContractStatus `json:"status" validate:"omitempty,oneof=active completed on_hold"`
}
