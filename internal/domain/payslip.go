package domain

import (
	"time"

	"github.com/google/uuid"
)

type Deduction struct {
	Name   string  `json:"name" validate:"required"`
	Amount float64 `json:"amount" validate:"min=0"`
}

type Payslip struct {
	ID              uuid.UUID   `json:"id"`
	EmployeeID      uuid.UUID   `json:"employee_id"`
	EmployeeName    string      `json:"employee_name"`
	PeriodMonth     int         `json:"period_month"`
	PeriodYear      int         `json:"period_year"`
	GrossSalary     float64     `json:"gross_salary"`
	TaxDeduction    float64     `json:"tax_deduction"`
	NIDeduction     float64     `json:"ni_deduction"`
	OtherDeductions []Deduction `json:"other_deductions"`
	Bonuses         float64     `json:"bonuses"`
	NetSalary       float64     `json:"net_salary"`
	CreatedAt       time.Time   `json:"created_at"`
}

type CreatePayslipRequest struct {
	EmployeeID      uuid.UUID   `json:"employee_id" validate:"required"`
	PeriodMonth     int         `json:"period_month" validate:"min=1,max=12"`
	PeriodYear      int         `json:"period_year" validate:"min=2000"`
	TaxDeduction    float64     `json:"tax_deduction" validate:"min=0"`
	NIDeduction     float64     `json:"ni_deduction" validate:"min=0"`
	OtherDeductions []Deduction `json:"other_deductions" validate:"omitempty,dive"`
	Bonuses         float64     `json:"bonuses" validate:"min=0"`
}
