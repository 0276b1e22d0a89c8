package domain

import (
	"time"

	"github.com/google/uuid"
)

type Employee struct {
	ID           uuid.UUID  `json:"id"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	Department   string     `json:"department"`
	Position     string     `json:"position"`
	AnnualSalary float64    `json:"annual_salary"`
	ContractID   *uuid.UUID `json:"contract_id,omitempty"`
	BankAccount  string     `json:"bank_account,omitempty"`
	SortCode     string     `json:"sort_code,omitempty"`
	TaxCode      string     `json:"tax_code"`
	NINumber     string     `json:"ni_number,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

type CreateEmployeeRequest struct {
	Name         string     `json:"name" validate:"required"`
	Email        string     `json:"email" validate:"required,email"`
	Department   string     `json:"department" validate:"required"`
	Position     string     `json:"position" validate:"required"`
	AnnualSalary float64    `json:"annual_salary" validate:"required,min=0"`
	ContractID   *uuid.UUID `json:"contract_id"`
	BankAccount  string     `json:"bank_account"`
	SortCode     string     `json:"sort_code"`
	TaxCode      string     `json:"tax_code"`
	NINumber     string     `json:"ni_number"`
}

type UpdateEmployeeRequest struct {
	Name         *string    `json:"name" validate:"omitempty,min=1"`
	Email        *string    `json:"email" validate:"omitempty,email"`
	Department   *string    `json:"department" validate:"omitempty,min=1"`
	Position     *string    `json:"position" validate:"omitempty,min=1"`
	AnnualSalary *float64   `json:"annual_salary" validate:"omitempty,min=0"`
	ContractID   *uuid.UUID `json:"contract_id"`
	BankAccount  *string    `json:"bank_account"`
	SortCode     *string    `json:"sort_code"`
	TaxCode      *string    `json:"tax_code"`
	NINumber     *string    `json:"ni_number"`
}
