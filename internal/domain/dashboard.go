package domain

type DepartmentRollup struct {
	Name        string  `json:"name"`
	Count       int     `json:"count"`
	TotalSalary float64 `json:"total_salary"`
}

type RecentPayslip struct {
	ID           string  `json:"id"`
	EmployeeName string  `json:"employee_name"`
	Period       string  `json:"period"`
	NetSalary    float64 `json:"net_salary"`
}

type DashboardStats struct {
	TotalEmployees      int                `json:"total_employees"`
	TotalMonthlyPayroll float64            `json:"total_monthly_payroll"`
	AverageSalary       float64            `json:"average_salary"`
	Departments         []DepartmentRollup `json:"departments"`
	RecentPayslips      []RecentPayslip    `json:"recent_payslips"`
}
