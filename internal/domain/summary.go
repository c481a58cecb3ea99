package domain

// EmployeeSummary is the derived statistics block shown for one employee.
type EmployeeSummary struct {
	CompletedCount    int
	TotalCompensation float64
	TotalWorkedHours  float64
}
