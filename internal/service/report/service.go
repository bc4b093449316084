package report

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/cmlabs-hris/hris-payroll/internal/domain/compensation"
	"github.com/cmlabs-hris/hris-payroll/internal/domain/employee"
	"github.com/cmlabs-hris/hris-payroll/internal/domain/report"
	"github.com/cmlabs-hris/hris-payroll/internal/pkg/utils"
	"github.com/shopspring/decimal"
)

type ReportServiceImpl struct {
	employeeRepo     employee.EmployeeRepository
	compensationRepo compensation.CompensationRepository
	incentiveRepo    compensation.IncentiveRepository
	benefitRepo      compensation.BenefitRepository
	now              func() time.Time
}

func NewReportService(
	employeeRepo employee.EmployeeRepository,
	compensationRepo compensation.CompensationRepository,
	incentiveRepo compensation.IncentiveRepository,
	benefitRepo compensation.BenefitRepository,
) report.ReportService {
	return &ReportServiceImpl{
		employeeRepo:     employeeRepo,
		compensationRepo: compensationRepo,
		incentiveRepo:    incentiveRepo,
		benefitRepo:      benefitRepo,
		now:              time.Now,
	}
}

// snapshot is everything the reports need, loaded once per call.
type snapshot struct {
	employees  []employee.Employee
	current    map[string]compensation.Compensation
	incentives map[string]decimal.Decimal
	benefits   map[string][]compensation.EmployeeBenefit
}

func (s *ReportServiceImpl) load(ctx context.Context, asOf time.Time, year *int) (snapshot, error) {
	employees, err := s.employeeRepo.ListAll(ctx)
	if err != nil {
		return snapshot{}, fmt.Errorf("failed to list employees: %w", err)
	}
	records, err := s.compensationRepo.ListActiveAsOf(ctx, asOf)
	if err != nil {
		return snapshot{}, fmt.Errorf("failed to list compensation: %w", err)
	}
	incentives, err := s.incentiveRepo.List(ctx, year)
	if err != nil {
		return snapshot{}, fmt.Errorf("failed to list incentives: %w", err)
	}
	enrollments, err := s.benefitRepo.ListAllActiveEnrollments(ctx, asOf)
	if err != nil {
		return snapshot{}, fmt.Errorf("failed to list benefit enrollments: %w", err)
	}

	snap := snapshot{
		employees:  employees,
		current:    compensation.CurrentByEmployee(records, asOf),
		incentives: make(map[string]decimal.Decimal),
		benefits:   make(map[string][]compensation.EmployeeBenefit),
	}
	for _, in := range incentives {
		snap.incentives[in.EmployeeID] = snap.incentives[in.EmployeeID].Add(in.Amount)
	}
	for _, eb := range enrollments {
		snap.benefits[eb.EmployeeID] = append(snap.benefits[eb.EmployeeID], eb)
	}
	return snap, nil
}

func (snap snapshot) benefitsCost(employeeID string, salary decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, eb := range snap.benefits[employeeID] {
		total = total.Add(eb.AnnualEmployerCost(salary))
	}
	return total
}

// AggregateCompensation totals annual pay per department or job title over
// every employee with a current compensation record.
func (s *ReportServiceImpl) AggregateCompensation(ctx context.Context, req report.CompensationSummaryRequest) (report.CompensationSummaryResponse, error) {
	if err := req.Validate(); err != nil {
		return report.CompensationSummaryResponse{}, err
	}

	snap, err := s.load(ctx, s.now(), req.Year)
	if err != nil {
		return report.CompensationSummaryResponse{}, err
	}

	groups := make(map[string]*summary)
	grand := newSummary("Total")
	for _, e := range snap.employees {
		if req.Department != nil && e.Department != *req.Department {
			continue
		}
		comp, ok := snap.current[e.ID]
		if !ok {
			continue
		}

		base := comp.AnnualEquivalent()
		bonus := decimal.Zero
		if req.IncludeBonuses {
			bonus = snap.incentives[e.ID]
		}
		benefits := decimal.Zero
		if req.IncludeBenefits {
			benefits = snap.benefitsCost(e.ID, base)
		}

		key := categoryOf(e, req.GroupBy)
		g, ok := groups[key]
		if !ok {
			g = newSummary(key)
			groups[key] = g
		}
		g.add(base, bonus, benefits)
		grand.add(base, bonus, benefits)
	}

	resp := report.CompensationSummaryResponse{
		GroupBy:    req.GroupBy,
		Year:       req.Year,
		Categories: make([]report.CategorySummary, 0, len(groups)),
	}
	for _, g := range groups {
		resp.Categories = append(resp.Categories, g.finish())
	}
	sort.Slice(resp.Categories, func(i, j int) bool {
		return resp.Categories[i].Category < resp.Categories[j].Category
	})
	resp.GrandTotal = grand.finish()
	return resp, nil
}

func categoryOf(e employee.Employee, groupBy report.GroupBy) string {
	key := e.Department
	if groupBy == report.GroupByJobTitle {
		key = e.JobTitle
	}
	if key == "" {
		return report.Uncategorized
	}
	return key
}

type summary struct{ report.CategorySummary }

func newSummary(category string) *summary {
	return &summary{report.CategorySummary{
		Category:          category,
		TotalBasePay:      decimal.Zero,
		TotalBonus:        decimal.Zero,
		TotalBenefits:     decimal.Zero,
		TotalCompensation: decimal.Zero,
	}}
}

func (s *summary) add(base, bonus, benefits decimal.Decimal) {
	s.EmployeeCount++
	s.TotalBasePay = s.TotalBasePay.Add(base)
	s.TotalBonus = s.TotalBonus.Add(bonus)
	s.TotalBenefits = s.TotalBenefits.Add(benefits)
	s.TotalCompensation = s.TotalCompensation.Add(base).Add(bonus).Add(benefits)
}

func (s *summary) finish() report.CategorySummary {
	out := s.CategorySummary
	out.AvgBasePay = report.Average(out.TotalBasePay, out.EmployeeCount)
	out.AvgTotalComp = report.Average(out.TotalCompensation, out.EmployeeCount)
	return out
}

// EmployeeCompensation breaks one employee's total compensation down for a
// calendar year. An employee without a current record reports zero base.
func (s *ReportServiceImpl) EmployeeCompensation(ctx context.Context, employeeID string, year int) (report.EmployeeCompensationResponse, error) {
	e, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return report.EmployeeCompensationResponse{}, err
	}

	asOf := referenceDate(year, s.now())
	records, err := s.compensationRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return report.EmployeeCompensationResponse{}, fmt.Errorf("failed to list compensation: %w", err)
	}

	resp := report.EmployeeCompensationResponse{
		EmployeeID:   e.ID,
		EmployeeName: e.FullName(),
		Year:         year,
		AnnualBase:   decimal.Zero,
		Bonuses:      decimal.Zero,
		Commissions:  decimal.Zero,
		BenefitsCost: decimal.Zero,
	}
	if current := compensation.SelectCurrent(records, asOf); current != nil {
		resp.SalaryType = string(current.SalaryType)
		resp.AnnualBase = current.AnnualEquivalent()
	}

	incentives, err := s.incentiveRepo.ListByEmployee(ctx, employeeID, &year)
	if err != nil {
		return report.EmployeeCompensationResponse{}, fmt.Errorf("failed to list incentives: %w", err)
	}
	for _, in := range incentives {
		switch in.IncentiveType {
		case compensation.IncentiveCommission:
			resp.Commissions = resp.Commissions.Add(in.Amount)
		default:
			resp.Bonuses = resp.Bonuses.Add(in.Amount)
		}
	}

	enrollments, err := s.benefitRepo.ListActiveEnrollments(ctx, employeeID, asOf)
	if err != nil {
		return report.EmployeeCompensationResponse{}, fmt.Errorf("failed to list benefit enrollments: %w", err)
	}
	for _, eb := range enrollments {
		resp.BenefitsCost = resp.BenefitsCost.Add(eb.AnnualEmployerCost(resp.AnnualBase))
	}

	resp.Total = resp.AnnualBase.Add(resp.Bonuses).Add(resp.Commissions).Add(resp.BenefitsCost)
	return resp, nil
}

// ProjectBudget estimates the employer's annual cost for active employees
// at their current pay: salary, retirement match, payroll taxes and benefits.
func (s *ReportServiceImpl) ProjectBudget(ctx context.Context, req report.BudgetProjectionRequest) (report.BudgetProjectionResponse, error) {
	if err := req.Validate(); err != nil {
		return report.BudgetProjectionResponse{}, err
	}

	asOf := referenceDate(req.Year, s.now())
	snap, err := s.load(ctx, asOf, &req.Year)
	if err != nil {
		return report.BudgetProjectionResponse{}, err
	}

	resp := report.BudgetProjectionResponse{
		Year:          req.Year,
		Lines:         []report.ProjectionLine{},
		TotalSalary:   decimal.Zero,
		TotalBenefits: decimal.Zero,
		TotalTaxes:    decimal.Zero,
		TotalCost:     decimal.Zero,
	}
	for _, e := range snap.employees {
		if !e.IsActive() {
			continue
		}
		if req.Department != nil && e.Department != *req.Department {
			continue
		}
		comp, ok := snap.current[e.ID]
		if !ok {
			continue
		}

		salary := comp.AnnualEquivalent()
		retirement, taxes := report.ProjectEmployerCost(salary)
		benefits := snap.benefitsCost(e.ID, salary)
		line := report.ProjectionLine{
			EmployeeID:   e.ID,
			EmployeeName: e.FullName(),
			Department:   e.Department,
			BaseSalary:   salary,
			Retirement:   retirement,
			Taxes:        taxes,
			Benefits:     benefits,
			Total:        salary.Add(retirement).Add(taxes).Add(benefits),
		}
		resp.Lines = append(resp.Lines, line)

		resp.TotalSalary = resp.TotalSalary.Add(salary)
		resp.TotalBenefits = resp.TotalBenefits.Add(retirement).Add(benefits)
		resp.TotalTaxes = resp.TotalTaxes.Add(taxes)
		resp.TotalCost = resp.TotalCost.Add(line.Total)
	}
	return resp, nil
}

// referenceDate picks the day whose pay applies to year: today for the
// current year, otherwise the last day of a past year or the first day of a
// future one.
func referenceDate(year int, now time.Time) time.Time {
	switch {
	case year < now.Year():
		return utils.NewDate(year, time.December, 31)
	case year > now.Year():
		return utils.NewDate(year, time.January, 1)
	}
	return utils.Date(now)
}
