package employee

import (
	"time"

	"github.com/cmlabs-hris/hris-payroll/internal/pkg/utils"
)

// Waiting periods measured in calendar days from the hire date.
const (
	HealthcareWaitingDays = 60
	RetirementWaitingDays = 180
	RetirementVestingDays = 1095
)

// YearsOfService returns whole years between hireDate and asOf. A year only
// counts once its anniversary has been reached.
func YearsOfService(hireDate, asOf time.Time) int {
	hire := utils.Date(hireDate)
	ref := utils.Date(asOf)
	if ref.Before(hire) {
		return 0
	}

	years := ref.Year() - hire.Year()
	if ref.Month() < hire.Month() || (ref.Month() == hire.Month() && ref.Day() < hire.Day()) {
		years--
	}
	return years
}

func HealthcareEligibleDate(hireDate time.Time) time.Time {
	return utils.AddDays(hireDate, HealthcareWaitingDays)
}

func RetirementEligibleDate(hireDate time.Time) time.Time {
	return utils.AddDays(hireDate, RetirementWaitingDays)
}

// RetirementVestingDate counts the vesting window from enrollment when the
// employee enrolled, otherwise from the eligibility date.
func RetirementVestingDate(hireDate time.Time, enrolledOn *time.Time) time.Time {
	start := RetirementEligibleDate(hireDate)
	if enrolledOn != nil {
		start = utils.Date(*enrolledOn)
	}
	return utils.AddDays(start, RetirementVestingDays)
}

// IsEligible reports whether asOf is on or after the eligibility date.
func IsEligible(eligibleOn, asOf time.Time) bool {
	return !utils.Date(asOf).Before(utils.Date(eligibleOn))
}

// Eligibility is a snapshot of benefit milestones as of a reference date.
type Eligibility struct {
	EmployeeID             string
	AsOf                   time.Time
	YearsOfService         int
	HealthcareEligibleDate time.Time
	HealthcareEligible     bool
	RetirementEligibleDate time.Time
	RetirementEligible     bool
	RetirementVestingDate  time.Time
	RetirementVested       bool
}

func EligibilityOf(e Employee, enrolledOn *time.Time, asOf time.Time) Eligibility {
	healthcare := HealthcareEligibleDate(e.HireDate)
	retirement := RetirementEligibleDate(e.HireDate)
	vesting := RetirementVestingDate(e.HireDate, enrolledOn)

	return Eligibility{
		EmployeeID:             e.ID,
		AsOf:                   utils.Date(asOf),
		YearsOfService:         YearsOfService(e.HireDate, asOf),
		HealthcareEligibleDate: healthcare,
		HealthcareEligible:     IsEligible(healthcare, asOf),
		RetirementEligibleDate: retirement,
		RetirementEligible:     IsEligible(retirement, asOf),
		RetirementVestingDate:  vesting,
		RetirementVested:       IsEligible(vesting, asOf),
	}
}
