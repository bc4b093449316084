package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/cmlabs-hris/hris-payroll/internal/config"
	"github.com/cmlabs-hris/hris-payroll/internal/domain/payroll"
	appHTTP "github.com/cmlabs-hris/hris-payroll/internal/handler/http"
	"github.com/cmlabs-hris/hris-payroll/internal/pkg/cron"
	"github.com/cmlabs-hris/hris-payroll/internal/pkg/database"
	"github.com/cmlabs-hris/hris-payroll/internal/pkg/jwt"
	"github.com/cmlabs-hris/hris-payroll/internal/repository/postgresql"
	compensationService "github.com/cmlabs-hris/hris-payroll/internal/service/compensation"
	employeeService "github.com/cmlabs-hris/hris-payroll/internal/service/employee"
	leaveService "github.com/cmlabs-hris/hris-payroll/internal/service/leave"
	payrollService "github.com/cmlabs-hris/hris-payroll/internal/service/payroll"
	reportService "github.com/cmlabs-hris/hris-payroll/internal/service/report"
	timesheetService "github.com/cmlabs-hris/hris-payroll/internal/service/timesheet"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Error loading config", "error", err)
		os.Exit(1)
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()})))

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL(), database.PoolOptions{
		MaxConns: cfg.Database.MaxConns,
		MinConns: cfg.Database.MinConns,
	})
	if err != nil {
		slog.Error("Error connecting to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if cfg.Database.AutoMigrate {
		if err := postgresql.Migrate(context.Background(), db); err != nil {
			slog.Error("Error applying migrations", "error", err)
			os.Exit(1)
		}
	}

	tx := postgresql.NewTransactor(db)

	employeeRepo := postgresql.NewEmployeeRepository(db)
	compensationRepo := postgresql.NewCompensationRepository(db)
	structureRepo := postgresql.NewSalaryStructureRepository(db)
	incentiveRepo := postgresql.NewIncentiveRepository(db)
	benefitRepo := postgresql.NewBenefitRepository(db)
	periodRepo := postgresql.NewPayPeriodRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)
	leaveTypeRepo := postgresql.NewLeaveTypeRepository(db)
	balanceRepo := postgresql.NewLeaveBalanceRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	timesheetRepo := postgresql.NewTimesheetRepository(db)

	schedule := payroll.Schedule{
		PeriodsPerYear:    cfg.Payroll.PeriodsPerYear,
		LengthDays:        cfg.Payroll.PeriodLengthDays,
		PaymentOffsetDays: cfg.Payroll.PaymentOffsetDays,
	}

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	compensationSvc := compensationService.NewCompensationService(compensationRepo, benefitRepo)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo, benefitRepo)
	payrollSvc := payrollService.NewPayrollService(
		tx,
		periodRepo,
		payrollRepo,
		employeeRepo,
		structureRepo,
		compensationSvc,
		schedule,
		cfg.Payroll.TaxRate,
	)
	periodSvc := payrollService.NewPeriodService(tx, periodRepo, payrollRepo, schedule)
	accrualSvc := leaveService.NewAccrualService(tx, timesheetRepo, employeeRepo, leaveTypeRepo, balanceRepo)
	requestSvc := leaveService.NewRequestService(tx, leaveRequestRepo, balanceRepo, cfg.Leave.HoursPerDay)
	timesheetSvc := timesheetService.NewTimesheetService(tx, timesheetRepo, accrualSvc)
	reportSvc := reportService.NewReportService(employeeRepo, compensationRepo, incentiveRepo, benefitRepo)

	if cfg.Payroll.CalendarLeadDays > 0 {
		scheduler := cron.NewScheduler()
		cron.NewCalendarJobs(periodRepo, periodSvc, cfg.Payroll.CalendarLeadDays).
			RegisterJobs(scheduler, cfg.Payroll.CalendarJobInterval)
		scheduler.Start(context.Background())
		defer scheduler.Stop()
	}

	router := appHTTP.NewRouter(
		cfg,
		JWTService,
		appHTTP.NewPayrollHandler(payrollSvc, periodSvc),
		appHTTP.NewEmployeeHandler(employeeSvc, compensationSvc),
		appHTTP.NewTimesheetHandler(timesheetSvc),
		appHTTP.NewLeaveHandler(requestSvc),
		appHTTP.NewReportHandler(reportSvc),
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("Server running", "addr", "http://localhost"+port)
	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("Server error", "error", err)
	}
}
