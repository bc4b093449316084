package http

import (
	"log/slog"
	"os"

	"github.com/cmlabs-hris/hris-payroll/internal/config"
	"github.com/cmlabs-hris/hris-payroll/internal/domain/user"
	"github.com/cmlabs-hris/hris-payroll/internal/handler/http/middleware"
	"github.com/cmlabs-hris/hris-payroll/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	cfg *config.Config,
	JWTService jwt.Service,
	payrollHandler PayrollHandler,
	employeeHandler EmployeeHandler,
	timesheetHandler TimesheetHandler,
	leaveHandler LeaveHandler,
	reportHandler ReportHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(cfg.App.Env == "development")
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       cfg.SlogLevel(),
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "hris-payroll"),
		slog.String("version", cfg.App.Version),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  cfg.SlogLevel(),
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {
		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired)

			r.Route("/pay-periods", func(r chi.Router) {
				r.With(middleware.RequirePermission(user.PermissionPayrollView)).Get("/", payrollHandler.ListPeriods)
				r.With(middleware.RequirePermission(user.PermissionPayrollView)).Get("/{id}", payrollHandler.GetPeriod)
				r.With(middleware.RequirePermission(user.PermissionPayrollView)).Get("/{id}/payslips", payrollHandler.ListPayslips)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionPeriodManage))
					r.Post("/", payrollHandler.CreatePeriod)
					r.Post("/next", payrollHandler.CreateNextPeriod)
					r.Post("/annual", payrollHandler.CreateAnnualPeriods)
					r.Put("/{id}", payrollHandler.UpdatePeriod)
				})

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionPayrollProcess))
					r.Post("/{id}/process", payrollHandler.ProcessPeriod)
					r.Post("/{id}/complete", payrollHandler.CompletePeriod)
				})
			})

			r.With(middleware.RequirePermission(user.PermissionPayrollView)).
				Get("/payslips/{id}", payrollHandler.GetPayslip)

			r.Route("/employees", func(r chi.Router) {
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionEmployeeViewAll))
					r.Get("/", employeeHandler.List)
					r.Get("/{id}", employeeHandler.Get)
					r.Get("/{id}/reporting-chain", employeeHandler.ReportingChain)
					r.Get("/{id}/subordinates", employeeHandler.Subordinates)
					r.Get("/{id}/eligibility", employeeHandler.Eligibility)
				})
				r.With(middleware.RequirePermission(user.PermissionCompensationView)).
					Get("/{id}/compensation", employeeHandler.GetCompensation)
				r.With(middleware.RequirePermission(user.PermissionLeaveViewAll)).
					Get("/{id}/leave-balances", leaveHandler.ListBalances)
			})

			r.Route("/timesheets/{id}", func(r chi.Router) {
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionTimesheetSubmit))
					r.Post("/submit", timesheetHandler.Submit)
					r.Post("/reopen", timesheetHandler.Reopen)
				})
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionTimesheetApprove))
					r.Post("/approve", timesheetHandler.Approve)
					r.Post("/reject", timesheetHandler.Reject)
				})
			})

			r.Route("/leave-requests/{id}", func(r chi.Router) {
				r.Use(middleware.RequirePermission(user.PermissionLeaveApprove))
				r.Post("/approve", leaveHandler.ApproveRequest)
				r.Post("/reject", leaveHandler.RejectRequest)
			})

			r.Get("/leave-days", leaveHandler.LeaveDays)

			r.Route("/reports", func(r chi.Router) {
				r.Use(middleware.RequirePermission(user.PermissionReportsView))
				r.Get("/compensation", reportHandler.CompensationSummary)
				r.Get("/employees/{id}/compensation", reportHandler.EmployeeCompensation)
				r.Get("/budget-projection", reportHandler.BudgetProjection)
			})
		})
	})
	return r
}
