package main

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	httpadp "corporate-loan-backend/internal/adapter/http"
	"corporate-loan-backend/internal/adapter/middleware"
	"corporate-loan-backend/internal/adapter/repository/mysql"
	"corporate-loan-backend/internal/config"
	loanDomain "corporate-loan-backend/internal/domain/loan"
	userDomain "corporate-loan-backend/internal/domain/user"
	"corporate-loan-backend/internal/infrastructure/cache"
	"corporate-loan-backend/internal/infrastructure/db"
	authuc "corporate-loan-backend/internal/usecase/auth"
	loanuc "corporate-loan-backend/internal/usecase/loan"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatal(err)
	}
	if err := gdb.AutoMigrate(&loanDomain.Loan{}, &loanDomain.AuditEntry{}, &userDomain.User{}); err != nil {
		log.Fatal(err)
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err != nil {
		log.Fatal(err)
	}

	loanRepo := mysql.NewLoanRepository(gdb)
	userRepo := mysql.NewUserRepository(gdb)
	txm := mysql.NewGormUoW(gdb)

	loanUC := loanuc.NewUsecase(loanRepo, txm)
	authUC := authuc.NewUsecase(userRepo, cfg.JWTSecret, time.Duration(cfg.JWTTTLMins)*time.Minute)

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Logger(), echomw.Recover())
	e.Validator = httpadp.NewValidator()

	h := httpadp.NewHandler()
	lh := httpadp.NewLoanHandler(loanUC)
	adm := httpadp.NewAdminHandler(loanUC)
	ah := httpadp.NewAuthHandler(authUC)

	idem := middleware.Idempotency(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second, httpadp.Actor)

	e.GET("/health", h.Health)

	e.POST("/api/auth/login", ah.Login)
	e.POST("/api/auth/register", ah.Register)

	loans := e.Group("/api/loans", httpadp.JWTAuth(authUC), idem)
	loans.POST("", lh.CreateLoan)
	loans.GET("", lh.ListLoans)
	loans.GET("/:id", lh.GetLoan)
	loans.PUT("/:id", lh.UpdateLoan)
	loans.PATCH("/:id/submit", lh.SubmitLoan)

	admin := e.Group("/api/admin", httpadp.JWTAuth(authUC), httpadp.RequireAdmin, idem)
	admin.PATCH("/loans/:id/decision", adm.Decision)
	admin.DELETE("/loans/:id", adm.DeleteLoan)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
