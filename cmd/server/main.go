package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/api-sage/banking-ledger/internal/adapter/http/controller"
	"github.com/api-sage/banking-ledger/internal/adapter/http/router"
	"github.com/api-sage/banking-ledger/internal/config"
	"github.com/api-sage/banking-ledger/internal/ledger"
	"github.com/api-sage/banking-ledger/internal/usecase/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	bank := ledger.NewLedger(cfg.BankName, ledger.SystemClock(), cfg.LoanLimitMultiplier)

	accountService := services.NewAccountService(bank)
	transferService := services.NewTransferService(bank)
	loanService := services.NewLoanService(bank)
	summaryService := services.NewSummaryService(bank)
	interestService, err := services.NewInterestService(bank, cfg.InterestRate)
	if err != nil {
		log.Fatalf("wire interest service: %v", err)
	}

	r := router.New(
		controller.NewAccountController(accountService),
		controller.NewTransferController(transferService),
		controller.NewLoanController(loanService),
		controller.NewBankController(interestService, summaryService),
	)

	server := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: r,
	}

	go func() {
		log.Printf("%s ledger listening on %s", cfg.BankName, cfg.ListenAddr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen and serve: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("server shutdown: %v", err)
	}
}
