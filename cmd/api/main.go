package main

import (
	"fmt"
	"net/http"

	"github.com/harborops/stevedoring-backend-go/internal/config"
	appHTTP "github.com/harborops/stevedoring-backend-go/internal/handler/http"
	"github.com/harborops/stevedoring-backend-go/internal/pkg/cron"
	"github.com/harborops/stevedoring-backend-go/internal/pkg/database"
	"github.com/harborops/stevedoring-backend-go/internal/pkg/jwt"
	"github.com/harborops/stevedoring-backend-go/internal/pkg/logging"
	"github.com/harborops/stevedoring-backend-go/internal/repository/postgresql"
	billingService "github.com/harborops/stevedoring-backend-go/internal/service/billing"
	settingService "github.com/harborops/stevedoring-backend-go/internal/service/setting"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	logging.Setup(cfg.App.Env, cfg.App.LogLevel)

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	billRepo := postgresql.NewBillRepository(db)
	operationRepo := postgresql.NewOperationRepository(db)
	settingRepo := postgresql.NewSettingRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret)
	calendarPolicy := billingService.NewCalendarPolicy(settingRepo)
	billSvc := billingService.NewBillService(db, billRepo, operationRepo, calendarPolicy)
	settingSvc := settingService.NewSettingService(settingRepo, calendarPolicy)

	billingHandler := appHTTP.NewBillingHandler(billSvc)
	settingHandler := appHTTP.NewSettingHandler(settingSvc)

	router := appHTTP.NewRouter(jwtService, cfg.App.Env, billingHandler, settingHandler)

	scheduler := cron.NewScheduler()
	operationJobs := cron.NewOperationJobs(operationRepo, billSvc, cfg.Cron.OperationJobInterval)
	operationJobs.RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
