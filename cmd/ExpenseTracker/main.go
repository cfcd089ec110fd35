package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/pmalinowski/ExpenseTrackerAPI/internal/auth"
	database "github.com/pmalinowski/ExpenseTrackerAPI/internal/db"
	"github.com/pmalinowski/ExpenseTrackerAPI/internal/finance/application"
	"github.com/pmalinowski/ExpenseTrackerAPI/internal/finance/infrastructure"
	"github.com/pmalinowski/ExpenseTrackerAPI/internal/finance/interfaces"
	"github.com/pmalinowski/ExpenseTrackerAPI/internal/user"
)

type Response struct {
	Message string `json:"message"`
}

func loggingMiddleware(logger *logrus.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		logger.WithFields(logrus.Fields{
			"method":   r.Method,
			"path":     r.URL.Path,
			"duration": time.Since(start).String(),
		}).Info("request completed")
	})
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]interface{}{
		"status":  "error",
		"message": message,
		"code":    status,
	})
}

type Server struct {
	router             *http.ServeMux
	userHandler        *user.Handler
	authHandler        *auth.Handler
	authService        auth.Service
	transactionHandler *interfaces.TransactionHandler
	reportHandler      *interfaces.ReportHandler
	dbService          *database.DBService
}

func NewServer(
	userHandler *user.Handler,
	authHandler *auth.Handler,
	authService auth.Service,
	transactionHandler *interfaces.TransactionHandler,
	reportHandler *interfaces.ReportHandler,
	dbService *database.DBService,
) *Server {
	return &Server{
		router:             http.NewServeMux(),
		userHandler:        userHandler,
		authHandler:        authHandler,
		authService:        authService,
		transactionHandler: transactionHandler,
		reportHandler:      reportHandler,
		dbService:          dbService,
	}
}

func notFoundHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusNotFound)
	json.NewEncoder(w).Encode(Response{Message: "Path not found"})
}

func checkConfiguration() error {
	err := godotenv.Load()
	if err != nil {
		fmt.Println("Error loading .env file, continuing with system environment variables")
	}

	if os.Getenv("JWT_SECRET") == "" {
		return errors.New("no JWT_SECRET provided")
	}
	return nil
}

func (s *Server) handleReady(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status": "ready",
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, s.dbService.Health())
}

func (s *Server) RegisterRoutes() {
	mux := http.NewServeMux()

	// Public routes
	mux.Handle("POST /signup", http.HandlerFunc(s.userHandler.HandleSignup))
	mux.Handle("POST /login", http.HandlerFunc(s.authHandler.HandleLogin))
	mux.Handle("GET /ready", http.HandlerFunc(s.handleReady))
	mux.Handle("GET /health", http.HandlerFunc(s.handleHealth))

	// Protected routes (JWT access token required)
	protected := s.authService.JWTAccessTokenMiddleware()
	mux.Handle("POST /transactions", protected(http.HandlerFunc(s.transactionHandler.CreateTransaction)))
	mux.Handle("GET /transactions", protected(http.HandlerFunc(s.transactionHandler.GetUserTransactions)))
	mux.Handle("GET /transactions/{id}", protected(http.HandlerFunc(s.transactionHandler.GetTransaction)))
	mux.Handle("PUT /transactions/{id}", protected(http.HandlerFunc(s.transactionHandler.UpdateTransaction)))
	mux.Handle("DELETE /transactions/{id}", protected(http.HandlerFunc(s.transactionHandler.DeleteTransaction)))
	mux.Handle("GET /summary", protected(http.HandlerFunc(s.reportHandler.GetSummary)))
	mux.Handle("GET /reports/monthly", protected(http.HandlerFunc(s.reportHandler.GetMonthlyReport)))
	mux.Handle("GET /reports/category", protected(http.HandlerFunc(s.reportHandler.GetCategoryReport)))
	mux.Handle("GET /reports/yearly", protected(http.HandlerFunc(s.reportHandler.GetYearlyReport)))

	mux.Handle("/", http.HandlerFunc(notFoundHandler))

	s.router = mux
}

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logLevel, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	if err := checkConfiguration(); err != nil {
		logger.Fatalf("Missing configuration, update to start server: %v", err)
	}

	dbService, err := database.NewDBService()
	if err != nil {
		logger.Fatalf("Could not initialize database: %v", err)
	}
	defer dbService.Close()

	if err := dbService.Migrate(); err != nil {
		logger.Fatalf("Could not run migrations: %v", err)
	}

	userRepo := user.NewUserRepository(dbService.DB)
	userService := user.NewUserService(userRepo)
	userHandler := user.NewHandler(userService)

	jwtManager := auth.NewJWTManager()
	authService := auth.NewAuthService(userService, jwtManager, logger)
	authHandler := auth.NewHandler(authService)

	transactionRepo := infrastructure.NewTransactionRepository(dbService.DB)
	transactionService := application.NewTransactionService(transactionRepo, logger)
	transactionHandler := interfaces.NewTransactionHandler(transactionService, respondJSON, respondError)

	reportRepo := infrastructure.NewReportRepository(dbService.DB)
	reportService := application.NewReportService(reportRepo, logger)
	reportHandler := interfaces.NewReportHandler(reportService, respondJSON, respondError)

	server := NewServer(userHandler, authHandler, authService, transactionHandler, reportHandler, dbService)
	server.RegisterRoutes()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	logger.Infof("Server starting on port %s...", port)
	if err := http.ListenAndServe(":"+port, loggingMiddleware(logger, server.router)); err != nil {
		logger.Fatalf("Server failed to start: %v", err)
	}
}
