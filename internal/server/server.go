package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jcmanalo/barangay-records/internal/config"
	"github.com/jcmanalo/barangay-records/internal/db"
	"github.com/jcmanalo/barangay-records/internal/metrics"
	"github.com/jcmanalo/barangay-records/internal/server/middleware"
	"github.com/jcmanalo/barangay-records/internal/server/ratelimit"
	"github.com/jcmanalo/barangay-records/internal/storage"
)

// Server represents the HTTP server
type Server struct {
	httpServer  *http.Server
	db          *db.DB
	storage     *storage.Store
	metrics     *metrics.Metrics
	rateLimiter *ratelimit.Limiter
	jwtService  *JWTService
	userService *UserService
	authHandler *AuthHandler
	requireAuth func(http.Handler) http.Handler
	logoPath    string
	coWitness   string
}

// New creates a new server instance
func New(cfg *config.AppConfig) (*Server, error) {
	// Connect to database
	database, err := db.Connect(context.Background(), cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	store, err := storage.New(cfg.UploadDir)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare upload storage: %w", err)
	}

	s := &Server{
		db:        database,
		storage:   store,
		metrics:   metrics.New(),
		logoPath:  cfg.LogoPath,
		coWitness: cfg.CoWitness,
	}

	// Initialize rate limiter
	s.rateLimiter = ratelimit.NewLimiter(ratelimit.LoadConfig())

	// Initialize authentication services
	passwordConfig, err := config.NewPasswordConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to create password config: %w", err)
	}
	s.userService = NewUserService(database, passwordConfig)

	jwtConfig, err := config.NewJWTConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT config: %w", err)
	}
	s.jwtService = NewJWTService(jwtConfig)
	s.requireAuth = middleware.AuthMiddleware(s.jwtService.AsTokenValidator())

	s.authHandler = NewAuthHandler(s.userService, s.jwtService, s.metrics)

	// Create HTTP server
	s.httpServer = &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      s.withRateLimit(s.withLogging(s.withCORS(s.routes()))),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second, // generation renders three documents
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// routes builds the API router. Reads are public; writes, certificate
// generation, and the audit trail require authentication.
func (s *Server) routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", s.handleHealth)
	mux.Handle("GET /metrics", promhttp.Handler())
	mux.Handle("GET /uploads/", http.StripPrefix("/uploads/", http.FileServer(http.Dir(s.storage.Root()))))

	// Authentication
	mux.HandleFunc("POST /api/auth/register", s.authHandler.Register)
	mux.HandleFunc("POST /api/auth/login", s.authHandler.Login)
	mux.Handle("GET /api/auth/me", s.protected(s.authHandler.Me))

	// Residents
	mux.HandleFunc("GET /api/residents", s.handleListResidents)
	mux.HandleFunc("GET /api/residents/{id}", s.handleGetResident)
	mux.Handle("POST /api/residents", s.protected(s.handleCreateResident))
	mux.Handle("PUT /api/residents/{id}", s.protected(s.handleUpdateResident))

	// Households
	mux.HandleFunc("GET /api/households", s.handleListHouseholds)
	mux.Handle("POST /api/households", s.protected(s.handleCreateHousehold))
	mux.Handle("PUT /api/households/{id}", s.protected(s.handleUpdateHousehold))
	mux.HandleFunc("GET /api/households/{id}/members", s.handleListHouseholdMembers)
	mux.Handle("POST /api/households/{id}/members", s.protected(s.handleAddHouseholdMember))

	// Incidents
	mux.HandleFunc("GET /api/incidents", s.handleListIncidents)
	mux.HandleFunc("GET /api/incidents/{id}", s.handleGetIncident)
	mux.Handle("POST /api/incidents", s.protected(s.handleCreateIncident))
	mux.Handle("PUT /api/incidents/{id}", s.protected(s.handleUpdateIncident))

	// Services
	mux.HandleFunc("GET /api/services", s.handleListServices)
	mux.Handle("POST /api/services", s.protected(s.handleCreateService))
	mux.Handle("PUT /api/services/{id}", s.protected(s.handleUpdateService))
	mux.HandleFunc("GET /api/services/{id}/beneficiaries", s.handleListServiceBeneficiaries)
	mux.Handle("POST /api/services/{id}/beneficiaries", s.protected(s.handleAddServiceBeneficiary))

	// Officials
	mux.HandleFunc("GET /api/officials", s.handleListOfficials)
	mux.HandleFunc("GET /api/officials/{id}", s.handleGetOfficial)
	mux.Handle("POST /api/officials", s.protected(s.handleCreateOfficial))
	mux.Handle("PUT /api/officials/{id}", s.protected(s.handleUpdateOfficial))
	mux.Handle("DELETE /api/officials/{id}", s.protected(s.handleDeleteOfficial))

	// Barangay profile
	mux.HandleFunc("GET /api/barangay-profile", s.handleGetProfile)
	mux.Handle("PUT /api/barangay-profile", s.protected(s.handleSaveProfile))

	// Certificates
	mux.HandleFunc("GET /api/certificates/types", s.handleListCertificateTypes)
	mux.Handle("GET /api/certificates", s.protected(s.handleListCertificates))
	mux.Handle("POST /api/certificates", s.protected(s.handleCreateCertificate))
	mux.Handle("POST /api/certificates/generate", s.protected(s.handleGenerateCertificate))

	// History logs
	mux.Handle("GET /api/history-logs", s.protected(s.handleListHistoryLogs))

	return mux
}

// protected wraps a handler with JWT authentication.
func (s *Server) protected(h http.HandlerFunc) http.Handler {
	return s.requireAuth(h)
}

// Start begins listening for requests
func (s *Server) Start() error {
	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	// Stop rate limiter cleanup goroutine
	if s.rateLimiter != nil {
		s.rateLimiter.Stop()
	}

	s.db.Close()
	log.Println("Server stopped")
	return nil
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withRateLimit adds rate limiting middleware
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Extract client identifier (IP address)
		clientID := s.extractClientID(r)

		// Check rate limit
		allowed, info := s.rateLimiter.Allow(clientID, r.URL.Path, r.Method)

		if !allowed {
			// Set rate limit headers
			s.setRateLimitHeaders(w, info)
			// Return 429 Too Many Requests
			s.rateLimitResponse(w, info)
			return
		}

		// Set rate limit headers for successful requests
		s.setRateLimitHeaders(w, info)
		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging and latency observation
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		elapsed := time.Since(start)
		s.metrics.EndpointLatency.WithLabelValues(endpointLabel(r.Method, r.URL.Path)).Observe(elapsed.Seconds())
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, elapsed)
	})
}

// endpointLabel collapses record IDs out of a path so latency metrics keep a
// bounded label set.
func endpointLabel(method, path string) string {
	parts := strings.Split(path, "/")
	for i, p := range parts {
		if _, err := uuid.Parse(p); err == nil {
			parts[i] = ":id"
		}
	}
	return method + " " + strings.Join(parts, "/")
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

// extractClientID extracts the client identifier from the request.
// This uses the IP address from RemoteAddr; X-Forwarded-For would only be
// safe behind a trusted proxy.
func (s *Server) extractClientID(r *http.Request) string {
	// Get IP from RemoteAddr (format: "IP:port")
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		// If parsing fails, use the whole RemoteAddr
		return r.RemoteAddr
	}
	return ip
}

// setRateLimitHeaders sets standard rate limit headers on the response.
func (s *Server) setRateLimitHeaders(w http.ResponseWriter, info ratelimit.Info) {
	if info.Limit > 0 {
		w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", info.Limit))
		w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", info.Remaining))
		w.Header().Set("X-RateLimit-Reset", fmt.Sprintf("%d", info.ResetTime.Unix()))
	}
}

// rateLimitResponse writes a 429 Too Many Requests response with rate limit information.
func (s *Server) rateLimitResponse(w http.ResponseWriter, info ratelimit.Info) {
	response := map[string]interface{}{
		"error":     "rate_limit_exceeded",
		"message":   "Rate limit exceeded. Please try again later.",
		"limit":     info.Limit,
		"remaining": info.Remaining,
		"reset_at":  info.ResetTime.Format(time.RFC3339),
	}

	if info.RetryAfter > 0 {
		response["retry_after"] = int(info.RetryAfter.Seconds())
		w.Header().Set("Retry-After", fmt.Sprintf("%d", int(info.RetryAfter.Seconds())))
	}

	// Log rate limit hit
	log.Printf("[rate-limit] Rate limit exceeded: Limit=%d Remaining=%d Reset=%s",
		info.Limit, info.Remaining, info.ResetTime.Format(time.RFC3339))

	s.jsonResponse(w, http.StatusTooManyRequests, response)
}
