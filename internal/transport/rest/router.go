package rest

import (
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"selectra/internal/service"
	"selectra/internal/transport/rest/handler"
)

// Container holds all dependencies for the router.
type Container struct {
	EvaluationService *service.EvaluationService
	ReportService     *service.ReportService
	Logger            *zap.Logger
	StaticDir         string
	CORSOrigin        string
}

// NewRouter creates the API router with all endpoints.
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	interviewHandler := handler.NewInterviewHandler(c.EvaluationService, c.Logger)
	reportHandler := handler.NewReportHandler(c.ReportService, c.Logger)

	r.Use(corsMiddleware(c.CORSOrigin))

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/questions", interviewHandler.Questions).Methods("GET", "OPTIONS")
	api.HandleFunc("/evaluate", interviewHandler.Evaluate).Methods("POST", "OPTIONS")
	api.HandleFunc("/final-report", reportHandler.FinalReport).Methods("POST", "OPTIONS")
	api.HandleFunc("/reset", reportHandler.Reset).Methods("POST", "OPTIONS")

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	if c.StaticDir != "" {
		r.PathPrefix("/").Handler(http.FileServer(http.Dir(c.StaticDir)))
	}

	return r
}

func corsMiddleware(origin string) mux.MiddlewareFunc {
	if origin == "" {
		origin = "*"
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

			if r.Method == "OPTIONS" {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
