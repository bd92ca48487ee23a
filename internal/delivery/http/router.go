package http

import (
	"net/http"

	"community-health-api/internal/delivery/http/handler"
	"community-health-api/internal/delivery/http/middleware"
	"community-health-api/pkg/response"

	"github.com/gorilla/mux"
)

type Router struct {
	router               *mux.Router
	healthSurveyHandler  *handler.HealthSurveyHandler
	labTestHandler       *handler.LabTestHandler
	bloodPressureHandler *handler.BloodPressureHandler
	metabolicHandler     *handler.MetabolicHandler
	doctorHandler        *handler.DoctorHandler
	corsMiddleware       *middleware.CORSMiddleware
	requestIDMiddleware  *middleware.RequestIDMiddleware
}

func NewRouter(
	healthSurveyHandler *handler.HealthSurveyHandler,
	labTestHandler *handler.LabTestHandler,
	bloodPressureHandler *handler.BloodPressureHandler,
	metabolicHandler *handler.MetabolicHandler,
	doctorHandler *handler.DoctorHandler,
	corsMiddleware *middleware.CORSMiddleware,
	requestIDMiddleware *middleware.RequestIDMiddleware,
) *Router {
	return &Router{
		router:               mux.NewRouter(),
		healthSurveyHandler:  healthSurveyHandler,
		labTestHandler:       labTestHandler,
		bloodPressureHandler: bloodPressureHandler,
		metabolicHandler:     metabolicHandler,
		doctorHandler:        doctorHandler,
		corsMiddleware:       corsMiddleware,
		requestIDMiddleware:  requestIDMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Collection forms
	api.HandleFunc("/health-surveys", r.healthSurveyHandler.Save).Methods(http.MethodPost)
	api.HandleFunc("/health-surveys", r.healthSurveyHandler.Get).Methods(http.MethodGet)

	api.HandleFunc("/lab-tests", r.labTestHandler.Save).Methods(http.MethodPost)
	api.HandleFunc("/lab-tests", r.labTestHandler.Get).Methods(http.MethodGet)

	api.HandleFunc("/blood-pressures", r.bloodPressureHandler.Save).Methods(http.MethodPost)

	api.HandleFunc("/metabolic-preventions", r.metabolicHandler.Save).Methods(http.MethodPost)
	api.HandleFunc("/metabolic-preventions", r.metabolicHandler.Get).Methods(http.MethodGet)

	// Doctor roster
	api.HandleFunc("/doctors", r.doctorHandler.CreateDoctor).Methods(http.MethodPost)
	api.HandleFunc("/doctors", r.doctorHandler.GetAllDoctors).Methods(http.MethodGet)
	api.HandleFunc("/doctors/{id}", r.doctorHandler.GetDoctor).Methods(http.MethodGet)
	api.HandleFunc("/doctors/{id}", r.doctorHandler.UpdateDoctor).Methods(http.MethodPut)
	api.HandleFunc("/doctors/{id}", r.doctorHandler.DeleteDoctor).Methods(http.MethodDelete)

	r.router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		response.NotFound(w, "Route not found")
	})
	r.router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		response.MethodNotAllowed(w, "")
	})

	r.router.Use(r.requestIDMiddleware.Handle)
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
