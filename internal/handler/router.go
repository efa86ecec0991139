package handler

import (
	"log/slog"
	"net/http"

	"github.com/business-console-api/internal/auth"
	"github.com/business-console-api/internal/middleware"
	"github.com/gorilla/mux"
)

// Router настраивает маршруты API
type Router struct {
	logger *slog.Logger
	tokens *auth.TokenManager

	authHandler      *AuthHandler
	companyHandler   *CompanyHandler
	unitHandler      *LocalUnitHandler
	deptHandler      *DepartmentHandler
	hrHandler        *HRHandler
	equipmentHandler *EquipmentHandler
	vehicleHandler   *VehicleHandler
	propertyHandler  *PropertyHandler
	docHandler       *DocumentHandler
}

// NewRouter создаёт новый роутер
func NewRouter(
	tokens *auth.TokenManager,
	authHandler *AuthHandler,
	companyHandler *CompanyHandler,
	unitHandler *LocalUnitHandler,
	deptHandler *DepartmentHandler,
	hrHandler *HRHandler,
	equipmentHandler *EquipmentHandler,
	vehicleHandler *VehicleHandler,
	propertyHandler *PropertyHandler,
	docHandler *DocumentHandler,
	logger *slog.Logger,
) *Router {
	return &Router{
		logger:           logger,
		tokens:           tokens,
		authHandler:      authHandler,
		companyHandler:   companyHandler,
		unitHandler:      unitHandler,
		deptHandler:      deptHandler,
		hrHandler:        hrHandler,
		equipmentHandler: equipmentHandler,
		vehicleHandler:   vehicleHandler,
		propertyHandler:  propertyHandler,
		docHandler:       docHandler,
	}
}

// Setup настраивает все маршруты
func (r *Router) Setup() http.Handler {
	root := mux.NewRouter()

	root.HandleFunc("/health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods(http.MethodGet)

	root.HandleFunc("/auth/login", r.authHandler.Login).Methods(http.MethodPost)

	// Все остальные маршруты требуют bearer-токен
	api := root.PathPrefix("/").Subrouter()
	api.Use(middleware.Auth(r.tokens))

	api.HandleFunc("/companies", r.companyHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/companies", r.companyHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/companies/{id:[0-9]+}", r.companyHandler.GetByID).Methods(http.MethodGet)
	api.HandleFunc("/companies/{id:[0-9]+}", r.companyHandler.Update).Methods(http.MethodPut)
	api.HandleFunc("/companies/{id:[0-9]+}", r.companyHandler.Delete).Methods(http.MethodDelete)

	// Списки дочерних сущностей в разрезе компании
	api.HandleFunc("/companies/{id:[0-9]+}/local-units", r.unitHandler.ListByCompany).Methods(http.MethodGet)
	api.HandleFunc("/companies/{id:[0-9]+}/departments", r.deptHandler.ListByCompany).Methods(http.MethodGet)
	api.HandleFunc("/companies/{id:[0-9]+}/hr", r.hrHandler.ListByCompany).Methods(http.MethodGet)
	api.HandleFunc("/companies/{id:[0-9]+}/equipments", r.equipmentHandler.ListByCompany).Methods(http.MethodGet)
	api.HandleFunc("/companies/{id:[0-9]+}/vehicles", r.vehicleHandler.ListByCompany).Methods(http.MethodGet)
	api.HandleFunc("/companies/{id:[0-9]+}/properties", r.propertyHandler.ListByCompany).Methods(http.MethodGet)
	api.HandleFunc("/companies/{id:[0-9]+}/documents", r.docHandler.ListByCompany).Methods(http.MethodGet)

	api.HandleFunc("/local-units", r.unitHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/local-units/{id:[0-9]+}", r.unitHandler.GetByID).Methods(http.MethodGet)
	api.HandleFunc("/local-units/{id:[0-9]+}", r.unitHandler.Update).Methods(http.MethodPut)
	api.HandleFunc("/local-units/{id:[0-9]+}", r.unitHandler.Delete).Methods(http.MethodDelete)
	api.HandleFunc("/local-units/{id:[0-9]+}/departments", r.deptHandler.ListByLocalUnit).Methods(http.MethodGet)
	api.HandleFunc("/local-units/{id:[0-9]+}/vehicles", r.vehicleHandler.ListByLocalUnit).Methods(http.MethodGet)
	api.HandleFunc("/local-units/{id:[0-9]+}/documents", r.docHandler.ListByLocalUnit).Methods(http.MethodGet)

	api.HandleFunc("/departments", r.deptHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/departments/{id:[0-9]+}", r.deptHandler.GetByID).Methods(http.MethodGet)
	api.HandleFunc("/departments/{id:[0-9]+}", r.deptHandler.Update).Methods(http.MethodPut)
	api.HandleFunc("/departments/{id:[0-9]+}", r.deptHandler.Delete).Methods(http.MethodDelete)
	api.HandleFunc("/departments/{id:[0-9]+}/hr", r.deptHandler.ListHR).Methods(http.MethodGet)
	api.HandleFunc("/departments/{id:[0-9]+}/hr/{hrId:[0-9]+}", r.deptHandler.AssignHR).Methods(http.MethodPut)
	api.HandleFunc("/departments/{id:[0-9]+}/hr/{hrId:[0-9]+}", r.deptHandler.RemoveHR).Methods(http.MethodDelete)
	api.HandleFunc("/departments/{id:[0-9]+}/equipments", r.equipmentHandler.ListByDepartment).Methods(http.MethodGet)

	api.HandleFunc("/hr", r.hrHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/hr/{id:[0-9]+}", r.hrHandler.GetByID).Methods(http.MethodGet)
	api.HandleFunc("/hr/{id:[0-9]+}", r.hrHandler.Update).Methods(http.MethodPut)
	api.HandleFunc("/hr/{id:[0-9]+}", r.hrHandler.Delete).Methods(http.MethodDelete)

	api.HandleFunc("/equipments", r.equipmentHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/equipments/{id:[0-9]+}", r.equipmentHandler.GetByID).Methods(http.MethodGet)
	api.HandleFunc("/equipments/{id:[0-9]+}", r.equipmentHandler.Update).Methods(http.MethodPut)
	api.HandleFunc("/equipments/{id:[0-9]+}", r.equipmentHandler.Delete).Methods(http.MethodDelete)

	api.HandleFunc("/vehicles", r.vehicleHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/vehicles/{id:[0-9]+}", r.vehicleHandler.GetByID).Methods(http.MethodGet)
	api.HandleFunc("/vehicles/{id:[0-9]+}", r.vehicleHandler.Update).Methods(http.MethodPut)
	api.HandleFunc("/vehicles/{id:[0-9]+}", r.vehicleHandler.Delete).Methods(http.MethodDelete)

	api.HandleFunc("/properties", r.propertyHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/properties/{id:[0-9]+}", r.propertyHandler.GetByID).Methods(http.MethodGet)
	api.HandleFunc("/properties/{id:[0-9]+}", r.propertyHandler.Update).Methods(http.MethodPut)
	api.HandleFunc("/properties/{id:[0-9]+}", r.propertyHandler.Delete).Methods(http.MethodDelete)

	api.HandleFunc("/modules/{id:[0-9]+}", r.docHandler.GetModule).Methods(http.MethodGet)
	api.HandleFunc("/modules/", r.docHandler.FindModule).Methods(http.MethodGet)
	api.HandleFunc("/modules", r.docHandler.FindModule).Methods(http.MethodGet)

	api.HandleFunc("/documents", r.docHandler.ListByRef).Methods(http.MethodGet)
	api.HandleFunc("/documents", r.docHandler.Upload).Methods(http.MethodPost)
	api.HandleFunc("/documents/{id:[0-9]+}", r.docHandler.GetByID).Methods(http.MethodGet)
	api.HandleFunc("/documents/{id:[0-9]+}", r.docHandler.Rename).Methods(http.MethodPatch)
	api.HandleFunc("/documents/{id:[0-9]+}", r.docHandler.Delete).Methods(http.MethodDelete)
	api.HandleFunc("/documents/{id:[0-9]+}/content", r.docHandler.Download).Methods(http.MethodGet)

	handler := middleware.ContentType(root)
	handler = middleware.Logger(r.logger)(handler)
	handler = middleware.Recoverer(r.logger)(handler)

	return handler
}
