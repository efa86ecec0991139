package dto

import "time"

// LoginRequest - запрос на вход оператора
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=1"`
}

// LoginResponse - ответ с выпущенным токеном
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	UserUUID  string    `json:"userUuid"`
}

// CreateCompanyRequest - запрос на создание компании
type CreateCompanyRequest struct {
	Name                   string `json:"name" validate:"required,min=1,max=200"`
	Address                string `json:"address" validate:"max=300"`
	Email                  string `json:"email" validate:"omitempty,email"`
	Phone                  string `json:"phone" validate:"max=50"`
	Province               string `json:"province" validate:"max=100"`
	PostalCode             string `json:"postalCode" validate:"max=20"`
	FiscalCode             string `json:"fiscalCode" validate:"max=50"`
	VatCode                string `json:"vatCode" validate:"max=50"`
	RegisteredMunicipality string `json:"registeredMunicipality" validate:"max=200"`
}

// UpdateCompanyRequest - полный заменяющий набор полей компании.
// Не переданное поле очищается, частичных обновлений нет
type UpdateCompanyRequest = CreateCompanyRequest

// CreateLocalUnitRequest - запрос на создание производственной единицы
type CreateLocalUnitRequest struct {
	CompanyID      int64  `json:"companyId" validate:"required,min=1"`
	PropertyID     *int64 `json:"propertyId" validate:"omitempty,min=1"`
	Name           string `json:"name" validate:"required,min=1,max=200"`
	Email          string `json:"email" validate:"omitempty,email"`
	Address        string `json:"address" validate:"max=300"`
	Municipality   string `json:"municipality" validate:"max=200"`
	Province       string `json:"province" validate:"max=100"`
	PostalCode     string `json:"postalCode" validate:"max=20"`
	Phone          string `json:"phone" validate:"max=50"`
	Rea            string `json:"rea" validate:"max=50"`
	AtecoCode      string `json:"atecoCode" validate:"max=50"`
	MainActivity   string `json:"mainActivity" validate:"max=300"`
	Cciaa          string `json:"cciaa" validate:"max=50"`
	IsArtisan      bool   `json:"isArtisan"`
	IsAgricultural bool   `json:"isAgricultural"`
	SafetyManager  string `json:"safetyManager" validate:"max=200"`
	Employer       string `json:"employer" validate:"max=200"`
}

// UpdateLocalUnitRequest - полный заменяющий набор полей
type UpdateLocalUnitRequest = CreateLocalUnitRequest

// CreateDepartmentRequest - запрос на создание отдела
type CreateDepartmentRequest struct {
	LocalUnitID int64  `json:"localUnitId" validate:"required,min=1"`
	Name        string `json:"name" validate:"required,min=1,max=200"`
}

// UpdateDepartmentRequest - полный заменяющий набор полей
type UpdateDepartmentRequest = CreateDepartmentRequest

// CreateHRRequest - запрос на создание сотрудника
type CreateHRRequest struct {
	CompanyID             int64   `json:"companyId" validate:"required,min=1"`
	Name                  string  `json:"name" validate:"required,min=1,max=200"`
	Surname               string  `json:"surname" validate:"required,min=1,max=200"`
	FiscalCode            string  `json:"fiscalCode" validate:"max=50"`
	Email                 string  `json:"email" validate:"omitempty,email"`
	Phone                 string  `json:"phone" validate:"max=50"`
	BirthPlace            string  `json:"birthPlace" validate:"max=200"`
	BirthDate             *string `json:"birthDate" validate:"omitempty,datetime=2006-01-02"`
	Nationality           string  `json:"nationality" validate:"max=100"`
	RecruitmentDate       *string `json:"recruitmentDate" validate:"omitempty,datetime=2006-01-02"`
	ContractQualification string  `json:"contractQualification" validate:"max=200"`
	ContractLevel         string  `json:"contractLevel" validate:"max=100"`
	Duty                  string  `json:"duty" validate:"max=200"`
	IsApprentice          bool    `json:"isApprentice"`
	Address               string  `json:"address" validate:"max=300"`
	Municipality          string  `json:"municipality" validate:"max=200"`
	Province              string  `json:"province" validate:"max=100"`
	PostalCode            string  `json:"postalCode" validate:"max=20"`
	Country               string  `json:"country" validate:"max=100"`
}

// UpdateHRRequest - полный заменяющий набор полей
type UpdateHRRequest = CreateHRRequest

// AssignHRRequest - запрос на назначение сотрудника в отдел
type AssignHRRequest struct {
	StartDate string  `json:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate   *string `json:"endDate" validate:"omitempty,datetime=2006-01-02"`
}

// CreateEquipmentRequest - запрос на создание оборудования
type CreateEquipmentRequest struct {
	DepartmentID  int64   `json:"departmentId" validate:"required,min=1"`
	Name          string  `json:"name" validate:"required,min=1,max=200"`
	Type          string  `json:"type" validate:"max=100"`
	Brand         string  `json:"brand" validate:"max=100"`
	SerialNumber  string  `json:"serialNumber" validate:"max=100"`
	PurchaseDate  *string `json:"purchaseDate" validate:"omitempty,datetime=2006-01-02"`
	FirstTestDate *string `json:"firstTestDate" validate:"omitempty,datetime=2006-01-02"`
}

// UpdateEquipmentRequest - полный заменяющий набор полей
type UpdateEquipmentRequest = CreateEquipmentRequest

// CreateVehicleRequest - запрос на создание транспортного средства
type CreateVehicleRequest struct {
	LocalUnitID      int64   `json:"localUnitId" validate:"required,min=1"`
	HRID             *int64  `json:"hrId" validate:"omitempty,min=1"`
	Name             string  `json:"name" validate:"required,min=1,max=200"`
	Brand            string  `json:"brand" validate:"max=100"`
	Model            string  `json:"model" validate:"max=100"`
	LicensePlate     string  `json:"licensePlate" validate:"max=50"`
	SerialNumber     string  `json:"serialNumber" validate:"max=100"`
	RegistrationDate *string `json:"registrationDate" validate:"omitempty,datetime=2006-01-02"`
	Category         string  `json:"category" validate:"max=100"`
	Owner            string  `json:"owner" validate:"max=200"`
}

// UpdateVehicleRequest - полный заменяющий набор полей
type UpdateVehicleRequest = CreateVehicleRequest

// CreatePropertyRequest - запрос на создание объекта недвижимости
type CreatePropertyRequest struct {
	CompanyID         int64  `json:"companyId" validate:"required,min=1"`
	Name              string `json:"name" validate:"required,min=1,max=200"`
	Address           string `json:"address" validate:"max=300"`
	Municipality      string `json:"municipality" validate:"max=200"`
	PostalCode        string `json:"postalCode" validate:"max=20"`
	Province          string `json:"province" validate:"max=100"`
	Country           string `json:"country" validate:"max=100"`
	LandUse           string `json:"landUse" validate:"max=100"`
	CadastralSheet    string `json:"cadastralSheet" validate:"max=50"`
	CadastralParcel   string `json:"cadastralParcel" validate:"max=50"`
	CadastralUnit     string `json:"cadastralUnit" validate:"max=50"`
	CadastralCategory string `json:"cadastralCategory" validate:"max=50"`
	EnergyClass       string `json:"energyClass" validate:"max=20"`
	CadastralIncome   string `json:"cadastralIncome" validate:"max=50"`
}

// UpdatePropertyRequest - полный заменяющий набор полей
type UpdatePropertyRequest = CreatePropertyRequest

// CreateDocumentQuery - параметры multipart-загрузки документа.
// Файл и описание передаются полями формы, область видимости - в query
type CreateDocumentQuery struct {
	CompanyID int64 `validate:"required,min=1"`
	RefID     int64 `validate:"required,min=1"`
	ModuleID  int64 `validate:"required,min=1"`
}

// UpdateDocumentRequest - переименование документа без повторной загрузки файла
type UpdateDocumentRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=300"`
	Description string `json:"description" validate:"max=500"`
}

// ListDocumentsQuery - параметры полиморфной выборки документов
type ListDocumentsQuery struct {
	RefID    int64 `validate:"required,min=1"`
	ModuleID int64 `validate:"required,min=1"`
}

// HRAssignmentResponse - сотрудник вместе с данными назначения в отдел
type HRAssignmentResponse struct {
	ID           int64      `json:"id"`
	UUID         string     `json:"uuid"`
	Name         string     `json:"name"`
	Surname      string     `json:"surname"`
	FiscalCode   string     `json:"fiscalCode"`
	Email        string     `json:"email"`
	HRID         int64      `json:"hrId"`
	DepartmentID int64      `json:"departmentId"`
	StartDate    time.Time  `json:"startDate"`
	EndDate      *time.Time `json:"endDate"`
}

// StatusResponse - обёртка ответа для операций без тела
type StatusResponse struct {
	Status string `json:"status"`
}

// ErrorResponse - стандартный ответ с ошибкой
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
