package client

import "time"

// Сущности консоли в том виде, в каком их отдаёт API.
// SDK намеренно объявляет собственные типы и не тянет внутренние
// модели сервера

// LoginResponse - результат входа
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	UserUUID  string    `json:"userUuid"`
}

// Status - обёртка ответа для операций без тела
type Status struct {
	Status string `json:"status"`
}

// Company - компания
type Company struct {
	ID                     int64     `json:"id"`
	UUID                   string    `json:"uuid"`
	Name                   string    `json:"name"`
	Address                string    `json:"address"`
	Email                  string    `json:"email"`
	Phone                  string    `json:"phone"`
	Province               string    `json:"province"`
	PostalCode             string    `json:"postalCode"`
	FiscalCode             string    `json:"fiscalCode"`
	VatCode                string    `json:"vatCode"`
	RegisteredMunicipality string    `json:"registeredMunicipality"`
	Version                int       `json:"version"`
	CreatedAt              time.Time `json:"createdAt"`
	UpdatedAt              time.Time `json:"updatedAt"`
}

// LocalUnit - производственная единица
type LocalUnit struct {
	ID             int64     `json:"id"`
	UUID           string    `json:"uuid"`
	CompanyID      int64     `json:"companyId"`
	PropertyID     *int64    `json:"propertyId"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Address        string    `json:"address"`
	Municipality   string    `json:"municipality"`
	Province       string    `json:"province"`
	PostalCode     string    `json:"postalCode"`
	Phone          string    `json:"phone"`
	Rea            string    `json:"rea"`
	AtecoCode      string    `json:"atecoCode"`
	MainActivity   string    `json:"mainActivity"`
	Cciaa          string    `json:"cciaa"`
	IsArtisan      bool      `json:"isArtisan"`
	IsAgricultural bool      `json:"isAgricultural"`
	SafetyManager  string    `json:"safetyManager"`
	Employer       string    `json:"employer"`
	Version        int       `json:"version"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// Department - отдел
type Department struct {
	ID          int64     `json:"id"`
	UUID        string    `json:"uuid"`
	LocalUnitID int64     `json:"localUnitId"`
	Name        string    `json:"name"`
	Version     int       `json:"version"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// HR - сотрудник
type HR struct {
	ID                    int64      `json:"id"`
	UUID                  string     `json:"uuid"`
	CompanyID             int64      `json:"companyId"`
	Name                  string     `json:"name"`
	Surname               string     `json:"surname"`
	FiscalCode            string     `json:"fiscalCode"`
	Email                 string     `json:"email"`
	Phone                 string     `json:"phone"`
	BirthPlace            string     `json:"birthPlace"`
	BirthDate             *time.Time `json:"birthDate"`
	Nationality           string     `json:"nationality"`
	RecruitmentDate       *time.Time `json:"recruitmentDate"`
	ContractQualification string     `json:"contractQualification"`
	ContractLevel         string     `json:"contractLevel"`
	Duty                  string     `json:"duty"`
	IsApprentice          bool       `json:"isApprentice"`
	Address               string     `json:"address"`
	Municipality          string     `json:"municipality"`
	Province              string     `json:"province"`
	PostalCode            string     `json:"postalCode"`
	Country               string     `json:"country"`
	Version               int        `json:"version"`
	CreatedAt             time.Time  `json:"createdAt"`
	UpdatedAt             time.Time  `json:"updatedAt"`
}

// HRAssignment - сотрудник вместе с данными назначения в отдел
type HRAssignment struct {
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

// Equipment - оборудование
type Equipment struct {
	ID            int64      `json:"id"`
	UUID          string     `json:"uuid"`
	DepartmentID  int64      `json:"departmentId"`
	Name          string     `json:"name"`
	Type          string     `json:"type"`
	Brand         string     `json:"brand"`
	SerialNumber  string     `json:"serialNumber"`
	PurchaseDate  *time.Time `json:"purchaseDate"`
	FirstTestDate *time.Time `json:"firstTestDate"`
	Version       int        `json:"version"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

// Vehicle - транспортное средство
type Vehicle struct {
	ID               int64      `json:"id"`
	UUID             string     `json:"uuid"`
	LocalUnitID      int64      `json:"localUnitId"`
	HRID             *int64     `json:"hrId"`
	Name             string     `json:"name"`
	Brand            string     `json:"brand"`
	Model            string     `json:"model"`
	LicensePlate     string     `json:"licensePlate"`
	SerialNumber     string     `json:"serialNumber"`
	RegistrationDate *time.Time `json:"registrationDate"`
	Category         string     `json:"category"`
	Owner            string     `json:"owner"`
	Version          int        `json:"version"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
}

// Property - объект недвижимости
type Property struct {
	ID                int64     `json:"id"`
	UUID              string    `json:"uuid"`
	CompanyID         int64     `json:"companyId"`
	Name              string    `json:"name"`
	Address           string    `json:"address"`
	Municipality      string    `json:"municipality"`
	PostalCode        string    `json:"postalCode"`
	Province          string    `json:"province"`
	Country           string    `json:"country"`
	LandUse           string    `json:"landUse"`
	CadastralSheet    string    `json:"cadastralSheet"`
	CadastralParcel   string    `json:"cadastralParcel"`
	CadastralUnit     string    `json:"cadastralUnit"`
	CadastralCategory string    `json:"cadastralCategory"`
	EnergyClass       string    `json:"energyClass"`
	CadastralIncome   string    `json:"cadastralIncome"`
	Version           int       `json:"version"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// Module - раздел консоли, область видимости документов
type Module struct {
	ID   int64  `json:"id"`
	UUID string `json:"uuid"`
	Name string `json:"name"`
}

// Document - документ, привязанный к сущности через пару (refId, moduleId)
type Document struct {
	ID          int64     `json:"id"`
	UUID        string    `json:"uuid"`
	CompanyID   int64     `json:"companyId"`
	RefID       int64     `json:"refId"`
	ModuleID    int64     `json:"moduleId"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Path        string    `json:"path"`
	FileType    string    `json:"fileType"`
	FileSize    int64     `json:"fileSize"`
	Version     int       `json:"version"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
