package domain

import (
	"time"

	"gorm.io/gorm"
)

// Company представляет компанию, корневой агрегат мультитенантной модели
type Company struct {
	ID                     int64          `json:"id" gorm:"primaryKey;autoIncrement"`
	UUID                   string         `json:"uuid" gorm:"type:varchar(36);uniqueIndex"`
	Name                   string         `json:"name" gorm:"type:varchar(200);not null"`
	Address                string         `json:"address" gorm:"type:varchar(300)"`
	Email                  string         `json:"email" gorm:"type:varchar(200)"`
	Phone                  string         `json:"phone" gorm:"type:varchar(50)"`
	Province               string         `json:"province" gorm:"type:varchar(100)"`
	PostalCode             string         `json:"postalCode" gorm:"type:varchar(20)"`
	FiscalCode             string         `json:"fiscalCode" gorm:"type:varchar(50)"`
	VatCode                string         `json:"vatCode" gorm:"type:varchar(50)"`
	RegisteredMunicipality string         `json:"registeredMunicipality" gorm:"type:varchar(200)"`
	Version                int            `json:"version" gorm:"not null;default:1"`
	CreatedAt              time.Time      `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt              time.Time      `json:"updatedAt" gorm:"autoUpdateTime"`
	DeletedAt              gorm.DeletedAt `json:"deletedAt,omitempty" gorm:"index"`

	LocalUnits []LocalUnit `json:"localUnits,omitempty" gorm:"foreignKey:CompanyID;constraint:OnDelete:CASCADE"`
	Properties []Property  `json:"properties,omitempty" gorm:"foreignKey:CompanyID;constraint:OnDelete:CASCADE"`
	HR         []HR        `json:"hr,omitempty" gorm:"foreignKey:CompanyID;constraint:OnDelete:CASCADE"`
}

// TableName задаёт имя таблицы для GORM
func (Company) TableName() string {
	return "companies"
}

// LocalUnit представляет производственную единицу компании
type LocalUnit struct {
	ID             int64          `json:"id" gorm:"primaryKey;autoIncrement"`
	UUID           string         `json:"uuid" gorm:"type:varchar(36);uniqueIndex"`
	CompanyID      int64          `json:"companyId" gorm:"not null;index"`
	PropertyID     *int64         `json:"propertyId" gorm:"index"`
	Name           string         `json:"name" gorm:"type:varchar(200);not null"`
	Email          string         `json:"email" gorm:"type:varchar(200)"`
	Address        string         `json:"address" gorm:"type:varchar(300)"`
	Municipality   string         `json:"municipality" gorm:"type:varchar(200)"`
	Province       string         `json:"province" gorm:"type:varchar(100)"`
	PostalCode     string         `json:"postalCode" gorm:"type:varchar(20)"`
	Phone          string         `json:"phone" gorm:"type:varchar(50)"`
	Rea            string         `json:"rea" gorm:"type:varchar(50)"`
	AtecoCode      string         `json:"atecoCode" gorm:"type:varchar(50)"`
	MainActivity   string         `json:"mainActivity" gorm:"type:varchar(300)"`
	Cciaa          string         `json:"cciaa" gorm:"type:varchar(50)"`
	IsArtisan      bool           `json:"isArtisan" gorm:"not null;default:false"`
	IsAgricultural bool           `json:"isAgricultural" gorm:"not null;default:false"`
	SafetyManager  string         `json:"safetyManager" gorm:"type:varchar(200)"`
	Employer       string         `json:"employer" gorm:"type:varchar(200)"`
	Version        int            `json:"version" gorm:"not null;default:1"`
	CreatedAt      time.Time      `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt      time.Time      `json:"updatedAt" gorm:"autoUpdateTime"`
	DeletedAt      gorm.DeletedAt `json:"deletedAt,omitempty" gorm:"index"`

	Company     *Company     `json:"-" gorm:"foreignKey:CompanyID"`
	Departments []Department `json:"departments,omitempty" gorm:"foreignKey:LocalUnitID;constraint:OnDelete:CASCADE"`
	Vehicles    []Vehicle    `json:"vehicles,omitempty" gorm:"foreignKey:LocalUnitID;constraint:OnDelete:CASCADE"`
}

// TableName задаёт имя таблицы для GORM
func (LocalUnit) TableName() string {
	return "local_units"
}

// Department представляет отдел производственной единицы
type Department struct {
	ID          int64          `json:"id" gorm:"primaryKey;autoIncrement"`
	UUID        string         `json:"uuid" gorm:"type:varchar(36);uniqueIndex"`
	LocalUnitID int64          `json:"localUnitId" gorm:"not null;index"`
	Name        string         `json:"name" gorm:"type:varchar(200);not null"`
	Version     int            `json:"version" gorm:"not null;default:1"`
	CreatedAt   time.Time      `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt   time.Time      `json:"updatedAt" gorm:"autoUpdateTime"`
	DeletedAt   gorm.DeletedAt `json:"deletedAt,omitempty" gorm:"index"`

	LocalUnit  *LocalUnit  `json:"-" gorm:"foreignKey:LocalUnitID"`
	Equipments []Equipment `json:"equipments,omitempty" gorm:"foreignKey:DepartmentID;constraint:OnDelete:CASCADE"`
}

// TableName задаёт имя таблицы для GORM
func (Department) TableName() string {
	return "departments"
}

// HR представляет сотрудника компании
type HR struct {
	ID                    int64          `json:"id" gorm:"primaryKey;autoIncrement"`
	UUID                  string         `json:"uuid" gorm:"type:varchar(36);uniqueIndex"`
	CompanyID             int64          `json:"companyId" gorm:"not null;index"`
	Name                  string         `json:"name" gorm:"type:varchar(200);not null"`
	Surname               string         `json:"surname" gorm:"type:varchar(200);not null"`
	FiscalCode            string         `json:"fiscalCode" gorm:"type:varchar(50)"`
	Email                 string         `json:"email" gorm:"type:varchar(200)"`
	Phone                 string         `json:"phone" gorm:"type:varchar(50)"`
	BirthPlace            string         `json:"birthPlace" gorm:"type:varchar(200)"`
	BirthDate             *time.Time     `json:"birthDate" gorm:"type:date"`
	Nationality           string         `json:"nationality" gorm:"type:varchar(100)"`
	RecruitmentDate       *time.Time     `json:"recruitmentDate" gorm:"type:date"`
	ContractQualification string         `json:"contractQualification" gorm:"type:varchar(200)"`
	ContractLevel         string         `json:"contractLevel" gorm:"type:varchar(100)"`
	Duty                  string         `json:"duty" gorm:"type:varchar(200)"`
	IsApprentice          bool           `json:"isApprentice" gorm:"not null;default:false"`
	Address               string         `json:"address" gorm:"type:varchar(300)"`
	Municipality          string         `json:"municipality" gorm:"type:varchar(200)"`
	Province              string         `json:"province" gorm:"type:varchar(100)"`
	PostalCode            string         `json:"postalCode" gorm:"type:varchar(20)"`
	Country               string         `json:"country" gorm:"type:varchar(100)"`
	Version               int            `json:"version" gorm:"not null;default:1"`
	CreatedAt             time.Time      `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt             time.Time      `json:"updatedAt" gorm:"autoUpdateTime"`
	DeletedAt             gorm.DeletedAt `json:"deletedAt,omitempty" gorm:"index"`

	Company     *Company       `json:"-" gorm:"foreignKey:CompanyID"`
	Assignments []HRDepartment `json:"assignments,omitempty" gorm:"foreignKey:HRID;constraint:OnDelete:CASCADE"`
}

// TableName задаёт имя таблицы для GORM
func (HR) TableName() string {
	return "hr"
}

// HRDepartment представляет назначение сотрудника в отдел.
// Открытое назначение имеет EndDate = NULL; закрытые назначения
// неизменяемы и образуют историю
type HRDepartment struct {
	ID           int64      `json:"id" gorm:"primaryKey;autoIncrement"`
	HRID         int64      `json:"hrId" gorm:"not null;index"`
	DepartmentID int64      `json:"departmentId" gorm:"not null;index"`
	StartDate    time.Time  `json:"startDate" gorm:"type:date;not null"`
	EndDate      *time.Time `json:"endDate" gorm:"type:date"`
	CreatedAt    time.Time  `json:"createdAt" gorm:"autoCreateTime"`

	HR         *HR         `json:"-" gorm:"foreignKey:HRID"`
	Department *Department `json:"-" gorm:"foreignKey:DepartmentID"`
}

// TableName задаёт имя таблицы для GORM
func (HRDepartment) TableName() string {
	return "hr_departments"
}

// Open сообщает, является ли назначение действующим
func (a *HRDepartment) Open() bool {
	return a.EndDate == nil
}

// Equipment представляет оборудование отдела
type Equipment struct {
	ID            int64          `json:"id" gorm:"primaryKey;autoIncrement"`
	UUID          string         `json:"uuid" gorm:"type:varchar(36);uniqueIndex"`
	DepartmentID  int64          `json:"departmentId" gorm:"not null;index"`
	Name          string         `json:"name" gorm:"type:varchar(200);not null"`
	Type          string         `json:"type" gorm:"type:varchar(100)"`
	Brand         string         `json:"brand" gorm:"type:varchar(100)"`
	SerialNumber  string         `json:"serialNumber" gorm:"type:varchar(100)"`
	PurchaseDate  *time.Time     `json:"purchaseDate" gorm:"type:date"`
	FirstTestDate *time.Time     `json:"firstTestDate" gorm:"type:date"`
	Version       int            `json:"version" gorm:"not null;default:1"`
	CreatedAt     time.Time      `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt     time.Time      `json:"updatedAt" gorm:"autoUpdateTime"`
	DeletedAt     gorm.DeletedAt `json:"deletedAt,omitempty" gorm:"index"`

	Department *Department `json:"-" gorm:"foreignKey:DepartmentID"`
}

// TableName задаёт имя таблицы для GORM
func (Equipment) TableName() string {
	return "equipments"
}

// Vehicle представляет транспортное средство производственной единицы
type Vehicle struct {
	ID               int64          `json:"id" gorm:"primaryKey;autoIncrement"`
	UUID             string         `json:"uuid" gorm:"type:varchar(36);uniqueIndex"`
	LocalUnitID      int64          `json:"localUnitId" gorm:"not null;index"`
	HRID             *int64         `json:"hrId" gorm:"index"`
	Name             string         `json:"name" gorm:"type:varchar(200);not null"`
	Brand            string         `json:"brand" gorm:"type:varchar(100)"`
	Model            string         `json:"model" gorm:"type:varchar(100)"`
	LicensePlate     string         `json:"licensePlate" gorm:"type:varchar(50)"`
	SerialNumber     string         `json:"serialNumber" gorm:"type:varchar(100)"`
	RegistrationDate *time.Time     `json:"registrationDate" gorm:"type:date"`
	Category         string         `json:"category" gorm:"type:varchar(100)"`
	Owner            string         `json:"owner" gorm:"type:varchar(200)"`
	Version          int            `json:"version" gorm:"not null;default:1"`
	CreatedAt        time.Time      `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt        time.Time      `json:"updatedAt" gorm:"autoUpdateTime"`
	DeletedAt        gorm.DeletedAt `json:"deletedAt,omitempty" gorm:"index"`

	LocalUnit *LocalUnit `json:"-" gorm:"foreignKey:LocalUnitID"`
}

// TableName задаёт имя таблицы для GORM
func (Vehicle) TableName() string {
	return "vehicles"
}

// Property представляет объект недвижимости компании
type Property struct {
	ID                int64          `json:"id" gorm:"primaryKey;autoIncrement"`
	UUID              string         `json:"uuid" gorm:"type:varchar(36);uniqueIndex"`
	CompanyID         int64          `json:"companyId" gorm:"not null;index"`
	Name              string         `json:"name" gorm:"type:varchar(200);not null"`
	Address           string         `json:"address" gorm:"type:varchar(300)"`
	Municipality      string         `json:"municipality" gorm:"type:varchar(200)"`
	PostalCode        string         `json:"postalCode" gorm:"type:varchar(20)"`
	Province          string         `json:"province" gorm:"type:varchar(100)"`
	Country           string         `json:"country" gorm:"type:varchar(100)"`
	LandUse           string         `json:"landUse" gorm:"type:varchar(100)"`
	CadastralSheet    string         `json:"cadastralSheet" gorm:"type:varchar(50)"`
	CadastralParcel   string         `json:"cadastralParcel" gorm:"type:varchar(50)"`
	CadastralUnit     string         `json:"cadastralUnit" gorm:"type:varchar(50)"`
	CadastralCategory string         `json:"cadastralCategory" gorm:"type:varchar(50)"`
	EnergyClass       string         `json:"energyClass" gorm:"type:varchar(20)"`
	CadastralIncome   string         `json:"cadastralIncome" gorm:"type:varchar(50)"`
	Version           int            `json:"version" gorm:"not null;default:1"`
	CreatedAt         time.Time      `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt         time.Time      `json:"updatedAt" gorm:"autoUpdateTime"`
	DeletedAt         gorm.DeletedAt `json:"deletedAt,omitempty" gorm:"index"`

	Company *Company `json:"-" gorm:"foreignKey:CompanyID"`
}

// TableName задаёт имя таблицы для GORM
func (Property) TableName() string {
	return "properties"
}

// Module представляет раздел консоли, на который документы
// ссылаются в качестве полиморфной области видимости
type Module struct {
	ID        int64          `json:"id" gorm:"primaryKey;autoIncrement"`
	UUID      string         `json:"uuid" gorm:"type:varchar(36);uniqueIndex"`
	Name      string         `json:"name" gorm:"type:varchar(100);not null;uniqueIndex"`
	CreatedAt time.Time      `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt time.Time      `json:"updatedAt" gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `json:"deletedAt,omitempty" gorm:"index"`
}

// TableName задаёт имя таблицы для GORM
func (Module) TableName() string {
	return "modules"
}

// Document представляет файл, привязанный к произвольной сущности
// через полиморфную пару (RefID, ModuleID)
type Document struct {
	ID          int64          `json:"id" gorm:"primaryKey;autoIncrement"`
	UUID        string         `json:"uuid" gorm:"type:varchar(36);uniqueIndex"`
	CompanyID   int64          `json:"companyId" gorm:"not null;index"`
	RefID       int64          `json:"refId" gorm:"not null;index:idx_documents_ref"`
	ModuleID    int64          `json:"moduleId" gorm:"not null;index:idx_documents_ref"`
	Name        string         `json:"name" gorm:"type:varchar(300);not null"`
	Description string         `json:"description" gorm:"type:varchar(500)"`
	Path        string         `json:"path" gorm:"type:varchar(500);not null"`
	FileType    string         `json:"fileType" gorm:"type:varchar(100)"`
	FileSize    int64          `json:"fileSize" gorm:"not null;default:0"`
	Version     int            `json:"version" gorm:"not null;default:1"`
	CreatedAt   time.Time      `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt   time.Time      `json:"updatedAt" gorm:"autoUpdateTime"`
	DeletedAt   gorm.DeletedAt `json:"deletedAt,omitempty" gorm:"index"`

	Company *Company `json:"-" gorm:"foreignKey:CompanyID"`
	Module  *Module  `json:"-" gorm:"foreignKey:ModuleID"`
}

// TableName задаёт имя таблицы для GORM
func (Document) TableName() string {
	return "documents"
}

// User представляет учётную запись оператора консоли
type User struct {
	ID           int64          `json:"id" gorm:"primaryKey;autoIncrement"`
	UUID         string         `json:"uuid" gorm:"type:varchar(36);uniqueIndex"`
	Email        string         `json:"email" gorm:"type:varchar(200);not null;uniqueIndex"`
	PasswordHash string         `json:"-" gorm:"type:varchar(100);not null"`
	Name         string         `json:"name" gorm:"type:varchar(200)"`
	Surname      string         `json:"surname" gorm:"type:varchar(200)"`
	CreatedAt    time.Time      `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt    time.Time      `json:"updatedAt" gorm:"autoUpdateTime"`
	DeletedAt    gorm.DeletedAt `json:"deletedAt,omitempty" gorm:"index"`
}

// TableName задаёт имя таблицы для GORM
func (User) TableName() string {
	return "users"
}
