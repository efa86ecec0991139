package handler_test

import (
	"bytes"
	"context"
	"io"
	"sort"
	"time"

	"github.com/business-console-api/internal/domain"
	"github.com/business-console-api/internal/repository"
	"github.com/business-console-api/internal/storage"
)

type mockCompanyRepo struct {
	companies map[int64]*domain.Company
	nextID    int64
}

func newMockCompanyRepo() *mockCompanyRepo {
	return &mockCompanyRepo{companies: make(map[int64]*domain.Company), nextID: 1}
}

func (m *mockCompanyRepo) Create(ctx context.Context, company *domain.Company) error {
	company.ID = m.nextID
	company.CreatedAt = time.Now()
	m.nextID++
	m.companies[company.ID] = company
	return nil
}

func (m *mockCompanyRepo) GetAll(ctx context.Context) ([]domain.Company, error) {
	var result []domain.Company
	for _, c := range m.companies {
		result = append(result, *c)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (m *mockCompanyRepo) GetByID(ctx context.Context, id int64) (*domain.Company, error) {
	if c, ok := m.companies[id]; ok {
		return c, nil
	}
	return nil, domain.ErrCompanyNotFound
}

func (m *mockCompanyRepo) Update(ctx context.Context, company *domain.Company) error {
	m.companies[company.ID] = company
	return nil
}

func (m *mockCompanyRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := m.companies[id]; !ok {
		return domain.ErrCompanyNotFound
	}
	delete(m.companies, id)
	return nil
}

type mockLocalUnitRepo struct {
	units  map[int64]*domain.LocalUnit
	nextID int64
}

func newMockLocalUnitRepo() *mockLocalUnitRepo {
	return &mockLocalUnitRepo{units: make(map[int64]*domain.LocalUnit), nextID: 1}
}

func (m *mockLocalUnitRepo) Create(ctx context.Context, unit *domain.LocalUnit) error {
	unit.ID = m.nextID
	unit.CreatedAt = time.Now()
	m.nextID++
	m.units[unit.ID] = unit
	return nil
}

func (m *mockLocalUnitRepo) GetByCompanyID(ctx context.Context, companyID int64) ([]domain.LocalUnit, error) {
	var result []domain.LocalUnit
	for _, u := range m.units {
		if u.CompanyID == companyID {
			result = append(result, *u)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (m *mockLocalUnitRepo) GetByID(ctx context.Context, id int64) (*domain.LocalUnit, error) {
	if u, ok := m.units[id]; ok {
		return u, nil
	}
	return nil, domain.ErrLocalUnitNotFound
}

func (m *mockLocalUnitRepo) Update(ctx context.Context, unit *domain.LocalUnit) error {
	m.units[unit.ID] = unit
	return nil
}

func (m *mockLocalUnitRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := m.units[id]; !ok {
		return domain.ErrLocalUnitNotFound
	}
	delete(m.units, id)
	return nil
}

type mockDepartmentRepo struct {
	departments map[int64]*domain.Department
	units       *mockLocalUnitRepo
	nextID      int64
}

func newMockDepartmentRepo(units *mockLocalUnitRepo) *mockDepartmentRepo {
	return &mockDepartmentRepo{departments: make(map[int64]*domain.Department), units: units, nextID: 1}
}

func (m *mockDepartmentRepo) Create(ctx context.Context, dept *domain.Department) error {
	dept.ID = m.nextID
	dept.CreatedAt = time.Now()
	m.nextID++
	m.departments[dept.ID] = dept
	return nil
}

func (m *mockDepartmentRepo) GetByLocalUnitID(ctx context.Context, localUnitID int64) ([]domain.Department, error) {
	var result []domain.Department
	for _, d := range m.departments {
		if d.LocalUnitID == localUnitID {
			result = append(result, *d)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (m *mockDepartmentRepo) GetByCompanyID(ctx context.Context, companyID int64) ([]domain.Department, error) {
	var result []domain.Department
	for _, d := range m.departments {
		unit, ok := m.units.units[d.LocalUnitID]
		if ok && unit.CompanyID == companyID {
			result = append(result, *d)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (m *mockDepartmentRepo) GetByID(ctx context.Context, id int64) (*domain.Department, error) {
	if d, ok := m.departments[id]; ok {
		return d, nil
	}
	return nil, domain.ErrDepartmentNotFound
}

func (m *mockDepartmentRepo) Update(ctx context.Context, dept *domain.Department) error {
	m.departments[dept.ID] = dept
	return nil
}

func (m *mockDepartmentRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := m.departments[id]; !ok {
		return domain.ErrDepartmentNotFound
	}
	delete(m.departments, id)
	return nil
}

func (m *mockDepartmentRepo) ExistsByNameAndLocalUnit(ctx context.Context, name string, localUnitID int64, excludeID *int64) (bool, error) {
	for _, d := range m.departments {
		if d.Name == name && d.LocalUnitID == localUnitID {
			if excludeID == nil || d.ID != *excludeID {
				return true, nil
			}
		}
	}
	return false, nil
}

type mockHRRepo struct {
	hrs         map[int64]*domain.HR
	assignments map[int64]*domain.HRDepartment
	nextID      int64
	nextAssign  int64
}

func newMockHRRepo() *mockHRRepo {
	return &mockHRRepo{
		hrs:         make(map[int64]*domain.HR),
		assignments: make(map[int64]*domain.HRDepartment),
		nextID:      1,
		nextAssign:  1,
	}
}

func (m *mockHRRepo) Create(ctx context.Context, hr *domain.HR) error {
	hr.ID = m.nextID
	hr.CreatedAt = time.Now()
	m.nextID++
	m.hrs[hr.ID] = hr
	return nil
}

func (m *mockHRRepo) GetByCompanyID(ctx context.Context, companyID int64) ([]domain.HR, error) {
	var result []domain.HR
	for _, h := range m.hrs {
		if h.CompanyID == companyID {
			result = append(result, *h)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (m *mockHRRepo) GetByID(ctx context.Context, id int64) (*domain.HR, error) {
	if h, ok := m.hrs[id]; ok {
		return h, nil
	}
	return nil, domain.ErrHRNotFound
}

func (m *mockHRRepo) Update(ctx context.Context, hr *domain.HR) error {
	m.hrs[hr.ID] = hr
	return nil
}

func (m *mockHRRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := m.hrs[id]; !ok {
		return domain.ErrHRNotFound
	}
	delete(m.hrs, id)
	return nil
}

func (m *mockHRRepo) CreateAssignment(ctx context.Context, assignment *domain.HRDepartment) error {
	assignment.ID = m.nextAssign
	assignment.CreatedAt = time.Now()
	m.nextAssign++
	m.assignments[assignment.ID] = assignment
	return nil
}

func (m *mockHRRepo) GetOpenAssignment(ctx context.Context, departmentID, hrID int64) (*domain.HRDepartment, error) {
	for _, a := range m.assignments {
		if a.DepartmentID == departmentID && a.HRID == hrID && a.EndDate == nil {
			return a, nil
		}
	}
	return nil, domain.ErrAssignmentNotFound
}

func (m *mockHRRepo) HasAssignments(ctx context.Context, departmentID, hrID int64) (bool, error) {
	for _, a := range m.assignments {
		if a.DepartmentID == departmentID && a.HRID == hrID {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockHRRepo) GetAssignmentsByDepartment(ctx context.Context, departmentID int64) ([]repository.AssignmentRow, error) {
	var result []repository.AssignmentRow
	for _, a := range m.assignments {
		if a.DepartmentID != departmentID {
			continue
		}
		hr, ok := m.hrs[a.HRID]
		if !ok {
			continue
		}
		result = append(result, repository.AssignmentRow{HR: *hr, Assignment: *a})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Assignment.ID < result[j].Assignment.ID })
	return result, nil
}

func (m *mockHRRepo) DeleteAssignment(ctx context.Context, id int64) error {
	if _, ok := m.assignments[id]; !ok {
		return domain.ErrAssignmentNotFound
	}
	delete(m.assignments, id)
	return nil
}

type mockEquipmentRepo struct {
	equipments  map[int64]*domain.Equipment
	departments *mockDepartmentRepo
	nextID      int64
}

func newMockEquipmentRepo(departments *mockDepartmentRepo) *mockEquipmentRepo {
	return &mockEquipmentRepo{equipments: make(map[int64]*domain.Equipment), departments: departments, nextID: 1}
}

func (m *mockEquipmentRepo) Create(ctx context.Context, eq *domain.Equipment) error {
	eq.ID = m.nextID
	eq.CreatedAt = time.Now()
	m.nextID++
	m.equipments[eq.ID] = eq
	return nil
}

func (m *mockEquipmentRepo) GetByDepartmentID(ctx context.Context, departmentID int64) ([]domain.Equipment, error) {
	var result []domain.Equipment
	for _, e := range m.equipments {
		if e.DepartmentID == departmentID {
			result = append(result, *e)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (m *mockEquipmentRepo) GetByCompanyID(ctx context.Context, companyID int64) ([]domain.Equipment, error) {
	var result []domain.Equipment
	for _, e := range m.equipments {
		dept, ok := m.departments.departments[e.DepartmentID]
		if !ok {
			continue
		}
		unit, ok := m.departments.units.units[dept.LocalUnitID]
		if ok && unit.CompanyID == companyID {
			result = append(result, *e)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (m *mockEquipmentRepo) GetByID(ctx context.Context, id int64) (*domain.Equipment, error) {
	if e, ok := m.equipments[id]; ok {
		return e, nil
	}
	return nil, domain.ErrEquipmentNotFound
}

func (m *mockEquipmentRepo) Update(ctx context.Context, eq *domain.Equipment) error {
	m.equipments[eq.ID] = eq
	return nil
}

func (m *mockEquipmentRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := m.equipments[id]; !ok {
		return domain.ErrEquipmentNotFound
	}
	delete(m.equipments, id)
	return nil
}

type mockVehicleRepo struct {
	vehicles map[int64]*domain.Vehicle
	units    *mockLocalUnitRepo
	nextID   int64
}

func newMockVehicleRepo(units *mockLocalUnitRepo) *mockVehicleRepo {
	return &mockVehicleRepo{vehicles: make(map[int64]*domain.Vehicle), units: units, nextID: 1}
}

func (m *mockVehicleRepo) Create(ctx context.Context, vehicle *domain.Vehicle) error {
	vehicle.ID = m.nextID
	vehicle.CreatedAt = time.Now()
	m.nextID++
	m.vehicles[vehicle.ID] = vehicle
	return nil
}

func (m *mockVehicleRepo) GetByLocalUnitID(ctx context.Context, localUnitID int64) ([]domain.Vehicle, error) {
	var result []domain.Vehicle
	for _, v := range m.vehicles {
		if v.LocalUnitID == localUnitID {
			result = append(result, *v)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (m *mockVehicleRepo) GetByCompanyID(ctx context.Context, companyID int64) ([]domain.Vehicle, error) {
	var result []domain.Vehicle
	for _, v := range m.vehicles {
		unit, ok := m.units.units[v.LocalUnitID]
		if ok && unit.CompanyID == companyID {
			result = append(result, *v)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (m *mockVehicleRepo) GetByID(ctx context.Context, id int64) (*domain.Vehicle, error) {
	if v, ok := m.vehicles[id]; ok {
		return v, nil
	}
	return nil, domain.ErrVehicleNotFound
}

func (m *mockVehicleRepo) Update(ctx context.Context, vehicle *domain.Vehicle) error {
	m.vehicles[vehicle.ID] = vehicle
	return nil
}

func (m *mockVehicleRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := m.vehicles[id]; !ok {
		return domain.ErrVehicleNotFound
	}
	delete(m.vehicles, id)
	return nil
}

type mockPropertyRepo struct {
	properties map[int64]*domain.Property
	nextID     int64
}

func newMockPropertyRepo() *mockPropertyRepo {
	return &mockPropertyRepo{properties: make(map[int64]*domain.Property), nextID: 1}
}

func (m *mockPropertyRepo) Create(ctx context.Context, property *domain.Property) error {
	property.ID = m.nextID
	property.CreatedAt = time.Now()
	m.nextID++
	m.properties[property.ID] = property
	return nil
}

func (m *mockPropertyRepo) GetByCompanyID(ctx context.Context, companyID int64) ([]domain.Property, error) {
	var result []domain.Property
	for _, p := range m.properties {
		if p.CompanyID == companyID {
			result = append(result, *p)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (m *mockPropertyRepo) GetByID(ctx context.Context, id int64) (*domain.Property, error) {
	if p, ok := m.properties[id]; ok {
		return p, nil
	}
	return nil, domain.ErrPropertyNotFound
}

func (m *mockPropertyRepo) Update(ctx context.Context, property *domain.Property) error {
	m.properties[property.ID] = property
	return nil
}

func (m *mockPropertyRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := m.properties[id]; !ok {
		return domain.ErrPropertyNotFound
	}
	delete(m.properties, id)
	return nil
}

type mockDocumentRepo struct {
	documents map[int64]*domain.Document
	nextID    int64
}

func newMockDocumentRepo() *mockDocumentRepo {
	return &mockDocumentRepo{documents: make(map[int64]*domain.Document), nextID: 1}
}

func (m *mockDocumentRepo) Create(ctx context.Context, doc *domain.Document) error {
	doc.ID = m.nextID
	doc.CreatedAt = time.Now()
	m.nextID++
	m.documents[doc.ID] = doc
	return nil
}

func (m *mockDocumentRepo) GetByRef(ctx context.Context, refID, moduleID int64) ([]domain.Document, error) {
	var result []domain.Document
	for _, d := range m.documents {
		if d.RefID == refID && d.ModuleID == moduleID {
			result = append(result, *d)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (m *mockDocumentRepo) GetByCompanyID(ctx context.Context, companyID int64) ([]domain.Document, error) {
	var result []domain.Document
	for _, d := range m.documents {
		if d.CompanyID == companyID {
			result = append(result, *d)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (m *mockDocumentRepo) GetByID(ctx context.Context, id int64) (*domain.Document, error) {
	if d, ok := m.documents[id]; ok {
		return d, nil
	}
	return nil, domain.ErrDocumentNotFound
}

func (m *mockDocumentRepo) Update(ctx context.Context, doc *domain.Document) error {
	m.documents[doc.ID] = doc
	return nil
}

func (m *mockDocumentRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := m.documents[id]; !ok {
		return domain.ErrDocumentNotFound
	}
	delete(m.documents, id)
	return nil
}

type mockModuleRepo struct {
	modules map[int64]*domain.Module
}

func newMockModuleRepo() *mockModuleRepo {
	m := &mockModuleRepo{modules: make(map[int64]*domain.Module)}
	names := []string{"companies", "local-units", "departments", "hr", "equipments", "vehicles", "properties"}
	for i, name := range names {
		id := int64(i + 1)
		m.modules[id] = &domain.Module{ID: id, Name: name}
	}
	return m
}

func (m *mockModuleRepo) GetByID(ctx context.Context, id int64) (*domain.Module, error) {
	if mod, ok := m.modules[id]; ok {
		return mod, nil
	}
	return nil, domain.ErrModuleNotFound
}

func (m *mockModuleRepo) GetByName(ctx context.Context, name string) (*domain.Module, error) {
	for _, mod := range m.modules {
		if mod.Name == name {
			return mod, nil
		}
	}
	return nil, domain.ErrModuleNotFound
}

type mockUserRepo struct {
	users map[string]*domain.User
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*domain.User)}
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if u, ok := m.users[email]; ok {
		return u, nil
	}
	return nil, domain.ErrUserNotFound
}

func (m *mockUserRepo) GetByUUID(ctx context.Context, uuid string) (*domain.User, error) {
	for _, u := range m.users {
		if u.UUID == uuid {
			return u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

// memStorage - файловое хранилище в памяти
type memStorage struct {
	files map[string][]byte
}

func newMemStorage() *memStorage {
	return &memStorage{files: make(map[string][]byte)}
}

func (s *memStorage) Save(ctx context.Context, key string, r io.Reader) (int64, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return 0, err
	}
	s.files[key] = data
	return int64(len(data)), nil
}

func (s *memStorage) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	data, ok := s.files[key]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (s *memStorage) Delete(ctx context.Context, key string) error {
	delete(s.files, key)
	return nil
}
