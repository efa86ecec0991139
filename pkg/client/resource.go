package client

import (
	"context"
	"fmt"
	"net/http"
)

// Resource - обобщённый доступ к одному типу сущностей.
// listPath - формат пути списка в разрезе родителя, например
// "/companies/%d/local-units"; basePath - коллекция для остальных операций
type Resource[T any] struct {
	c        *Client
	basePath string
	listPath string
}

func newResource[T any](c *Client, basePath, listPath string) Resource[T] {
	return Resource[T]{c: c, basePath: basePath, listPath: listPath}
}

// List возвращает сущности в разрезе родителя
func (r Resource[T]) List(ctx context.Context, parentID int64) ([]T, error) {
	var items []T
	path := fmt.Sprintf(r.listPath, parentID)
	if err := r.c.doJSON(ctx, http.MethodGet, path, nil, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Get возвращает сущность по идентификатору
func (r Resource[T]) Get(ctx context.Context, id int64) (*T, error) {
	var item T
	path := fmt.Sprintf("%s/%d", r.basePath, id)
	if err := r.c.doJSON(ctx, http.MethodGet, path, nil, nil, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// Create создаёт сущность, идентификатор родителя входит в payload
func (r Resource[T]) Create(ctx context.Context, payload any) (*T, error) {
	var item T
	if err := r.c.doJSON(ctx, http.MethodPost, r.basePath, nil, payload, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// Update отправляет полный заменяющий набор полей
func (r Resource[T]) Update(ctx context.Context, id int64, payload any) (*T, error) {
	var item T
	path := fmt.Sprintf("%s/%d", r.basePath, id)
	if err := r.c.doJSON(ctx, http.MethodPut, path, nil, payload, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// Delete удаляет сущность
func (r Resource[T]) Delete(ctx context.Context, id int64) error {
	var status Status
	path := fmt.Sprintf("%s/%d", r.basePath, id)
	return r.c.doJSON(ctx, http.MethodDelete, path, nil, nil, &status)
}

// CompanyResource - доступ к компаниям. Компании не имеют родителя,
// список всегда полный
type CompanyResource struct {
	Resource[Company]
}

// ListAll возвращает все компании
func (r CompanyResource) ListAll(ctx context.Context) ([]Company, error) {
	var items []Company
	if err := r.c.doJSON(ctx, http.MethodGet, "/companies", nil, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// List игнорирует идентификатор родителя и возвращает все компании
func (r CompanyResource) List(ctx context.Context, _ int64) ([]Company, error) {
	return r.ListAll(ctx)
}

// Companies возвращает доступ к компаниям
func (c *Client) Companies() CompanyResource {
	return CompanyResource{newResource[Company](c, "/companies", "/companies")}
}

// LocalUnits возвращает доступ к производственным единицам компании
func (c *Client) LocalUnits() Resource[LocalUnit] {
	return newResource[LocalUnit](c, "/local-units", "/companies/%d/local-units")
}

// DepartmentResource - доступ к отделам и назначениям сотрудников
type DepartmentResource struct {
	Resource[Department]
}

// ListByCompany возвращает отделы всех производственных единиц компании
func (r DepartmentResource) ListByCompany(ctx context.Context, companyID int64) ([]Department, error) {
	var items []Department
	path := fmt.Sprintf("/companies/%d/departments", companyID)
	if err := r.c.doJSON(ctx, http.MethodGet, path, nil, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// ListHR возвращает назначения сотрудников отдела
func (r DepartmentResource) ListHR(ctx context.Context, departmentID int64) ([]HRAssignment, error) {
	var items []HRAssignment
	path := fmt.Sprintf("/departments/%d/hr", departmentID)
	if err := r.c.doJSON(ctx, http.MethodGet, path, nil, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// AssignHR назначает сотрудника в отдел. Пустая endDate означает
// открытое назначение
func (r DepartmentResource) AssignHR(ctx context.Context, departmentID, hrID int64, startDate string, endDate *string) error {
	payload := map[string]any{"startDate": startDate}
	if endDate != nil {
		payload["endDate"] = *endDate
	}
	path := fmt.Sprintf("/departments/%d/hr/%d", departmentID, hrID)
	return r.c.doJSON(ctx, http.MethodPut, path, nil, payload, nil)
}

// RemoveHR снимает открытое назначение сотрудника
func (r DepartmentResource) RemoveHR(ctx context.Context, departmentID, hrID int64) error {
	var status Status
	path := fmt.Sprintf("/departments/%d/hr/%d", departmentID, hrID)
	return r.c.doJSON(ctx, http.MethodDelete, path, nil, nil, &status)
}

// Departments возвращает доступ к отделам производственной единицы
func (c *Client) Departments() DepartmentResource {
	return DepartmentResource{newResource[Department](c, "/departments", "/local-units/%d/departments")}
}

// HRRecords возвращает доступ к сотрудникам компании
func (c *Client) HRRecords() Resource[HR] {
	return newResource[HR](c, "/hr", "/companies/%d/hr")
}

// Equipments возвращает доступ к оборудованию отдела
func (c *Client) Equipments() Resource[Equipment] {
	return newResource[Equipment](c, "/equipments", "/departments/%d/equipments")
}

// Vehicles возвращает доступ к транспорту производственной единицы
func (c *Client) Vehicles() Resource[Vehicle] {
	return newResource[Vehicle](c, "/vehicles", "/local-units/%d/vehicles")
}

// Properties возвращает доступ к недвижимости компании
func (c *Client) Properties() Resource[Property] {
	return newResource[Property](c, "/properties", "/companies/%d/properties")
}
