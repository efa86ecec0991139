package handler_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/business-console-api/internal/auth"
	"github.com/business-console-api/internal/domain"
	"github.com/business-console-api/internal/dto"
	"github.com/business-console-api/internal/handler"
	"github.com/business-console-api/internal/service"
)

const (
	testEmail    = "admin@example.com"
	testPassword = "secret123"

	departmentsModuleID = 3
)

type testServer struct {
	server  *httptest.Server
	token   string
	storage *memStorage
}

func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	tokens := auth.NewTokenManager("test-secret", time.Hour)

	companyRepo := newMockCompanyRepo()
	unitRepo := newMockLocalUnitRepo()
	deptRepo := newMockDepartmentRepo(unitRepo)
	hrRepo := newMockHRRepo()
	equipmentRepo := newMockEquipmentRepo(deptRepo)
	vehicleRepo := newMockVehicleRepo(unitRepo)
	propertyRepo := newMockPropertyRepo()
	docRepo := newMockDocumentRepo()
	moduleRepo := newMockModuleRepo()
	userRepo := newMockUserRepo()
	files := newMemStorage()

	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	user := &domain.User{
		ID:           1,
		UUID:         "8b5a1f8e-1111-4a61-9fd0-000000000001",
		Email:        testEmail,
		PasswordHash: string(hash),
		Name:         "Test",
		Surname:      "Admin",
	}
	userRepo.users[user.Email] = user

	token, _, err := tokens.Issue(user)
	if err != nil {
		t.Fatalf("failed to issue token: %v", err)
	}

	companyService := service.NewCompanyService(companyRepo)
	unitService := service.NewLocalUnitService(unitRepo, companyRepo, propertyRepo)
	deptService := service.NewDepartmentService(deptRepo, unitRepo, hrRepo)
	hrService := service.NewHRService(hrRepo, companyRepo)
	equipmentService := service.NewEquipmentService(equipmentRepo, deptRepo)
	vehicleService := service.NewVehicleService(vehicleRepo, unitRepo, hrRepo)
	propertyService := service.NewPropertyService(propertyRepo, companyRepo)
	docService := service.NewDocumentService(docRepo, moduleRepo, companyRepo, files)
	authService := service.NewAuthService(userRepo, tokens)

	router := handler.NewRouter(
		tokens,
		handler.NewAuthHandler(authService, logger),
		handler.NewCompanyHandler(companyService, logger),
		handler.NewLocalUnitHandler(unitService, logger),
		handler.NewDepartmentHandler(deptService, logger),
		handler.NewHRHandler(hrService, logger),
		handler.NewEquipmentHandler(equipmentService, logger),
		handler.NewVehicleHandler(vehicleService, logger),
		handler.NewPropertyHandler(propertyService, logger),
		handler.NewDocumentHandler(docService, logger),
		logger,
	)

	ts := &testServer{
		server:  httptest.NewServer(router.Setup()),
		token:   token,
		storage: files,
	}
	t.Cleanup(ts.server.Close)
	return ts
}

func (ts *testServer) do(t *testing.T, method, path string, body io.Reader, contentType string) (*http.Response, []byte) {
	t.Helper()

	req, err := http.NewRequest(method, ts.server.URL+path, body)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if ts.token != "" {
		req.Header.Set("Authorization", "Bearer "+ts.token)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("request %s %s failed: %v", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read response body: %v", err)
	}
	return resp, data
}

func (ts *testServer) doJSON(t *testing.T, method, path string, payload any) (int, []byte) {
	t.Helper()

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("failed to marshal payload: %v", err)
		}
		body = bytes.NewReader(data)
	}
	resp, data := ts.do(t, method, path, body, "application/json")
	return resp.StatusCode, data
}

func mustUnmarshal(t *testing.T, data []byte, out any) {
	t.Helper()
	if err := json.Unmarshal(data, out); err != nil {
		t.Fatalf("failed to unmarshal %s: %v", data, err)
	}
}

func (ts *testServer) createCompany(t *testing.T, name string) domain.Company {
	t.Helper()

	status, data := ts.doJSON(t, http.MethodPost, "/companies", map[string]any{"name": name})
	if status != http.StatusCreated {
		t.Fatalf("expected 201 creating company, got %d: %s", status, data)
	}
	var company domain.Company
	mustUnmarshal(t, data, &company)
	return company
}

func (ts *testServer) createLocalUnit(t *testing.T, companyID int64, name string) domain.LocalUnit {
	t.Helper()

	status, data := ts.doJSON(t, http.MethodPost, "/local-units", map[string]any{
		"companyId": companyID,
		"name":      name,
	})
	if status != http.StatusCreated {
		t.Fatalf("expected 201 creating local unit, got %d: %s", status, data)
	}
	var unit domain.LocalUnit
	mustUnmarshal(t, data, &unit)
	return unit
}

func (ts *testServer) createDepartment(t *testing.T, localUnitID int64, name string) domain.Department {
	t.Helper()

	status, data := ts.doJSON(t, http.MethodPost, "/departments", map[string]any{
		"localUnitId": localUnitID,
		"name":        name,
	})
	if status != http.StatusCreated {
		t.Fatalf("expected 201 creating department, got %d: %s", status, data)
	}
	var dept domain.Department
	mustUnmarshal(t, data, &dept)
	return dept
}

func (ts *testServer) createHR(t *testing.T, companyID int64, name, surname string) domain.HR {
	t.Helper()

	status, data := ts.doJSON(t, http.MethodPost, "/hr", map[string]any{
		"companyId": companyID,
		"name":      name,
		"surname":   surname,
	})
	if status != http.StatusCreated {
		t.Fatalf("expected 201 creating hr, got %d: %s", status, data)
	}
	var hr domain.HR
	mustUnmarshal(t, data, &hr)
	return hr
}

func TestHealth(t *testing.T) {
	ts := setupTestServer(t)
	ts.token = ""

	resp, data := ts.do(t, http.MethodGet, "/health", nil, "")
	if resp.StatusCode != http.StatusOK {
		t.Errorf("expected 200, got %d", resp.StatusCode)
	}
	if !strings.Contains(string(data), "ok") {
		t.Errorf("unexpected health body: %s", data)
	}
}

func TestAuthRequired(t *testing.T) {
	ts := setupTestServer(t)

	ts.token = ""
	resp, _ := ts.do(t, http.MethodGet, "/companies", nil, "")
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("expected 401 without token, got %d", resp.StatusCode)
	}

	ts.token = "not-a-valid-token"
	resp, _ = ts.do(t, http.MethodGet, "/companies", nil, "")
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("expected 401 with invalid token, got %d", resp.StatusCode)
	}
}

func TestLogin(t *testing.T) {
	ts := setupTestServer(t)
	ts.token = ""

	status, data := ts.doJSON(t, http.MethodPost, "/auth/login", map[string]any{
		"email":    testEmail,
		"password": testPassword,
	})
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", status, data)
	}

	var login dto.LoginResponse
	mustUnmarshal(t, data, &login)
	if login.Token == "" {
		t.Error("expected non-empty token")
	}
	if login.ExpiresAt.Before(time.Now()) {
		t.Error("expected expiry in the future")
	}

	// Выданный токен должен открывать защищённые маршруты
	ts.token = login.Token
	resp, _ := ts.do(t, http.MethodGet, "/companies", nil, "")
	if resp.StatusCode != http.StatusOK {
		t.Errorf("expected 200 with issued token, got %d", resp.StatusCode)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	ts := setupTestServer(t)
	ts.token = ""

	status, _ := ts.doJSON(t, http.MethodPost, "/auth/login", map[string]any{
		"email":    testEmail,
		"password": "wrong",
	})
	if status != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", status)
	}

	status, _ = ts.doJSON(t, http.MethodPost, "/auth/login", map[string]any{
		"email":    "nobody@example.com",
		"password": testPassword,
	})
	if status != http.StatusUnauthorized {
		t.Errorf("expected 401 for unknown user, got %d", status)
	}
}

func TestCompanyCRUD(t *testing.T) {
	ts := setupTestServer(t)

	company := ts.createCompany(t, "Acme")
	if company.ID == 0 {
		t.Fatal("expected company id to be set")
	}
	if company.UUID == "" {
		t.Error("expected company uuid to be set")
	}

	status, data := ts.doJSON(t, http.MethodGet, fmt.Sprintf("/companies/%d", company.ID), nil)
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	var fetched domain.Company
	mustUnmarshal(t, data, &fetched)
	if fetched.Name != "Acme" {
		t.Errorf("expected name Acme, got %q", fetched.Name)
	}

	// PUT заменяет запись целиком: пропущенные поля обнуляются
	status, data = ts.doJSON(t, http.MethodPut, fmt.Sprintf("/companies/%d", company.ID), map[string]any{
		"name":    "Acme Corp",
		"address": "Via Roma 1",
	})
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", status, data)
	}
	var updated domain.Company
	mustUnmarshal(t, data, &updated)
	if updated.Name != "Acme Corp" {
		t.Errorf("expected updated name, got %q", updated.Name)
	}
	if updated.Address != "Via Roma 1" {
		t.Errorf("expected updated address, got %q", updated.Address)
	}

	status, data = ts.doJSON(t, http.MethodDelete, fmt.Sprintf("/companies/%d", company.ID), nil)
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	var del dto.StatusResponse
	mustUnmarshal(t, data, &del)
	if del.Status != "deleted" {
		t.Errorf("expected status deleted, got %q", del.Status)
	}

	status, _ = ts.doJSON(t, http.MethodGet, fmt.Sprintf("/companies/%d", company.ID), nil)
	if status != http.StatusNotFound {
		t.Errorf("expected 404 after delete, got %d", status)
	}
}

func TestCompanyNotFound(t *testing.T) {
	ts := setupTestServer(t)

	status, _ := ts.doJSON(t, http.MethodGet, "/companies/999", nil)
	if status != http.StatusNotFound {
		t.Errorf("expected 404, got %d", status)
	}
}

func TestDepartmentLifecycle(t *testing.T) {
	ts := setupTestServer(t)

	company := ts.createCompany(t, "Acme")
	unit := ts.createLocalUnit(t, company.ID, "Main plant")
	dept := ts.createDepartment(t, unit.ID, "Logistics")

	status, data := ts.doJSON(t, http.MethodGet, fmt.Sprintf("/local-units/%d/departments", unit.ID), nil)
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	var list []domain.Department
	mustUnmarshal(t, data, &list)
	if len(list) != 1 {
		t.Fatalf("expected 1 department, got %d", len(list))
	}
	if list[0].Name != "Logistics" {
		t.Errorf("expected Logistics, got %q", list[0].Name)
	}

	status, data = ts.doJSON(t, http.MethodPut, fmt.Sprintf("/departments/%d", dept.ID), map[string]any{
		"localUnitId": unit.ID,
		"name":        "Logistics EU",
	})
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", status, data)
	}
	var renamed domain.Department
	mustUnmarshal(t, data, &renamed)
	if renamed.Name != "Logistics EU" {
		t.Errorf("expected renamed department, got %q", renamed.Name)
	}
	if renamed.Version != 2 {
		t.Errorf("expected version 2 after update, got %d", renamed.Version)
	}

	status, _ = ts.doJSON(t, http.MethodDelete, fmt.Sprintf("/departments/%d", dept.ID), nil)
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}

	status, data = ts.doJSON(t, http.MethodGet, fmt.Sprintf("/local-units/%d/departments", unit.ID), nil)
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	list = nil
	mustUnmarshal(t, data, &list)
	if len(list) != 0 {
		t.Errorf("expected empty list after delete, got %d", len(list))
	}
}

func TestDepartmentDuplicateName(t *testing.T) {
	ts := setupTestServer(t)

	company := ts.createCompany(t, "Acme")
	unit := ts.createLocalUnit(t, company.ID, "Main plant")
	ts.createDepartment(t, unit.ID, "Logistics")

	status, _ := ts.doJSON(t, http.MethodPost, "/departments", map[string]any{
		"localUnitId": unit.ID,
		"name":        "Logistics",
	})
	if status != http.StatusConflict {
		t.Errorf("expected 409 for duplicate name, got %d", status)
	}
}

func TestDepartmentOrphanLocalUnit(t *testing.T) {
	ts := setupTestServer(t)

	status, _ := ts.doJSON(t, http.MethodPost, "/departments", map[string]any{
		"localUnitId": 999,
		"name":        "Logistics",
	})
	if status != http.StatusNotFound {
		t.Errorf("expected 404 for missing local unit, got %d", status)
	}
}

func TestHRAssignments(t *testing.T) {
	ts := setupTestServer(t)

	company := ts.createCompany(t, "Acme")
	unit := ts.createLocalUnit(t, company.ID, "Main plant")
	dept := ts.createDepartment(t, unit.ID, "Logistics")
	hr := ts.createHR(t, company.ID, "Mario", "Rossi")

	assignPath := fmt.Sprintf("/departments/%d/hr/%d", dept.ID, hr.ID)

	status, data := ts.doJSON(t, http.MethodPut, assignPath, map[string]any{"startDate": "2026-01-01"})
	if status != http.StatusOK {
		t.Fatalf("expected 200 assigning hr, got %d: %s", status, data)
	}

	// Второе открытое назначение той же пары запрещено
	status, _ = ts.doJSON(t, http.MethodPut, assignPath, map[string]any{"startDate": "2026-02-01"})
	if status != http.StatusConflict {
		t.Errorf("expected 409 for second open assignment, got %d", status)
	}

	status, data = ts.doJSON(t, http.MethodGet, fmt.Sprintf("/departments/%d/hr", dept.ID), nil)
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	var roster []dto.HRAssignmentResponse
	mustUnmarshal(t, data, &roster)
	if len(roster) != 1 {
		t.Fatalf("expected 1 assignment, got %d", len(roster))
	}
	if roster[0].Surname != "Rossi" {
		t.Errorf("expected Rossi in roster, got %q", roster[0].Surname)
	}
	if roster[0].EndDate != nil {
		t.Error("expected open assignment")
	}

	// Удаляется только открытое назначение
	status, _ = ts.doJSON(t, http.MethodDelete, assignPath, nil)
	if status != http.StatusOK {
		t.Fatalf("expected 200 removing open assignment, got %d", status)
	}

	status, _ = ts.doJSON(t, http.MethodDelete, assignPath, nil)
	if status != http.StatusNotFound {
		t.Errorf("expected 404 removing absent assignment, got %d", status)
	}
}

func TestHRAssignmentClosedIsImmutable(t *testing.T) {
	ts := setupTestServer(t)

	company := ts.createCompany(t, "Acme")
	unit := ts.createLocalUnit(t, company.ID, "Main plant")
	dept := ts.createDepartment(t, unit.ID, "Logistics")
	hr := ts.createHR(t, company.ID, "Mario", "Rossi")

	assignPath := fmt.Sprintf("/departments/%d/hr/%d", dept.ID, hr.ID)

	status, data := ts.doJSON(t, http.MethodPut, assignPath, map[string]any{
		"startDate": "2025-01-01",
		"endDate":   "2025-06-30",
	})
	if status != http.StatusOK {
		t.Fatalf("expected 200 creating closed assignment, got %d: %s", status, data)
	}

	// Закрытое назначение это история, удалять её нельзя
	status, _ = ts.doJSON(t, http.MethodDelete, assignPath, nil)
	if status != http.StatusConflict {
		t.Errorf("expected 409 removing closed assignment, got %d", status)
	}
}

func TestAssignHRBadDate(t *testing.T) {
	ts := setupTestServer(t)

	company := ts.createCompany(t, "Acme")
	unit := ts.createLocalUnit(t, company.ID, "Main plant")
	dept := ts.createDepartment(t, unit.ID, "Logistics")
	hr := ts.createHR(t, company.ID, "Mario", "Rossi")

	status, _ := ts.doJSON(t, http.MethodPut, fmt.Sprintf("/departments/%d/hr/%d", dept.ID, hr.ID), map[string]any{
		"startDate": "01/01/2026",
	})
	if status != http.StatusBadRequest {
		t.Errorf("expected 400 for bad date format, got %d", status)
	}
}

func pdfContent(size int) []byte {
	content := make([]byte, size)
	copy(content, "%PDF-1.4\n")
	for i := len("%PDF-1.4\n"); i < size; i++ {
		content[i] = 'x'
	}
	return content
}

func (ts *testServer) uploadDocument(t *testing.T, query, fileName, description string, content []byte) (int, []byte) {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", fileName)
	if err != nil {
		t.Fatalf("failed to create form file: %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("failed to write form file: %v", err)
	}
	if description != "" {
		if err := mw.WriteField("description", description); err != nil {
			t.Fatalf("failed to write description field: %v", err)
		}
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("failed to close multipart writer: %v", err)
	}

	resp, data := ts.do(t, http.MethodPost, "/documents?"+query, &buf, mw.FormDataContentType())
	return resp.StatusCode, data
}

func TestDocumentUploadAndDownload(t *testing.T) {
	ts := setupTestServer(t)

	company := ts.createCompany(t, "Acme")
	unit := ts.createLocalUnit(t, company.ID, "Main plant")
	dept := ts.createDepartment(t, unit.ID, "Logistics")

	content := pdfContent(2048)
	query := fmt.Sprintf("companyId=%d&refId=%d&moduleId=%d", company.ID, dept.ID, departmentsModuleID)

	status, data := ts.uploadDocument(t, query, "invoice.pdf", "Q1 invoice", content)
	if status != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", status, data)
	}

	var doc domain.Document
	mustUnmarshal(t, data, &doc)
	if doc.Name != "invoice.pdf" {
		t.Errorf("expected name invoice.pdf, got %q", doc.Name)
	}
	if doc.Description != "Q1 invoice" {
		t.Errorf("expected description, got %q", doc.Description)
	}
	if doc.FileSize != 2048 {
		t.Errorf("expected size 2048, got %d", doc.FileSize)
	}
	if doc.FileType != "application/pdf" {
		t.Errorf("expected application/pdf, got %q", doc.FileType)
	}
	if doc.Version != 1 {
		t.Errorf("expected version 1, got %d", doc.Version)
	}

	status, data = ts.doJSON(t, http.MethodGet, "/documents?"+fmt.Sprintf("refId=%d&moduleId=%d", dept.ID, departmentsModuleID), nil)
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	var list []domain.Document
	mustUnmarshal(t, data, &list)
	if len(list) != 1 {
		t.Fatalf("expected 1 document, got %d", len(list))
	}

	resp, body := ts.do(t, http.MethodGet, fmt.Sprintf("/documents/%d/content", doc.ID), nil, "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 downloading, got %d", resp.StatusCode)
	}
	if !bytes.Equal(body, content) {
		t.Error("downloaded content differs from uploaded")
	}
	if got := resp.Header.Get("Content-Type"); got != "application/pdf" {
		t.Errorf("expected content type application/pdf, got %q", got)
	}
	if got := resp.Header.Get("Content-Disposition"); !strings.Contains(got, "invoice.pdf") {
		t.Errorf("expected filename in disposition, got %q", got)
	}
}

func TestDocumentRename(t *testing.T) {
	ts := setupTestServer(t)

	company := ts.createCompany(t, "Acme")
	unit := ts.createLocalUnit(t, company.ID, "Main plant")
	dept := ts.createDepartment(t, unit.ID, "Logistics")

	query := fmt.Sprintf("companyId=%d&refId=%d&moduleId=%d", company.ID, dept.ID, departmentsModuleID)
	status, data := ts.uploadDocument(t, query, "invoice.pdf", "", pdfContent(512))
	if status != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", status, data)
	}
	var doc domain.Document
	mustUnmarshal(t, data, &doc)

	status, data = ts.doJSON(t, http.MethodPatch, fmt.Sprintf("/documents/%d", doc.ID), map[string]any{
		"name":        "invoice-2026.pdf",
		"description": "renamed",
	})
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", status, data)
	}
	var renamed domain.Document
	mustUnmarshal(t, data, &renamed)
	if renamed.Name != "invoice-2026.pdf" {
		t.Errorf("expected new name, got %q", renamed.Name)
	}
	if renamed.Version != doc.Version+1 {
		t.Errorf("expected version bump, got %d", renamed.Version)
	}
	if renamed.FileSize != doc.FileSize {
		t.Errorf("expected untouched size, got %d", renamed.FileSize)
	}

	// Содержимое после переименования не меняется
	resp, body := ts.do(t, http.MethodGet, fmt.Sprintf("/documents/%d/content", doc.ID), nil, "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if len(body) != 512 {
		t.Errorf("expected 512 bytes, got %d", len(body))
	}
}

func TestDocumentUploadEmptyFile(t *testing.T) {
	ts := setupTestServer(t)

	company := ts.createCompany(t, "Acme")
	unit := ts.createLocalUnit(t, company.ID, "Main plant")
	dept := ts.createDepartment(t, unit.ID, "Logistics")

	query := fmt.Sprintf("companyId=%d&refId=%d&moduleId=%d", company.ID, dept.ID, departmentsModuleID)
	status, _ := ts.uploadDocument(t, query, "empty.txt", "", nil)
	if status != http.StatusBadRequest {
		t.Errorf("expected 400 for empty file, got %d", status)
	}
}

func TestDocumentDelete(t *testing.T) {
	ts := setupTestServer(t)

	company := ts.createCompany(t, "Acme")
	unit := ts.createLocalUnit(t, company.ID, "Main plant")
	dept := ts.createDepartment(t, unit.ID, "Logistics")

	query := fmt.Sprintf("companyId=%d&refId=%d&moduleId=%d", company.ID, dept.ID, departmentsModuleID)
	status, data := ts.uploadDocument(t, query, "invoice.pdf", "", pdfContent(256))
	if status != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", status, data)
	}
	var doc domain.Document
	mustUnmarshal(t, data, &doc)

	status, data = ts.doJSON(t, http.MethodDelete, fmt.Sprintf("/documents/%d", doc.ID), nil)
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	var del dto.StatusResponse
	mustUnmarshal(t, data, &del)
	if del.Status != "deleted" {
		t.Errorf("expected status deleted, got %q", del.Status)
	}

	status, _ = ts.doJSON(t, http.MethodGet, fmt.Sprintf("/documents/%d", doc.ID), nil)
	if status != http.StatusNotFound {
		t.Errorf("expected 404 after delete, got %d", status)
	}

	// Файл в хранилище тоже удалён
	if len(ts.storage.files) != 0 {
		t.Errorf("expected empty storage, got %d files", len(ts.storage.files))
	}
}

func TestModuleLookup(t *testing.T) {
	ts := setupTestServer(t)

	status, data := ts.doJSON(t, http.MethodGet, "/modules/?name=departments", nil)
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", status, data)
	}
	var module domain.Module
	mustUnmarshal(t, data, &module)
	if module.Name != "departments" {
		t.Errorf("expected departments, got %q", module.Name)
	}
	if module.ID != departmentsModuleID {
		t.Errorf("expected id %d, got %d", departmentsModuleID, module.ID)
	}

	status, _ = ts.doJSON(t, http.MethodGet, "/modules/?name=unknown", nil)
	if status != http.StatusNotFound {
		t.Errorf("expected 404 for unknown module, got %d", status)
	}
}

func TestValidationError(t *testing.T) {
	ts := setupTestServer(t)

	status, _ := ts.doJSON(t, http.MethodPost, "/companies", map[string]any{"name": ""})
	if status != http.StatusBadRequest {
		t.Errorf("expected 400 for empty name, got %d", status)
	}
}
