package client_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/business-console-api/pkg/client"
)

func newTestClient(handler http.Handler) (*client.Client, *httptest.Server) {
	server := httptest.NewServer(handler)
	c := client.New(server.URL, client.StaticTokenSource("test-token"))
	return c, server
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func TestBearerHeader(t *testing.T) {
	var gotAuth string
	c, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		writeJSON(w, http.StatusOK, []client.Company{})
	}))
	defer server.Close()

	if _, err := c.Companies().ListAll(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotAuth != "Bearer test-token" {
		t.Errorf("expected bearer header, got %q", gotAuth)
	}
}

func TestEmptyTokenOmitsHeader(t *testing.T) {
	var hasAuth bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, hasAuth = r.Header["Authorization"]
		writeJSON(w, http.StatusOK, []client.Company{})
	}))
	defer server.Close()

	c := client.New(server.URL, client.StaticTokenSource(""))
	if _, err := c.Companies().ListAll(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hasAuth {
		t.Error("expected no authorization header for empty token")
	}
}

func TestAPIError(t *testing.T) {
	c, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "company not found"})
	}))
	defer server.Close()

	_, err := c.Companies().Get(context.Background(), 42)
	if err == nil {
		t.Fatal("expected error for 404 response")
	}

	var apiErr *client.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %T: %v", err, err)
	}
	if apiErr.StatusCode != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", apiErr.StatusCode)
	}
	if !strings.Contains(apiErr.Body, "company not found") {
		t.Errorf("expected server body in error, got %q", apiErr.Body)
	}
}

func TestLogin(t *testing.T) {
	c, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/auth/login" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var payload map[string]string
		json.NewDecoder(r.Body).Decode(&payload)
		if payload["email"] != "admin@example.com" {
			t.Errorf("unexpected email %q", payload["email"])
		}
		writeJSON(w, http.StatusOK, client.LoginResponse{Token: "issued"})
	}))
	defer server.Close()

	resp, err := c.Login(context.Background(), "admin@example.com", "secret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Token != "issued" {
		t.Errorf("expected issued token, got %q", resp.Token)
	}
}

func TestResourcePaths(t *testing.T) {
	var requests []string
	c, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests = append(requests, r.Method+" "+r.URL.Path)
		switch {
		case strings.HasSuffix(r.URL.Path, "/departments") && r.Method == http.MethodGet:
			writeJSON(w, http.StatusOK, []client.Department{})
		case r.Method == http.MethodDelete:
			writeJSON(w, http.StatusOK, client.Status{Status: "deleted"})
		default:
			writeJSON(w, http.StatusOK, client.Department{ID: 7, Name: "Logistics"})
		}
	}))
	defer server.Close()

	ctx := context.Background()
	departments := c.Departments()

	if _, err := departments.List(ctx, 3); err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if _, err := departments.Get(ctx, 7); err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if _, err := departments.Create(ctx, map[string]any{"localUnitId": 3, "name": "Logistics"}); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, err := departments.Update(ctx, 7, map[string]any{"localUnitId": 3, "name": "Logistics EU"}); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if err := departments.Delete(ctx, 7); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	want := []string{
		"GET /local-units/3/departments",
		"GET /departments/7",
		"POST /departments",
		"PUT /departments/7",
		"DELETE /departments/7",
	}
	for i := range want {
		if requests[i] != want[i] {
			t.Errorf("request %d: expected %q, got %q", i, want[i], requests[i])
		}
	}
}

func TestModuleResolutionCached(t *testing.T) {
	var moduleCalls int32
	c, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasPrefix(r.URL.Path, "/modules"):
			atomic.AddInt32(&moduleCalls, 1)
			if got := r.URL.Query().Get("name"); got != "departments" {
				t.Errorf("unexpected module name %q", got)
			}
			writeJSON(w, http.StatusOK, client.Module{ID: 3, Name: "departments"})
		default:
			if got := r.URL.Query().Get("moduleId"); got != "3" {
				t.Errorf("expected resolved moduleId 3, got %q", got)
			}
			writeJSON(w, http.StatusOK, []client.Document{})
		}
	}))
	defer server.Close()

	ctx := context.Background()
	docs := c.Documents()

	for i := 0; i < 3; i++ {
		if _, err := docs.ListByRef(ctx, 10, "departments"); err != nil {
			t.Fatalf("list failed: %v", err)
		}
	}

	// Справочник разделов неизменяем: одно обращение на имя
	if moduleCalls != 1 {
		t.Errorf("expected 1 module lookup, got %d", moduleCalls)
	}
}

func TestDocumentUploadForm(t *testing.T) {
	c, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/modules") {
			writeJSON(w, http.StatusOK, client.Module{ID: 3, Name: "departments"})
			return
		}

		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		q := r.URL.Query()
		if q.Get("companyId") != "1" || q.Get("refId") != "10" || q.Get("moduleId") != "3" {
			t.Errorf("unexpected scope query: %s", r.URL.RawQuery)
		}

		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("failed to parse multipart form: %v", err)
		}
		file, header, err := r.FormFile("file")
		if err != nil {
			t.Fatalf("missing file part: %v", err)
		}
		defer file.Close()
		if header.Filename != "invoice.pdf" {
			t.Errorf("expected invoice.pdf, got %q", header.Filename)
		}
		if got := r.FormValue("description"); got != "Q1 invoice" {
			t.Errorf("expected description, got %q", got)
		}

		writeJSON(w, http.StatusCreated, client.Document{ID: 1, Name: header.Filename})
	}))
	defer server.Close()

	scope := client.DocumentScope{CompanyID: 1, RefID: 10, ModuleName: "departments"}
	doc, err := c.Documents().Upload(context.Background(), scope, "invoice.pdf", "Q1 invoice", strings.NewReader("%PDF-1.4"))
	if err != nil {
		t.Fatalf("upload failed: %v", err)
	}
	if doc.Name != "invoice.pdf" {
		t.Errorf("expected invoice.pdf, got %q", doc.Name)
	}
}

func TestDownloadRefetchesMetadata(t *testing.T) {
	content := []byte("%PDF-1.4 content")
	var metaCalls int
	c, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/documents/5":
			metaCalls++
			writeJSON(w, http.StatusOK, client.Document{ID: 5, Name: "invoice.pdf", FileSize: int64(len(content))})
		case "/documents/5/content":
			w.Header().Set("Content-Type", "application/pdf")
			w.WriteHeader(http.StatusOK)
			w.Write(content)
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer server.Close()

	var buf bytes.Buffer
	doc, err := c.Documents().Download(context.Background(), 5, &buf)
	if err != nil {
		t.Fatalf("download failed: %v", err)
	}

	// Метаданные перечитываются перед скачиванием содержимого
	if metaCalls != 1 {
		t.Errorf("expected 1 metadata fetch, got %d", metaCalls)
	}
	if doc.Name != "invoice.pdf" {
		t.Errorf("expected invoice.pdf, got %q", doc.Name)
	}
	if !bytes.Equal(buf.Bytes(), content) {
		t.Error("downloaded content differs")
	}
}

func TestAssignHRPayload(t *testing.T) {
	var payload map[string]any
	c, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut || r.URL.Path != "/departments/3/hr/9" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		json.NewDecoder(r.Body).Decode(&payload)
		writeJSON(w, http.StatusOK, map[string]any{"id": 1})
	}))
	defer server.Close()

	if err := c.Departments().AssignHR(context.Background(), 3, 9, "2026-01-01", nil); err != nil {
		t.Fatalf("assign failed: %v", err)
	}
	if payload["startDate"] != "2026-01-01" {
		t.Errorf("expected startDate, got %v", payload["startDate"])
	}
	if _, ok := payload["endDate"]; ok {
		t.Error("expected endDate to be omitted for open assignment")
	}
}

func TestBaseURLTrailingSlash(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		writeJSON(w, http.StatusOK, []client.Company{})
	}))
	defer server.Close()

	c := client.New(server.URL+"/", client.StaticTokenSource("tok"))
	if _, err := c.Companies().ListAll(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotPath != "/companies" {
		t.Errorf("expected /companies, got %q", gotPath)
	}
}

func TestAPIErrorMessage(t *testing.T) {
	err := &client.APIError{StatusCode: 409, Status: "409 Conflict", Body: `{"error":"duplicate"}`}
	msg := err.Error()
	if !strings.Contains(msg, "409 Conflict") || !strings.Contains(msg, "duplicate") {
		t.Errorf("unexpected error message %q", msg)
	}
}
