package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"sync"
)

// DocumentScope - полиморфная область видимости документа
type DocumentScope struct {
	CompanyID int64
	RefID     int64
	// ModuleName - имя раздела, например "companies" или "departments".
	// Числовой идентификатор разрешается клиентом
	ModuleName string
}

// DocumentResource - доступ к документам и справочнику разделов
type DocumentResource struct {
	c *Client

	mu      *sync.Mutex
	modules map[string]*Module
}

// Documents возвращает доступ к документам
func (c *Client) Documents() *DocumentResource {
	c.docsOnce.Do(func() {
		c.docs = &DocumentResource{
			c:       c,
			mu:      &sync.Mutex{},
			modules: make(map[string]*Module),
		}
	})
	return c.docs
}

// ResolveModule разрешает раздел по имени. Справочник неизменяем,
// результат кэшируется на время жизни клиента
func (r *DocumentResource) ResolveModule(ctx context.Context, name string) (*Module, error) {
	r.mu.Lock()
	cached, ok := r.modules[name]
	r.mu.Unlock()
	if ok {
		return cached, nil
	}

	var module Module
	query := url.Values{"name": {name}}
	if err := r.c.doJSON(ctx, http.MethodGet, "/modules/", query, nil, &module); err != nil {
		return nil, err
	}

	r.mu.Lock()
	r.modules[name] = &module
	r.mu.Unlock()
	return &module, nil
}

// ListByRef возвращает документы сущности, раздел задаётся именем
func (r *DocumentResource) ListByRef(ctx context.Context, refID int64, moduleName string) ([]Document, error) {
	module, err := r.ResolveModule(ctx, moduleName)
	if err != nil {
		return nil, err
	}

	query := url.Values{
		"refId":    {strconv.FormatInt(refID, 10)},
		"moduleId": {strconv.FormatInt(module.ID, 10)},
	}

	var docs []Document
	if err := r.c.doJSON(ctx, http.MethodGet, "/documents", query, nil, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

// Get возвращает метаданные документа
func (r *DocumentResource) Get(ctx context.Context, id int64) (*Document, error) {
	var doc Document
	path := fmt.Sprintf("/documents/%d", id)
	if err := r.c.doJSON(ctx, http.MethodGet, path, nil, nil, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Upload загружает один файл в область видимости scope
func (r *DocumentResource) Upload(ctx context.Context, scope DocumentScope, fileName, description string, content io.Reader) (*Document, error) {
	module, err := r.ResolveModule(ctx, scope.ModuleName)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	part, err := mw.CreateFormFile("file", fileName)
	if err != nil {
		return nil, fmt.Errorf("failed to build multipart form: %w", err)
	}
	if _, err := io.Copy(part, content); err != nil {
		return nil, fmt.Errorf("failed to buffer file: %w", err)
	}
	if err := mw.WriteField("description", description); err != nil {
		return nil, fmt.Errorf("failed to build multipart form: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize multipart form: %w", err)
	}

	query := url.Values{
		"companyId": {strconv.FormatInt(scope.CompanyID, 10)},
		"refId":     {strconv.FormatInt(scope.RefID, 10)},
		"moduleId":  {strconv.FormatInt(module.ID, 10)},
	}

	var doc Document
	if err := r.c.do(ctx, http.MethodPost, "/documents", query, &buf, mw.FormDataContentType(), &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Rename обновляет имя и описание документа без повторной загрузки файла
func (r *DocumentResource) Rename(ctx context.Context, id int64, name, description string) (*Document, error) {
	payload := map[string]string{"name": name, "description": description}

	var doc Document
	path := fmt.Sprintf("/documents/%d", id)
	if err := r.c.doJSON(ctx, http.MethodPatch, path, nil, payload, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Download скачивает содержимое документа в w. Метаданные сначала
// перечитываются, чтобы не использовать устаревший путь из снимка клиента
func (r *DocumentResource) Download(ctx context.Context, id int64, w io.Writer) (*Document, error) {
	doc, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	path := fmt.Sprintf("/documents/%d/content", doc.ID)
	resp, err := r.c.send(ctx, http.MethodGet, path, nil, nil, "")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if _, err := io.Copy(w, resp.Body); err != nil {
		return nil, fmt.Errorf("failed to download document: %w", err)
	}
	return doc, nil
}

// Delete удаляет документ
func (r *DocumentResource) Delete(ctx context.Context, id int64) error {
	var status Status
	path := fmt.Sprintf("/documents/%d", id)
	return r.c.doJSON(ctx, http.MethodDelete, path, nil, nil, &status)
}
