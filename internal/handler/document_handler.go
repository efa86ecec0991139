package handler

import (
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/business-console-api/internal/dto"
	"github.com/business-console-api/internal/service"
)

// Имя раздела производственных единиц в справочнике modules,
// используется маршрутом /local-units/{id}/documents
const localUnitsModule = "local-units"

// Верхняя граница буферизации multipart-формы в памяти
const maxUploadMemory = 32 << 20

// DocumentHandler обрабатывает запросы к документам и справочнику разделов
type DocumentHandler struct {
	base
	docService service.DocumentService
}

// NewDocumentHandler создаёт новый обработчик
func NewDocumentHandler(docService service.DocumentService, logger *slog.Logger) *DocumentHandler {
	return &DocumentHandler{base: newBase(logger), docService: docService}
}

// ListByRef выбирает документы по полиморфной паре (refId, moduleId)
func (h *DocumentHandler) ListByRef(w http.ResponseWriter, r *http.Request) {
	refID, err := h.queryID(r, "refId")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid refId", err.Error())
		return
	}
	moduleID, err := h.queryID(r, "moduleId")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid moduleId", err.Error())
		return
	}

	docs, err := h.docService.ListByRef(r.Context(), refID, moduleID)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, docs)
}

func (h *DocumentHandler) ListByCompany(w http.ResponseWriter, r *http.Request) {
	companyID, err := h.pathID(r, "id")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid company id", err.Error())
		return
	}

	docs, err := h.docService.ListByCompanyID(r.Context(), companyID)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, docs)
}

// ListByLocalUnit выбирает документы производственной единицы,
// раздел разрешается по имени
func (h *DocumentHandler) ListByLocalUnit(w http.ResponseWriter, r *http.Request) {
	unitID, err := h.pathID(r, "id")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid local unit id", err.Error())
		return
	}

	module, err := h.docService.ResolveModuleByName(r.Context(), localUnitsModule)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	docs, err := h.docService.ListByRef(r.Context(), unitID, module.ID)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, docs)
}

func (h *DocumentHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := h.pathID(r, "id")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid document id", err.Error())
		return
	}

	doc, err := h.docService.GetByID(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, doc)
}

// Upload принимает multipart-форму с полями file и description,
// область видимости документа передаётся в строке запроса
func (h *DocumentHandler) Upload(w http.ResponseWriter, r *http.Request) {
	scope := dto.CreateDocumentQuery{}
	var err error
	if scope.CompanyID, err = h.queryID(r, "companyId"); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid companyId", err.Error())
		return
	}
	if scope.RefID, err = h.queryID(r, "refId"); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid refId", err.Error())
		return
	}
	if scope.ModuleID, err = h.queryID(r, "moduleId"); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid moduleId", err.Error())
		return
	}

	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid multipart form", err.Error())
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "file field is required", err.Error())
		return
	}
	defer file.Close()

	upload := &service.DocumentUpload{
		FileName:    header.Filename,
		Description: r.FormValue("description"),
		Content:     file,
	}

	doc, err := h.docService.Upload(r.Context(), &scope, upload)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusCreated, doc)
}

// Rename обновляет имя и описание документа, содержимое не меняется
func (h *DocumentHandler) Rename(w http.ResponseWriter, r *http.Request) {
	id, err := h.pathID(r, "id")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid document id", err.Error())
		return
	}

	var req dto.UpdateDocumentRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	doc, err := h.docService.Rename(r.Context(), id, &req)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, doc)
}

// Download отдаёт бинарное содержимое документа.
// Путь к файлу всегда берётся из свежей записи, а не из снимка клиента
func (h *DocumentHandler) Download(w http.ResponseWriter, r *http.Request) {
	id, err := h.pathID(r, "id")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid document id", err.Error())
		return
	}

	doc, rc, err := h.docService.OpenContent(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}
	defer rc.Close()

	w.Header().Set("Content-Type", doc.FileType)
	w.Header().Set("Content-Length", strconv.FormatInt(doc.FileSize, 10))
	w.Header().Set("Content-Disposition", `attachment; filename="`+doc.Name+`"`)
	w.WriteHeader(http.StatusOK)

	if _, err := io.Copy(w, rc); err != nil {
		h.logger.Error("failed to stream document", slog.Int64("id", id), slog.Any("error", err))
	}
}

func (h *DocumentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := h.pathID(r, "id")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid document id", err.Error())
		return
	}

	if err := h.docService.Delete(r.Context(), id); err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, dto.StatusResponse{Status: "deleted"})
}

// GetModule возвращает раздел справочника по идентификатору
func (h *DocumentHandler) GetModule(w http.ResponseWriter, r *http.Request) {
	id, err := h.pathID(r, "id")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid module id", err.Error())
		return
	}

	module, err := h.docService.GetModuleByID(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, module)
}

// FindModule разрешает раздел справочника по имени из строки запроса
func (h *DocumentHandler) FindModule(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		h.respondError(w, http.StatusBadRequest, "name query parameter is required", "")
		return
	}

	module, err := h.docService.ResolveModuleByName(r.Context(), name)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, module)
}
