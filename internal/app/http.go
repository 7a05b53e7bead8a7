package app

import (
	"context"
	"crypto/rand"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"pactum/api/internal/contract"
	"pactum/api/internal/export"
	"pactum/api/internal/search"
)

type HTTPServer struct {
	service    *Service
	corsOrigin string
}

func NewHTTPServer(service *Service, corsOrigin string) *HTTPServer {
	return &HTTPServer{service: service, corsOrigin: corsOrigin}
}

func (s *HTTPServer) Handler() http.Handler {
	return s.withMiddleware(http.HandlerFunc(s.handle))
}

func (s *HTTPServer) handle(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodOptions {
		writeJSON(w, http.StatusNoContent, map[string]any{})
		return
	}

	if (r.Method == http.MethodGet || r.Method == http.MethodHead) && r.URL.Path == "/api/health" {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
		return
	}

	if (r.Method == http.MethodGet || r.Method == http.MethodHead) && r.URL.Path == "/api/ready" {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		status := "ready"
		statusCode := http.StatusOK
		checks := map[string]any{
			"database": map[string]any{"status": "ok"},
		}

		if err := s.service.Ping(ctx); err != nil {
			status = "not_ready"
			statusCode = http.StatusServiceUnavailable
			checks["database"] = map[string]any{
				"status": "error",
				"error":  err.Error(),
			}
		}

		writeJSON(w, statusCode, map[string]any{
			"ok":     status == "ready",
			"status": status,
			"checks": checks,
		})
		return
	}

	if r.Method == http.MethodGet && r.URL.Path == "/api/search" {
		q := strings.TrimSpace(r.URL.Query().Get("q"))
		filterType := strings.TrimSpace(r.URL.Query().Get("type"))
		limit := 20
		if raw := strings.TrimSpace(r.URL.Query().Get("limit")); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil {
				writeError(w, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "limit must be an integer", nil)
				return
			}
			limit = parsed
		}
		offset := 0
		if raw := strings.TrimSpace(r.URL.Query().Get("offset")); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil {
				writeError(w, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "offset must be an integer", nil)
				return
			}
			offset = parsed
		}

		payload := s.service.Search(search.Query{
			Text:       q,
			FilterType: search.ResultType(filterType),
			Limit:      limit,
			Offset:     offset,
		})
		writeJSON(w, http.StatusOK, payload)
		return
	}

	if r.Method == http.MethodGet && r.URL.Path == "/api/fields/suggested" {
		writeJSON(w, http.StatusOK, map[string]any{"fields": s.service.SuggestedFields()})
		return
	}

	if r.URL.Path == "/api/contracts" || r.URL.Path == "/api/templates" {
		mode := contract.ModeContract
		if r.URL.Path == "/api/templates" {
			mode = contract.ModeTemplate
		}
		s.handleCollection(w, r, mode)
		return
	}

	if r.URL.Path == "/api/sections" {
		s.handleSectionCollection(w, r)
		return
	}

	parts := splitPath(r.URL.Path)

	if len(parts) >= 3 && parts[0] == "api" && parts[1] == "sections" {
		s.handleSection(w, r, parts[2])
		return
	}

	if len(parts) >= 3 && parts[0] == "api" && (parts[1] == "contracts" || parts[1] == "templates") {
		s.handleContract(w, r, parts)
		return
	}

	writeError(w, http.StatusNotFound, "NOT_FOUND", "Not found", nil)
}

func (s *HTTPServer) handleCollection(w http.ResponseWriter, r *http.Request, mode contract.Mode) {
	if r.Method == http.MethodGet {
		items, err := s.service.ListContracts(r.Context(), mode)
		if err != nil {
			status, code, message, details := mapError(err)
			writeError(w, status, code, message, details)
			return
		}
		key := "contracts"
		if mode == contract.ModeTemplate {
			key = "templates"
		}
		writeJSON(w, http.StatusOK, map[string]any{key: items})
		return
	}

	if r.Method == http.MethodPost {
		var body contract.Document
		if err := decodeBody(r, &body); err != nil {
			writeError(w, http.StatusBadRequest, "INVALID_BODY", err.Error(), nil)
			return
		}
		payload, err := s.service.CreateContract(r.Context(), mode, body)
		if err != nil {
			status, code, message, details := mapError(err)
			writeError(w, status, code, message, details)
			return
		}
		writeJSON(w, http.StatusCreated, payload)
		return
	}

	writeError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
}

func (s *HTTPServer) handleContract(w http.ResponseWriter, r *http.Request, parts []string) {
	contractID := parts[2]

	if len(parts) == 3 {
		switch r.Method {
		case http.MethodGet:
			payload, err := s.service.GetContract(r.Context(), contractID)
			if err != nil {
				status, code, message, details := mapError(err)
				writeError(w, status, code, message, details)
				return
			}
			writeJSON(w, http.StatusOK, payload)
			return
		case http.MethodPut:
			var body contract.Document
			if err := decodeBody(r, &body); err != nil {
				writeError(w, http.StatusBadRequest, "INVALID_BODY", err.Error(), nil)
				return
			}
			payload, err := s.service.UpdateContract(r.Context(), contractID, body, authorName(r))
			if err != nil {
				status, code, message, details := mapError(err)
				writeError(w, status, code, message, details)
				return
			}
			writeJSON(w, http.StatusOK, payload)
			return
		case http.MethodDelete:
			if err := s.service.DeleteContract(r.Context(), contractID); err != nil {
				status, code, message, details := mapError(err)
				writeError(w, status, code, message, details)
				return
			}
			writeJSON(w, http.StatusOK, map[string]any{"ok": true})
			return
		}
		writeError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
		return
	}

	if len(parts) == 4 && parts[3] == "instantiate" && r.Method == http.MethodPost {
		payload, err := s.service.Instantiate(r.Context(), contractID)
		if err != nil {
			status, code, message, details := mapError(err)
			writeError(w, status, code, message, details)
			return
		}
		writeJSON(w, http.StatusCreated, payload)
		return
	}

	if len(parts) == 4 && parts[3] == "preview" && r.Method == http.MethodGet {
		payload, err := s.service.Preview(r.Context(), contractID)
		if err != nil {
			status, code, message, details := mapError(err)
			writeError(w, status, code, message, details)
			return
		}
		writeJSON(w, http.StatusOK, payload)
		return
	}

	if len(parts) == 4 && parts[3] == "export" && r.Method == http.MethodPost {
		var body struct {
			Format string `json:"format"`
		}
		if err := decodeBody(r, &body); err != nil {
			writeError(w, http.StatusBadRequest, "INVALID_BODY", err.Error(), nil)
			return
		}
		format := export.Format(body.Format)
		if format != export.FormatPDF && format != export.FormatDOCX {
			writeError(w, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "format must be 'pdf' or 'docx'", nil)
			return
		}

		result, err := s.service.Export(r.Context(), contractID, format)
		if err != nil {
			status, code, message, details := mapError(err)
			writeError(w, status, code, message, details)
			return
		}

		if result.URL != "" {
			writeJSON(w, http.StatusOK, map[string]any{
				"filename":  result.Filename,
				"objectKey": result.ObjectKey,
				"url":       result.URL,
			})
			return
		}
		w.Header().Set("Content-Disposition", "attachment; filename=\""+result.Filename+"\"")
		w.Header().Set("Content-Type", result.MimeType)
		w.Write(result.Data)
		return
	}

	if len(parts) == 4 && parts[3] == "exports" && r.Method == http.MethodGet {
		items, err := s.service.ListExports(r.Context(), contractID)
		if err != nil {
			status, code, message, details := mapError(err)
			writeError(w, status, code, message, details)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"exports": items})
		return
	}

	if len(parts) == 4 && parts[3] == "sections" && r.Method == http.MethodPost {
		var body struct {
			SectionID string `json:"sectionId"`
		}
		if err := decodeBody(r, &body); err != nil {
			writeError(w, http.StatusBadRequest, "INVALID_BODY", err.Error(), nil)
			return
		}
		if strings.TrimSpace(body.SectionID) == "" {
			writeError(w, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "sectionId is required", nil)
			return
		}
		payload, err := s.service.InsertSection(r.Context(), contractID, body.SectionID, authorName(r))
		if err != nil {
			status, code, message, details := mapError(err)
			writeError(w, status, code, message, details)
			return
		}
		writeJSON(w, http.StatusOK, payload)
		return
	}

	if len(parts) == 4 && parts[3] == "draft" {
		switch r.Method {
		case http.MethodPut:
			var body contract.Document
			if err := decodeBody(r, &body); err != nil {
				writeError(w, http.StatusBadRequest, "INVALID_BODY", err.Error(), nil)
				return
			}
			if err := s.service.SaveDraft(r.Context(), contractID, body); err != nil {
				status, code, message, details := mapError(err)
				writeError(w, status, code, message, details)
				return
			}
			writeJSON(w, http.StatusAccepted, map[string]any{"ok": true})
			return
		case http.MethodGet:
			payload, err := s.service.GetDraft(r.Context(), contractID)
			if err != nil {
				status, code, message, details := mapError(err)
				writeError(w, status, code, message, details)
				return
			}
			writeJSON(w, http.StatusOK, payload)
			return
		case http.MethodDelete:
			if err := s.service.DiscardDraft(r.Context(), contractID); err != nil {
				status, code, message, details := mapError(err)
				writeError(w, status, code, message, details)
				return
			}
			writeJSON(w, http.StatusOK, map[string]any{"ok": true})
			return
		}
		writeError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
		return
	}

	if len(parts) == 4 && parts[3] == "history" && r.Method == http.MethodGet {
		limit := 50
		if raw := strings.TrimSpace(r.URL.Query().Get("limit")); raw != "" {
			if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
				limit = parsed
			}
		}
		payload, err := s.service.History(r.Context(), contractID, limit)
		if err != nil {
			status, code, message, details := mapError(err)
			writeError(w, status, code, message, details)
			return
		}
		writeJSON(w, http.StatusOK, payload)
		return
	}

	if len(parts) == 5 && parts[3] == "history" && r.Method == http.MethodGet {
		payload, err := s.service.HistoryAt(r.Context(), contractID, parts[4])
		if err != nil {
			status, code, message, details := mapError(err)
			writeError(w, status, code, message, details)
			return
		}
		writeJSON(w, http.StatusOK, payload)
		return
	}

	if len(parts) == 4 && parts[3] == "placeholders" && r.Method == http.MethodPost {
		body := struct {
			Name     string `json:"name"`
			Position int    `json:"position"`
		}{Position: -1} // omitted position appends at the end
		if err := decodeBody(r, &body); err != nil {
			writeError(w, http.StatusBadRequest, "INVALID_BODY", err.Error(), nil)
			return
		}
		payload, err := s.service.InsertPlaceholder(r.Context(), contractID, authorName(r), body.Name, body.Position)
		if err != nil {
			status, code, message, details := mapError(err)
			writeError(w, status, code, message, details)
			return
		}
		writeJSON(w, http.StatusOK, payload)
		return
	}

	if len(parts) >= 4 && parts[3] == "fields" {
		s.handleFieldOps(w, r, contractID, parts)
		return
	}

	if len(parts) >= 4 && parts[3] == "parties" {
		s.handlePartyOps(w, r, contractID, parts)
		return
	}

	writeError(w, http.StatusNotFound, "NOT_FOUND", "Not found", nil)
}

func (s *HTTPServer) handleFieldOps(w http.ResponseWriter, r *http.Request, contractID string, parts []string) {
	if len(parts) == 4 && r.Method == http.MethodPost {
		var body contract.Field
		if err := decodeBody(r, &body); err != nil {
			writeError(w, http.StatusBadRequest, "INVALID_BODY", err.Error(), nil)
			return
		}
		payload, err := s.service.AddField(r.Context(), contractID, authorName(r), body)
		if err != nil {
			status, code, message, details := mapError(err)
			writeError(w, status, code, message, details)
			return
		}
		writeJSON(w, http.StatusOK, payload)
		return
	}

	if len(parts) == 5 {
		index, err := strconv.Atoi(parts[4])
		if err != nil {
			writeError(w, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "field index must be an integer", nil)
			return
		}
		switch r.Method {
		case http.MethodPut:
			var body contract.Field
			if err := decodeBody(r, &body); err != nil {
				writeError(w, http.StatusBadRequest, "INVALID_BODY", err.Error(), nil)
				return
			}
			payload, err := s.service.UpdateField(r.Context(), contractID, authorName(r), index, body)
			if err != nil {
				status, code, message, details := mapError(err)
				writeError(w, status, code, message, details)
				return
			}
			writeJSON(w, http.StatusOK, payload)
			return
		case http.MethodDelete:
			payload, err := s.service.RemoveField(r.Context(), contractID, authorName(r), index)
			if err != nil {
				status, code, message, details := mapError(err)
				writeError(w, status, code, message, details)
				return
			}
			writeJSON(w, http.StatusOK, payload)
			return
		}
	}

	writeError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
}

func (s *HTTPServer) handlePartyOps(w http.ResponseWriter, r *http.Request, contractID string, parts []string) {
	if len(parts) == 4 && r.Method == http.MethodPost {
		var body struct {
			Type contract.PartyType `json:"type"`
		}
		if err := decodeBody(r, &body); err != nil {
			writeError(w, http.StatusBadRequest, "INVALID_BODY", err.Error(), nil)
			return
		}
		if body.Type == "" {
			body.Type = contract.PartyCompany
		}
		payload, err := s.service.AddParty(r.Context(), contractID, authorName(r), body.Type)
		if err != nil {
			status, code, message, details := mapError(err)
			writeError(w, status, code, message, details)
			return
		}
		writeJSON(w, http.StatusOK, payload)
		return
	}

	if len(parts) == 5 {
		partyID := parts[4]
		switch r.Method {
		case http.MethodPut:
			var body struct {
				Name string             `json:"name"`
				Type contract.PartyType `json:"type"`
			}
			if err := decodeBody(r, &body); err != nil {
				writeError(w, http.StatusBadRequest, "INVALID_BODY", err.Error(), nil)
				return
			}
			payload, err := s.service.UpdateParty(r.Context(), contractID, authorName(r), partyID, body.Name, body.Type)
			if err != nil {
				status, code, message, details := mapError(err)
				writeError(w, status, code, message, details)
				return
			}
			writeJSON(w, http.StatusOK, payload)
			return
		case http.MethodDelete:
			payload, err := s.service.RemoveParty(r.Context(), contractID, authorName(r), partyID)
			if err != nil {
				status, code, message, details := mapError(err)
				writeError(w, status, code, message, details)
				return
			}
			writeJSON(w, http.StatusOK, payload)
			return
		}
	}

	if len(parts) == 6 && parts[5] == "fields" && r.Method == http.MethodPost {
		payload, err := s.service.AddPartyField(r.Context(), contractID, authorName(r), parts[4])
		if err != nil {
			status, code, message, details := mapError(err)
			writeError(w, status, code, message, details)
			return
		}
		writeJSON(w, http.StatusOK, payload)
		return
	}

	if len(parts) == 7 && parts[5] == "fields" {
		partyID := parts[4]
		index, err := strconv.Atoi(parts[6])
		if err != nil {
			writeError(w, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "field index must be an integer", nil)
			return
		}
		switch r.Method {
		case http.MethodPut:
			var body contract.PartyField
			if err := decodeBody(r, &body); err != nil {
				writeError(w, http.StatusBadRequest, "INVALID_BODY", err.Error(), nil)
				return
			}
			payload, err := s.service.UpdatePartyField(r.Context(), contractID, authorName(r), partyID, index, body)
			if err != nil {
				status, code, message, details := mapError(err)
				writeError(w, status, code, message, details)
				return
			}
			writeJSON(w, http.StatusOK, payload)
			return
		case http.MethodDelete:
			payload, err := s.service.RemovePartyField(r.Context(), contractID, authorName(r), partyID, index)
			if err != nil {
				status, code, message, details := mapError(err)
				writeError(w, status, code, message, details)
				return
			}
			writeJSON(w, http.StatusOK, payload)
			return
		}
	}

	writeError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
}

func (s *HTTPServer) handleSectionCollection(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet {
		items, err := s.service.ListSections(r.Context())
		if err != nil {
			status, code, message, details := mapError(err)
			writeError(w, status, code, message, details)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"sections": items})
		return
	}

	if r.Method == http.MethodPost {
		var body struct {
			Title   string           `json:"title"`
			Content string           `json:"content"`
			Fields  []contract.Field `json:"fields"`
		}
		if err := decodeBody(r, &body); err != nil {
			writeError(w, http.StatusBadRequest, "INVALID_BODY", err.Error(), nil)
			return
		}
		payload, err := s.service.CreateSection(r.Context(), body.Title, body.Content, body.Fields)
		if err != nil {
			status, code, message, details := mapError(err)
			writeError(w, status, code, message, details)
			return
		}
		writeJSON(w, http.StatusCreated, payload)
		return
	}

	writeError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
}

func (s *HTTPServer) handleSection(w http.ResponseWriter, r *http.Request, sectionID string) {
	switch r.Method {
	case http.MethodGet:
		payload, err := s.service.GetSection(r.Context(), sectionID)
		if err != nil {
			status, code, message, details := mapError(err)
			writeError(w, status, code, message, details)
			return
		}
		writeJSON(w, http.StatusOK, payload)
		return
	case http.MethodPut:
		var body struct {
			Title   string           `json:"title"`
			Content string           `json:"content"`
			Fields  []contract.Field `json:"fields"`
		}
		if err := decodeBody(r, &body); err != nil {
			writeError(w, http.StatusBadRequest, "INVALID_BODY", err.Error(), nil)
			return
		}
		payload, err := s.service.UpdateSection(r.Context(), sectionID, body.Title, body.Content, body.Fields)
		if err != nil {
			status, code, message, details := mapError(err)
			writeError(w, status, code, message, details)
			return
		}
		writeJSON(w, http.StatusOK, payload)
		return
	case http.MethodDelete:
		if err := s.service.DeleteSection(r.Context(), sectionID); err != nil {
			status, code, message, details := mapError(err)
			writeError(w, status, code, message, details)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
		return
	}
	writeError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
}

func (s *HTTPServer) withMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = randomRequestID()
		}
		ctx := context.WithValue(r.Context(), requestIDKey{}, requestID)
		r = r.WithContext(ctx)

		started := time.Now()
		writer := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		setCORSHeaders(writer.Header(), s.corsOrigin)
		writer.Header().Set("X-Request-ID", requestID)

		next.ServeHTTP(writer, r)

		log.Printf(`{"request_id":"%s","method":"%s","path":"%s","status":%d,"duration_ms":%d}`,
			requestID,
			r.Method,
			r.URL.Path,
			writer.status,
			time.Since(started).Milliseconds(),
		)
	})
}

type requestIDKey struct{}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func randomRequestID() string {
	buf := make([]byte, 8)
	_, _ = rand.Read(buf)
	return hex.EncodeToString(buf)
}

func setCORSHeaders(header http.Header, corsOrigin string) {
	header.Set("Access-Control-Allow-Origin", corsOrigin)
	header.Set("Access-Control-Allow-Headers", "Content-Type, X-Author, X-Request-ID")
	header.Set("Access-Control-Allow-Methods", "GET,POST,PUT,DELETE,OPTIONS")
	header.Set("Cache-Control", "no-store")
	header.Set("Content-Type", "application/json")
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, code, message string, details any) {
	response := map[string]any{
		"code":  code,
		"error": message,
	}
	if details != nil {
		response["details"] = details
	}
	writeJSON(w, status, response)
}

func decodeBody(r *http.Request, target any) error {
	if r.Body == nil {
		return nil
	}
	defer r.Body.Close()
	decoder := json.NewDecoder(r.Body)
	if err := decoder.Decode(target); err != nil {
		if errors.Is(err, http.ErrBodyReadAfterClose) {
			return nil
		}
		return fmt.Errorf("invalid JSON body")
	}
	return nil
}

func authorName(r *http.Request) string {
	return strings.TrimSpace(r.Header.Get("X-Author"))
}

func splitPath(path string) []string {
	trimmed := strings.Trim(path, "/")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "/")
}

func mapError(err error) (status int, code, message string, details any) {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Status, domainErr.Code, domainErr.Message, domainErr.Details
	}
	if errors.Is(err, sql.ErrNoRows) {
		return http.StatusNotFound, "NOT_FOUND", "Not found", nil
	}
	return http.StatusInternalServerError, "SERVER_ERROR", "Server error", nil
}
