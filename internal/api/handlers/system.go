package handlers

import (
	"net/http"

	"github.com/dom/floricola-erp/internal/api/respond"
	"github.com/dom/floricola-erp/internal/service"
)

type SystemHandler struct {
	schemaService *service.SchemaService
}

func NewSystemHandler(schemaService *service.SchemaService) *SystemHandler {
	return &SystemHandler{schemaService: schemaService}
}

type HealthResponse struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
}

type InitResponse struct {
	OK  bool   `json:"ok"`
	Msg string `json:"msg"`
}

func (h *SystemHandler) Health(w http.ResponseWriter, r *http.Request) {
	respond.OK(w, HealthResponse{OK: true, Message: "Backend funcionando"})
}

func (h *SystemHandler) InitClientes(w http.ResponseWriter, r *http.Request) {
	if err := h.schemaService.InitClientes(r.Context()); err != nil {
		writeError(w, err, "Error creando tabla clientes")
		return
	}
	respond.OK(w, InitResponse{OK: true, Msg: "Tabla clientes lista"})
}

func (h *SystemHandler) InitUsers(w http.ResponseWriter, r *http.Request) {
	if err := h.schemaService.InitUsers(r.Context()); err != nil {
		writeError(w, err, "Error creando tabla users")
		return
	}
	respond.OK(w, InitResponse{OK: true, Msg: "Tabla users lista"})
}
