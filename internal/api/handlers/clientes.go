package handlers

import (
	"errors"
	"net/http"

	"github.com/dom/floricola-erp/internal/api/respond"
	"github.com/dom/floricola-erp/internal/domain"
	"github.com/dom/floricola-erp/internal/service"
	"github.com/go-chi/chi/v5"
)

type ClienteHandler struct {
	clienteService *service.ClienteService
}

func NewClienteHandler(clienteService *service.ClienteService) *ClienteHandler {
	return &ClienteHandler{clienteService: clienteService}
}

type CreateClienteRequest struct {
	Nombre string `json:"nombre"`
}

func (h *ClienteHandler) List(w http.ResponseWriter, r *http.Request) {
	clientes, err := h.clienteService.List(r.Context())
	if err != nil {
		writeError(w, err, "Error listando clientes")
		return
	}
	respond.OK(w, clientes)
}

func (h *ClienteHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateClienteRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	cliente, err := h.clienteService.Create(r.Context(), req.Nombre)
	if err != nil {
		if errors.Is(err, domain.ErrMissingFields) {
			respond.Error(w, http.StatusBadRequest, MsgMissingNombre)
			return
		}
		writeError(w, err, "Error creando cliente")
		return
	}
	respond.OK(w, cliente)
}

func (h *ClienteHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.clienteService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err, "Error eliminando cliente")
		return
	}
	respond.OK(w, map[string]bool{"ok": true})
}
