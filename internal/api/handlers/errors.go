package handlers

import (
	"errors"
	"net/http"

	"github.com/dom/floricola-erp/internal/api/respond"
	"github.com/dom/floricola-erp/internal/domain"
)

const (
	MsgInvalidBody        = "Cuerpo de solicitud inválido"
	MsgBodyTooLarge       = "Cuerpo de solicitud demasiado grande"
	MsgMissingCredentials = "Faltan datos (email, password)"
	MsgDuplicateEmail     = "Ese email ya existe"
	MsgInvalidCredentials = "Credenciales incorrectas"
	MsgMissingNombre      = "Falta nombre"
	MsgNombreTooLong      = "Nombre demasiado largo"
	MsgUnauthorized       = "No autorizado"
)

// writeError maps the domain error taxonomy onto status codes. Unclassified
// errors become a 500 carrying fallback.
func writeError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, domain.ErrDuplicateEmail):
		respond.Error(w, http.StatusConflict, MsgDuplicateEmail)
	case errors.Is(err, domain.ErrInvalidCredentials):
		respond.Error(w, http.StatusUnauthorized, MsgInvalidCredentials)
	case errors.Is(err, domain.ErrNombreTooLong):
		respond.Error(w, http.StatusBadRequest, MsgNombreTooLong)
	default:
		respond.Error(w, http.StatusInternalServerError, fallback)
	}
}
