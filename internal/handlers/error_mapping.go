package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/diegodonald/saas-barber-sub001/internal/httperr"
)

// writeDomainError traduz os erros do domínio para respostas HTTP.
func writeDomainError(c *gin.Context, err error) {
	var nf httperr.NotFoundError
	var ve httperr.ValidationError
	var ce httperr.ConflictError

	switch {
	case errors.As(err, &nf):
		httperr.NotFound(c, nf.Error(), "Registro não encontrado.")

	case errors.As(err, &ve):
		httperr.BadRequest(c, ve.Code, ve.Message)

	case errors.As(err, &ce):
		httperr.Conflict(c, "time_conflict", ce.Error())

	case httperr.IsBusiness(err, "invalid_state"):
		httperr.BadRequest(c, "invalid_state", "Transição de status não permitida.")

	default:
		httperr.Internal(c, "internal_error", "Erro interno.")
	}
}
