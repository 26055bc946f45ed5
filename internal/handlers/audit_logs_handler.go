package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/RenanMEleoterio/BarberPro-sub000/internal/httperr"
	"github.com/RenanMEleoterio/BarberPro-sub000/internal/httpresp"
	"github.com/RenanMEleoterio/BarberPro-sub000/internal/middleware"
	"github.com/RenanMEleoterio/BarberPro-sub000/internal/models"
)

type AuditLogsHandler struct {
	db *gorm.DB
}

func NewAuditLogsHandler(db *gorm.DB) *AuditLogsHandler {
	return &AuditLogsHandler{db: db}
}

// List returns the shop's audit trail, newest first. Managers only.
func (h *AuditLogsHandler) List(c *gin.Context) {
	p := middleware.Principal(c)
	if p.Role != models.RoleManager {
		httperr.Forbidden(c, httperr.CodeForbidden, "Acesso restrito.")
		return
	}

	var logs []models.AuditLog
	if err := h.db.
		Where("barbershop_id = ?", p.BarbershopID).
		Order("created_at DESC").
		Limit(200).
		Find(&logs).Error; err != nil {
		httperr.Internal(c, "internal_error", "Erro ao listar auditoria.")
		return
	}

	httpresp.List(c, logs)
}
