package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/RenanMEleoterio/BarberPro-sub000/internal/httperr"
	"github.com/RenanMEleoterio/BarberPro-sub000/internal/httpresp"
	"github.com/RenanMEleoterio/BarberPro-sub000/internal/middleware"
	"github.com/RenanMEleoterio/BarberPro-sub000/internal/models"
	"github.com/RenanMEleoterio/BarberPro-sub000/internal/timezone"
)

type BarbershopHandler struct {
	db *gorm.DB
}

func NewBarbershopHandler(db *gorm.DB) *BarbershopHandler {
	return &BarbershopHandler{db: db}
}

type UpdateBarbershopRequest struct {
	Name     *string `json:"name"`
	Phone    *string `json:"phone"`
	Address  *string `json:"address"`
	Timezone *string `json:"timezone"`
}

func (h *BarbershopHandler) GetMeBarbershop(c *gin.Context) {
	p := middleware.Principal(c)
	if !p.Staff() {
		httperr.Forbidden(c, httperr.CodeForbidden, "Acesso restrito.")
		return
	}

	var shop models.Barbershop
	if err := h.db.First(&shop, p.BarbershopID).Error; err != nil {
		httperr.NotFound(c, httperr.CodeNotFound, "Barbearia não encontrada.")
		return
	}

	httpresp.OK(c, shop)
}

func (h *BarbershopHandler) UpdateMeBarbershop(c *gin.Context) {
	p := middleware.Principal(c)
	if p.Role != models.RoleManager {
		httperr.Forbidden(c, httperr.CodeForbidden, "Acesso restrito.")
		return
	}

	var shop models.Barbershop
	if err := h.db.First(&shop, p.BarbershopID).Error; err != nil {
		httperr.NotFound(c, httperr.CodeNotFound, "Barbearia não encontrada.")
		return
	}

	var req UpdateBarbershopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, httperr.CodeValidation, "Dados inválidos.")
		return
	}

	if req.Name != nil {
		shop.Name = *req.Name
	}
	if req.Phone != nil {
		shop.Phone = *req.Phone
	}
	if req.Address != nil {
		shop.Address = *req.Address
	}
	if req.Timezone != nil {
		if !timezone.IsValid(*req.Timezone) {
			httperr.BadRequest(c, httperr.CodeValidation, "Fuso horário inválido.")
			return
		}
		shop.Timezone = *req.Timezone
	}

	if err := h.db.Save(&shop).Error; err != nil {
		httperr.Internal(c, "internal_error", "Erro ao atualizar a barbearia.")
		return
	}

	httpresp.OK(c, shop)
}
