package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/RenanMEleoterio/BarberPro-sub000/internal/httperr"
	"github.com/RenanMEleoterio/BarberPro-sub000/internal/httpresp"
	"github.com/RenanMEleoterio/BarberPro-sub000/internal/middleware"
	"github.com/RenanMEleoterio/BarberPro-sub000/internal/models"
)

// ServiceHandler is the catalog surface: barbershop-scoped service records
// that bookings may reference for name and price defaults.
type ServiceHandler struct {
	db *gorm.DB
}

func NewServiceHandler(db *gorm.DB) *ServiceHandler {
	return &ServiceHandler{db: db}
}

type ServiceRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	DurationMin int     `json:"duration_min"`
	Price       float64 `json:"price" binding:"required"`
	Active      *bool   `json:"active"`
}

func (h *ServiceHandler) List(c *gin.Context) {
	p := middleware.Principal(c)
	if !p.Staff() {
		httperr.Forbidden(c, httperr.CodeForbidden, "Acesso restrito.")
		return
	}

	var services []models.Service
	if err := h.db.
		Where("barbershop_id = ?", p.BarbershopID).
		Order("name ASC").
		Find(&services).Error; err != nil {
		httperr.Internal(c, "internal_error", "Erro ao listar serviços.")
		return
	}

	httpresp.List(c, services)
}

func (h *ServiceHandler) Create(c *gin.Context) {
	p := middleware.Principal(c)
	if p.Role != models.RoleManager {
		httperr.Forbidden(c, httperr.CodeForbidden, "Acesso restrito.")
		return
	}

	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, httperr.CodeValidation, "Dados inválidos.")
		return
	}

	service := models.Service{
		BarbershopID: p.BarbershopID,
		Name:         req.Name,
		Description:  req.Description,
		DurationMin:  req.DurationMin,
		Price:        req.Price,
		Active:       true,
	}
	if req.Active != nil {
		service.Active = *req.Active
	}

	if err := h.db.Create(&service).Error; err != nil {
		httperr.Internal(c, "internal_error", "Erro ao criar serviço.")
		return
	}

	httpresp.Created(c, service)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	p := middleware.Principal(c)
	if p.Role != models.RoleManager {
		httperr.Forbidden(c, httperr.CodeForbidden, "Acesso restrito.")
		return
	}

	id, err := parseID(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, httperr.CodeValidation, "Identificador inválido.")
		return
	}

	var service models.Service
	if err := h.db.
		Where("id = ? AND barbershop_id = ?", id, p.BarbershopID).
		First(&service).Error; err != nil {
		httperr.NotFound(c, httperr.CodeNotFound, "Serviço não encontrado.")
		return
	}

	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, httperr.CodeValidation, "Dados inválidos.")
		return
	}

	service.Name = req.Name
	service.Description = req.Description
	service.DurationMin = req.DurationMin
	service.Price = req.Price
	if req.Active != nil {
		service.Active = *req.Active
	}

	if err := h.db.Save(&service).Error; err != nil {
		httperr.Internal(c, "internal_error", "Erro ao atualizar serviço.")
		return
	}

	httpresp.OK(c, service)
}
