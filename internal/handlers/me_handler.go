package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/RenanMEleoterio/BarberPro-sub000/internal/middleware"
	"github.com/RenanMEleoterio/BarberPro-sub000/internal/models"
)

type MeHandler struct {
	db *gorm.DB
}

func NewMeHandler(db *gorm.DB) *MeHandler {
	return &MeHandler{db: db}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	p := middleware.Principal(c)

	var user models.User
	if err := h.db.Preload("Barbershop").First(&user, p.UserID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user_not_found"})
		return
	}

	payload := gin.H{"user": userPayload(&user)}
	if user.BarbershopID != 0 {
		payload["barbershop"] = shopPayload(&user.Barbershop)
	}

	c.JSON(http.StatusOK, payload)
}
