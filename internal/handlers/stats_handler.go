package handlers

import (
	"github.com/gin-gonic/gin"

	domainStats "github.com/RenanMEleoterio/BarberPro-sub000/internal/domain/stats"
	"github.com/RenanMEleoterio/BarberPro-sub000/internal/httperr"
	"github.com/RenanMEleoterio/BarberPro-sub000/internal/httpresp"
	"github.com/RenanMEleoterio/BarberPro-sub000/internal/middleware"
	ucStats "github.com/RenanMEleoterio/BarberPro-sub000/internal/usecase/stats"
)

type StatsHandler struct {
	overviewUC *ucStats.Overview
}

func NewStatsHandler(overviewUC *ucStats.Overview) *StatsHandler {
	return &StatsHandler{overviewUC: overviewUC}
}

// Overview serves GET /stats?period=week|month|quarter|year. Barbers get
// their own numbers, managers the whole barbershop.
func (h *StatsHandler) Overview(c *gin.Context) {
	p := middleware.Principal(c)

	period := domainStats.Period(c.DefaultQuery("period", "week"))

	overview, err := h.overviewUC.Execute(c.Request.Context(), p, period)
	if err != nil {
		httperr.WriteBusiness(c, err, "Não foi possível calcular as estatísticas.")
		return
	}

	httpresp.OK(c, overview)
}
