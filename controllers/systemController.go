package controllers

import (
	"context"
	"errors"
	"net/http"

	"resortpay/config"
	"resortpay/models"
	"resortpay/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type SystemController struct {
	db      Pinger
	version string
}

func NewSystemController(db Pinger, version string) *SystemController {
	return &SystemController{db: db, version: version}
}

// Root - GET /, no toca la base de datos
func (h *SystemController) Root(c *gin.Context) {
	c.JSON(http.StatusOK, models.InfoResponse{
		Status:  "ok",
		Message: "API Cashless Resort funcionando",
		Version: h.version,
	})
}

// Ping - GET /api/ping
func (h *SystemController) Ping(c *gin.Context) {
	if err := h.db.Ping(c.Request.Context()); err != nil {
		msg := "Error al conectar con MongoDB"
		if errors.Is(err, config.ErrNoDatabase) {
			msg = msgDBUnavailable
		} else {
			utils.LoggerFrom(c.Request.Context()).Error("ping failed", zap.Error(err))
		}
		c.JSON(http.StatusInternalServerError, models.PingResponse{Success: false, Error: msg})
		return
	}

	now := utcNow()
	c.JSON(http.StatusOK, models.PingResponse{
		Success:   true,
		Message:   "Conexión a MongoDB exitosa",
		Timestamp: &now,
	})
}
