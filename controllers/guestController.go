package controllers

import (
	"context"
	"net/http"
	"time"

	"resortpay/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type GuestStore interface {
	ListActive(ctx context.Context) ([]models.Guest, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Guest, error)
	Create(ctx context.Context, guest models.Guest) (primitive.ObjectID, error)
	Update(ctx context.Context, id primitive.ObjectID, upd models.GuestUpdate, now time.Time) error
	SoftDelete(ctx context.Context, id primitive.ObjectID, now time.Time) error
}

const msgGuestNotFound = "Huésped no encontrado"

type GuestController struct {
	store GuestStore
	now   func() time.Time
}

func NewGuestController(store GuestStore) *GuestController {
	return &GuestController{store: store, now: utcNow}
}

// ListGuests - GET /api/huespedes, solo activos
func (h *GuestController) ListGuests(c *gin.Context) {
	guests, err := h.store.ListActive(c.Request.Context())
	if err != nil {
		respondStorageError(c, err, "", "Error al obtener huéspedes")
		return
	}
	if guests == nil {
		guests = []models.Guest{}
	}
	c.JSON(http.StatusOK, guests)
}

// GetGuest - GET /api/huespedes/:id, incluye huéspedes eliminados
func (h *GuestController) GetGuest(c *gin.Context) {
	id, ok := parseObjectID(c, "id")
	if !ok {
		return
	}

	guest, err := h.store.FindByID(c.Request.Context(), id)
	if err != nil {
		respondStorageError(c, err, msgGuestNotFound, "Error al obtener huésped")
		return
	}
	c.JSON(http.StatusOK, guest)
}

func (h *GuestController) CreateGuest(c *gin.Context) {
	var input models.GuestInput
	if err := decodeBody(c, &input, models.GuestProtectedFields); err != nil {
		respondBodyError(c, err)
		return
	}

	id, err := h.store.Create(c.Request.Context(), input.NewGuest(h.now()))
	if err != nil {
		respondStorageError(c, err, "", "Error al crear huésped")
		return
	}

	c.JSON(http.StatusCreated, models.WriteResponse{
		Success: true,
		ID:      id.Hex(),
		Message: "Huésped creado exitosamente",
	})
}

// UpdateGuest - PUT /api/huespedes/:id. _id del cuerpo se ignora.
func (h *GuestController) UpdateGuest(c *gin.Context) {
	id, ok := parseObjectID(c, "id")
	if !ok {
		return
	}

	var upd models.GuestUpdate
	if err := decodeBody(c, &upd, models.GuestProtectedFields); err != nil {
		respondBodyError(c, err)
		return
	}

	if err := h.store.Update(c.Request.Context(), id, upd, h.now()); err != nil {
		respondStorageError(c, err, msgGuestNotFound, "Error al actualizar huésped")
		return
	}

	c.JSON(http.StatusOK, models.WriteResponse{
		Success: true,
		Message: "Huésped actualizado exitosamente",
	})
}

// DeleteGuest - DELETE /api/huespedes/:id, borrado lógico
func (h *GuestController) DeleteGuest(c *gin.Context) {
	id, ok := parseObjectID(c, "id")
	if !ok {
		return
	}

	if err := h.store.SoftDelete(c.Request.Context(), id, h.now()); err != nil {
		respondStorageError(c, err, msgGuestNotFound, "Error al eliminar huésped")
		return
	}

	c.JSON(http.StatusOK, models.WriteResponse{
		Success: true,
		Message: "Huésped eliminado exitosamente",
	})
}

func utcNow() time.Time {
	return time.Now().UTC()
}
