package controllers

import (
	"context"
	"net/http"
	"time"

	"resortpay/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type TransactionStore interface {
	List(ctx context.Context) ([]models.Transaction, error)
	ListByGuest(ctx context.Context, huespedID string) ([]models.Transaction, error)
	Create(ctx context.Context, tx models.Transaction) (primitive.ObjectID, error)
}

type TransactionController struct {
	store TransactionStore
	now   func() time.Time
}

func NewTransactionController(store TransactionStore) *TransactionController {
	return &TransactionController{store: store, now: utcNow}
}

// ListTransactions - GET /api/transacciones, más recientes primero
func (h *TransactionController) ListTransactions(c *gin.Context) {
	txs, err := h.store.List(c.Request.Context())
	if err != nil {
		respondStorageError(c, err, "", "Error al obtener transacciones")
		return
	}
	c.JSON(http.StatusOK, nonNilTransactions(txs))
}

// ListGuestTransactions - GET /api/transacciones/huesped/:huespedId
func (h *TransactionController) ListGuestTransactions(c *gin.Context) {
	huespedID, ok := parseObjectID(c, "huespedId")
	if !ok {
		return
	}

	txs, err := h.store.ListByGuest(c.Request.Context(), huespedID.Hex())
	if err != nil {
		respondStorageError(c, err, "", "Error al obtener transacciones del huésped")
		return
	}
	c.JSON(http.StatusOK, nonNilTransactions(txs))
}

// CreateTransaction - POST /api/transacciones. fecha la pone el servidor;
// no se comprueba que el huésped exista.
func (h *TransactionController) CreateTransaction(c *gin.Context) {
	var input models.TransactionInput
	if err := decodeBody(c, &input, models.TransactionProtectedFields); err != nil {
		respondBodyError(c, err)
		return
	}

	id, err := h.store.Create(c.Request.Context(), input.NewTransaction(h.now()))
	if err != nil {
		respondStorageError(c, err, "", "Error al registrar transacción")
		return
	}

	c.JSON(http.StatusCreated, models.WriteResponse{
		Success: true,
		ID:      id.Hex(),
		Message: "Transacción registrada exitosamente",
	})
}

func nonNilTransactions(txs []models.Transaction) []models.Transaction {
	if txs == nil {
		return []models.Transaction{}
	}
	return txs
}
