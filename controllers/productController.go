package controllers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"resortpay/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ProductStore interface {
	ListActive(ctx context.Context, categoria string) ([]models.Product, error)
	Create(ctx context.Context, p models.Product) (primitive.ObjectID, error)
}

type ProductController struct {
	store ProductStore
	now   func() time.Time
}

func NewProductController(store ProductStore) *ProductController {
	return &ProductController{store: store, now: utcNow}
}

// ListProducts - GET /api/productos?categoria=<cat|todos>
func (h *ProductController) ListProducts(c *gin.Context) {
	categoria := strings.TrimSpace(c.Query("categoria"))

	products, err := h.store.ListActive(c.Request.Context(), categoria)
	if err != nil {
		respondStorageError(c, err, "", "Error al obtener productos")
		return
	}
	if products == nil {
		products = []models.Product{}
	}
	c.JSON(http.StatusOK, products)
}

func (h *ProductController) CreateProduct(c *gin.Context) {
	var input models.ProductInput
	if err := decodeBody(c, &input, models.ProductProtectedFields); err != nil {
		respondBodyError(c, err)
		return
	}

	id, err := h.store.Create(c.Request.Context(), input.NewProduct(h.now()))
	if err != nil {
		respondStorageError(c, err, "", "Error al crear producto")
		return
	}

	c.JSON(http.StatusCreated, models.WriteResponse{
		Success: true,
		ID:      id.Hex(),
		Message: "Producto creado exitosamente",
	})
}
