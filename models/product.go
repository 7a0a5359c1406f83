package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Product struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Nombre    string             `bson:"nombre" json:"nombre"`
	Precio    float64            `bson:"precio" json:"precio"`
	Categoria string             `bson:"categoria" json:"categoria"`
	Icono     string             `bson:"icono" json:"icono"`
	Activo    bool               `bson:"activo" json:"activo"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// ProductInput - cuerpo de POST /api/productos
type ProductInput struct {
	Nombre    string   `json:"nombre" binding:"required"`
	Precio    *float64 `json:"precio" binding:"required,gte=0"`
	Categoria string   `json:"categoria" binding:"required"`
	Icono     string   `json:"icono"`
	Activo    *bool    `json:"activo"`
}

// ProductProtectedFields se descartan del cuerpo antes de decodificar.
var ProductProtectedFields = []string{"_id", "id", "createdAt", "updatedAt"}

// CategoryAll es el valor de ?categoria= que equivale a no filtrar.
const CategoryAll = "todos"

// NewProduct construye el documento a insertar; activo es true si no viene.
func (in ProductInput) NewProduct(now time.Time) Product {
	activo := true
	if in.Activo != nil {
		activo = *in.Activo
	}
	var precio float64
	if in.Precio != nil {
		precio = *in.Precio
	}
	return Product{
		Nombre:    in.Nombre,
		Precio:    precio,
		Categoria: in.Categoria,
		Icono:     in.Icono,
		Activo:    activo,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
