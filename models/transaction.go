package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	TransactionCharge = "cargo"
	TransactionTopUp  = "recarga"
	TransactionRefund = "reembolso"
)

type TransactionItem struct {
	ProductoID string  `bson:"productoId,omitempty" json:"productoId,omitempty"`
	Nombre     string  `bson:"nombre" json:"nombre" binding:"required"`
	Cantidad   int     `bson:"cantidad" json:"cantidad" binding:"required,gt=0"`
	Precio     float64 `bson:"precio" json:"precio" binding:"gte=0"`
}

// Transaction es de solo inserción: no hay update ni delete.
type Transaction struct {
	ID         primitive.ObjectID     `bson:"_id,omitempty" json:"_id,omitempty"`
	HuespedID  string                 `bson:"huespedId" json:"huespedId"`
	Tipo       string                 `bson:"tipo" json:"tipo"`
	Monto      float64                `bson:"monto" json:"monto"`
	Concepto   string                 `bson:"concepto,omitempty" json:"concepto,omitempty"`
	MetodoPago string                 `bson:"metodoPago,omitempty" json:"metodoPago,omitempty"`
	Productos  []TransactionItem      `bson:"productos,omitempty" json:"productos,omitempty"`
	Extras     map[string]interface{} `bson:"extras,omitempty" json:"extras,omitempty"`
	Fecha      time.Time              `bson:"fecha" json:"fecha"`
	CreatedAt  time.Time              `bson:"createdAt" json:"createdAt"`
}

// fecha la asigna siempre el servidor.
var TransactionProtectedFields = []string{"_id", "id", "fecha", "createdAt"}

// TransactionInput - cuerpo de POST /api/transacciones
type TransactionInput struct {
	HuespedID  string                 `json:"huespedId" binding:"required,len=24,hexadecimal"`
	Tipo       string                 `json:"tipo" binding:"omitempty,oneof=cargo recarga reembolso"`
	Monto      *float64               `json:"monto" binding:"required"`
	Concepto   string                 `json:"concepto"`
	MetodoPago string                 `json:"metodoPago"`
	Productos  []TransactionItem      `json:"productos" binding:"omitempty,dive"`
	Extras     map[string]interface{} `json:"extras" binding:"omitempty,extrakeys"`
}

func (in TransactionInput) NewTransaction(now time.Time) Transaction {
	tipo := in.Tipo
	if tipo == "" {
		tipo = TransactionCharge
	}
	var monto float64
	if in.Monto != nil {
		monto = *in.Monto
	}
	return Transaction{
		HuespedID:  strings.ToLower(in.HuespedID),
		Tipo:       tipo,
		Monto:      monto,
		Concepto:   in.Concepto,
		MetodoPago: in.MetodoPago,
		Productos:  in.Productos,
		Extras:     in.Extras,
		Fecha:      now,
		CreatedAt:  now,
	}
}
