package models

import (
	"encoding/json"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GuestStatus es el estado derivado de activo/deletedAt.
type GuestStatus string

const (
	GuestActive  GuestStatus = "activo"
	GuestDeleted GuestStatus = "eliminado"
)

type Guest struct {
	ID            primitive.ObjectID     `bson:"_id,omitempty" json:"_id,omitempty"`
	Nombre        string                 `bson:"nombre" json:"nombre"`
	Apellido      string                 `bson:"apellido,omitempty" json:"apellido,omitempty"`
	Email         string                 `bson:"email,omitempty" json:"email,omitempty"`
	Telefono      string                 `bson:"telefono,omitempty" json:"telefono,omitempty"`
	Habitacion    string                 `bson:"habitacion,omitempty" json:"habitacion,omitempty"`
	CodigoPulsera string                 `bson:"codigoPulsera,omitempty" json:"codigoPulsera,omitempty"`
	FechaSalida   *time.Time             `bson:"fechaSalida,omitempty" json:"fechaSalida,omitempty"`
	Extras        map[string]interface{} `bson:"extras,omitempty" json:"extras,omitempty"`
	FechaRegistro time.Time              `bson:"fechaRegistro" json:"fechaRegistro"`
	Activo        bool                   `bson:"activo" json:"activo"`
	CreatedAt     time.Time              `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time              `bson:"updatedAt" json:"updatedAt"`
	DeletedAt     *time.Time             `bson:"deletedAt,omitempty" json:"deletedAt,omitempty"`
}

func (g Guest) Estado() GuestStatus {
	if !g.Activo {
		return GuestDeleted
	}
	return GuestActive
}

func (g Guest) MarshalJSON() ([]byte, error) {
	type guest Guest
	return json.Marshal(struct {
		guest
		Estado GuestStatus `json:"estado"`
	}{guest(g), g.Estado()})
}

// GuestProtectedFields los asigna el servidor; se descartan del cuerpo sin error.
var GuestProtectedFields = []string{"_id", "id", "fechaRegistro", "createdAt", "updatedAt", "deletedAt"}

// GuestInput - cuerpo de POST /api/huespedes
type GuestInput struct {
	Nombre        string                 `json:"nombre" binding:"required"`
	Apellido      string                 `json:"apellido"`
	Email         string                 `json:"email" binding:"omitempty,email"`
	Telefono      string                 `json:"telefono"`
	Habitacion    string                 `json:"habitacion"`
	CodigoPulsera string                 `json:"codigoPulsera"`
	FechaSalida   *time.Time             `json:"fechaSalida"`
	Activo        *bool                  `json:"activo"`
	Extras        map[string]interface{} `json:"extras" binding:"omitempty,extrakeys"`
}

// NewGuest construye el documento a insertar con los campos de auditoría.
func (in GuestInput) NewGuest(now time.Time) Guest {
	g := Guest{
		Nombre:        in.Nombre,
		Apellido:      in.Apellido,
		Email:         in.Email,
		Telefono:      in.Telefono,
		Habitacion:    in.Habitacion,
		CodigoPulsera: in.CodigoPulsera,
		FechaSalida:   in.FechaSalida,
		Extras:        in.Extras,
		FechaRegistro: now,
		Activo:        true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if in.Activo != nil && !*in.Activo {
		g.Activo = false
		g.DeletedAt = &now
	}
	return g
}

// GuestUpdate - cuerpo de PUT /api/huespedes/:id, todos los campos opcionales.
type GuestUpdate struct {
	Nombre        *string                `json:"nombre" binding:"omitempty,min=1"`
	Apellido      *string                `json:"apellido"`
	Email         *string                `json:"email" binding:"omitempty,email"`
	Telefono      *string                `json:"telefono"`
	Habitacion    *string                `json:"habitacion"`
	CodigoPulsera *string                `json:"codigoPulsera"`
	FechaSalida   *time.Time             `json:"fechaSalida"`
	Activo        *bool                  `json:"activo"`
	Extras        map[string]interface{} `json:"extras" binding:"omitempty,extrakeys"`
}

// Changes traduce la actualización a $set/$unset. updatedAt siempre se
// actualiza; activo y deletedAt se mueven juntos.
func (u GuestUpdate) Changes(now time.Time) (set bson.M, unset bson.M) {
	set = bson.M{"updatedAt": now}
	unset = bson.M{}

	setString := func(key string, v *string) {
		if v != nil {
			set[key] = *v
		}
	}
	setString("nombre", u.Nombre)
	setString("apellido", u.Apellido)
	setString("email", u.Email)
	setString("telefono", u.Telefono)
	setString("habitacion", u.Habitacion)
	setString("codigoPulsera", u.CodigoPulsera)

	if u.FechaSalida != nil {
		set["fechaSalida"] = *u.FechaSalida
	}
	for k, v := range u.Extras {
		set["extras."+k] = v
	}
	if u.Activo != nil {
		set["activo"] = *u.Activo
		if *u.Activo {
			unset["deletedAt"] = ""
		} else {
			set["deletedAt"] = now
		}
	}
	return set, unset
}
