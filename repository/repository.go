// Package repository implementa el acceso a las colecciones de MongoDB.
// Cada método hace exactamente una llamada al driver.
package repository

import (
	"errors"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound: ningún documento coincide con el filtro.
var ErrNotFound = errors.New("documento no encontrado")

// CollectionProvider entrega colecciones por nombre; lo implementa config.Database.
type CollectionProvider interface {
	Collection(name string) (*mongo.Collection, error)
}
