package config

import (
	"context"
	"fmt"
	"time"

	"resortpay/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// DefaultProducts es el catálogo inicial del resort.
func DefaultProducts(now time.Time) []models.Product {
	base := []struct {
		nombre, categoria, icono string
		precio                   float64
	}{
		{"Agua Natural", "bebidas", "💧", 25},
		{"Refresco", "bebidas", "🥤", 35},
		{"Cerveza", "bebidas", "🍺", 60},
		{"Margarita", "bebidas", "🍹", 120},
		{"Café Americano", "bebidas", "☕", 40},
		{"Hamburguesa", "alimentos", "🍔", 150},
		{"Pizza Individual", "alimentos", "🍕", 140},
		{"Tacos al Pastor", "alimentos", "🌮", 90},
		{"Helado", "postres", "🍦", 50},
		{"Protector Solar", "tienda", "🧴", 180},
	}

	products := make([]models.Product, 0, len(base))
	for _, p := range base {
		products = append(products, models.Product{
			Nombre:    p.nombre,
			Precio:    p.precio,
			Categoria: p.categoria,
			Icono:     p.icono,
			Activo:    true,
			CreatedAt: now,
			UpdatedAt: now,
		})
	}
	return products
}

// EnsureSeeded inserta el catálogo por defecto solo si la colección está vacía.
// Dos instancias arrancando a la vez pueden duplicar el catálogo; se acepta.
func EnsureSeeded(ctx context.Context, coll *mongo.Collection) (int, error) {
	count, err := coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count productos: %w", err)
	}
	if count != 0 {
		return 0, nil
	}

	products := DefaultProducts(time.Now().UTC())
	docs := make([]interface{}, 0, len(products))
	for _, p := range products {
		docs = append(docs, p)
	}

	res, err := coll.InsertMany(ctx, docs)
	if err != nil {
		return 0, fmt.Errorf("insert productos: %w", err)
	}
	return len(res.InsertedIDs), nil
}

// Seed ejecuta EnsureSeeded sobre la colección de productos de la conexión activa.
func (d *Database) Seed(ctx context.Context) (int, error) {
	coll, err := d.Collection(ProductCollection)
	if err != nil {
		return 0, err
	}
	n, err := EnsureSeeded(ctx, coll)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		d.log.Info("Catálogo de productos inicializado", zap.Int("productos", n))
	}
	return n, nil
}
