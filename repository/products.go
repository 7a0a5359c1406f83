package repository

import (
	"context"
	"fmt"

	"resortpay/config"
	"resortpay/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ProductRepository struct {
	db CollectionProvider
}

func NewProductRepository(db CollectionProvider) *ProductRepository {
	return &ProductRepository{db: db}
}

// ListActive filtra por categoría salvo que venga vacía o "todos".
// Orden: categoría y nombre ascendentes.
func (r *ProductRepository) ListActive(ctx context.Context, categoria string) ([]models.Product, error) {
	coll, err := r.db.Collection(config.ProductCollection)
	if err != nil {
		return nil, err
	}

	filter := bson.M{"activo": true}
	if categoria != "" && categoria != models.CategoryAll {
		filter["categoria"] = categoria
	}

	opts := options.Find().SetSort(bson.D{{Key: "categoria", Value: 1}, {Key: "nombre", Value: 1}})
	cursor, err := coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find productos: %w", err)
	}
	defer cursor.Close(ctx)

	products := []models.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("decode productos: %w", err)
	}
	return products, nil
}

func (r *ProductRepository) Create(ctx context.Context, p models.Product) (primitive.ObjectID, error) {
	coll, err := r.db.Collection(config.ProductCollection)
	if err != nil {
		return primitive.NilObjectID, err
	}

	if p.ID.IsZero() {
		p.ID = primitive.NewObjectID()
	}
	if _, err := coll.InsertOne(ctx, p); err != nil {
		return primitive.NilObjectID, fmt.Errorf("insert producto: %w", err)
	}
	return p.ID, nil
}
