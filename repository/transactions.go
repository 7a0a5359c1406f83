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

// TransactionRepository solo inserta y lista.
type TransactionRepository struct {
	db CollectionProvider
}

func NewTransactionRepository(db CollectionProvider) *TransactionRepository {
	return &TransactionRepository{db: db}
}

func (r *TransactionRepository) List(ctx context.Context) ([]models.Transaction, error) {
	return r.find(ctx, bson.M{})
}

// ListByGuest no valida que el huésped exista.
func (r *TransactionRepository) ListByGuest(ctx context.Context, huespedID string) ([]models.Transaction, error) {
	return r.find(ctx, bson.M{"huespedId": huespedID})
}

func (r *TransactionRepository) find(ctx context.Context, filter bson.M) ([]models.Transaction, error) {
	coll, err := r.db.Collection(config.TransactionCollection)
	if err != nil {
		return nil, err
	}

	opts := options.Find().SetSort(bson.D{{Key: "fecha", Value: -1}})
	cursor, err := coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find transacciones: %w", err)
	}
	defer cursor.Close(ctx)

	txs := []models.Transaction{}
	if err := cursor.All(ctx, &txs); err != nil {
		return nil, fmt.Errorf("decode transacciones: %w", err)
	}
	return txs, nil
}

func (r *TransactionRepository) Create(ctx context.Context, tx models.Transaction) (primitive.ObjectID, error) {
	coll, err := r.db.Collection(config.TransactionCollection)
	if err != nil {
		return primitive.NilObjectID, err
	}

	if tx.ID.IsZero() {
		tx.ID = primitive.NewObjectID()
	}
	if _, err := coll.InsertOne(ctx, tx); err != nil {
		return primitive.NilObjectID, fmt.Errorf("insert transaccion: %w", err)
	}
	return tx.ID, nil
}
