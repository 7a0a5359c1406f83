package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"resortpay/config"
	"resortpay/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type GuestRepository struct {
	db CollectionProvider
}

func NewGuestRepository(db CollectionProvider) *GuestRepository {
	return &GuestRepository{db: db}
}

// ListActive devuelve los huéspedes con activo=true, los más recientes primero.
func (r *GuestRepository) ListActive(ctx context.Context) ([]models.Guest, error) {
	coll, err := r.db.Collection(config.GuestCollection)
	if err != nil {
		return nil, err
	}

	opts := options.Find().SetSort(bson.D{{Key: "fechaRegistro", Value: -1}})
	cursor, err := coll.Find(ctx, bson.M{"activo": true}, opts)
	if err != nil {
		return nil, fmt.Errorf("find huespedes: %w", err)
	}
	defer cursor.Close(ctx)

	guests := []models.Guest{}
	if err := cursor.All(ctx, &guests); err != nil {
		return nil, fmt.Errorf("decode huespedes: %w", err)
	}
	return guests, nil
}

func (r *GuestRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Guest, error) {
	coll, err := r.db.Collection(config.GuestCollection)
	if err != nil {
		return nil, err
	}

	var guest models.Guest
	err = coll.FindOne(ctx, bson.M{"_id": id}).Decode(&guest)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find huesped %s: %w", id.Hex(), err)
	}
	return &guest, nil
}

func (r *GuestRepository) Create(ctx context.Context, guest models.Guest) (primitive.ObjectID, error) {
	coll, err := r.db.Collection(config.GuestCollection)
	if err != nil {
		return primitive.NilObjectID, err
	}

	if guest.ID.IsZero() {
		guest.ID = primitive.NewObjectID()
	}
	if _, err := coll.InsertOne(ctx, guest); err != nil {
		return primitive.NilObjectID, fmt.Errorf("insert huesped: %w", err)
	}
	return guest.ID, nil
}

// Update aplica la actualización parcial; ErrNotFound si el id no existe.
func (r *GuestRepository) Update(ctx context.Context, id primitive.ObjectID, upd models.GuestUpdate, now time.Time) error {
	coll, err := r.db.Collection(config.GuestCollection)
	if err != nil {
		return err
	}

	set, unset := upd.Changes(now)
	update := bson.M{"$set": set}
	if len(unset) > 0 {
		update["$unset"] = unset
	}

	res, err := coll.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return fmt.Errorf("update huesped %s: %w", id.Hex(), err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// SoftDelete marca el huésped como inactivo; el documento nunca se borra.
func (r *GuestRepository) SoftDelete(ctx context.Context, id primitive.ObjectID, now time.Time) error {
	coll, err := r.db.Collection(config.GuestCollection)
	if err != nil {
		return err
	}

	update := bson.M{"$set": bson.M{
		"activo":    false,
		"deletedAt": now,
		"updatedAt": now,
	}}
	res, err := coll.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return fmt.Errorf("soft delete huesped %s: %w", id.Hex(), err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
