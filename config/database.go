package config

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

// Colecciones del ledger.
const (
	GuestCollection       = "huespedes"
	TransactionCollection = "transacciones"
	ProductCollection     = "productos"
)

// ErrNoDatabase se devuelve por cualquier operación de datos mientras no hay conexión.
var ErrNoDatabase = errors.New("base de datos no disponible")

// State es el ciclo de vida de la conexión.
type State int

const (
	StateUninitialized State = iota
	StateConnected
	StateDegraded
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateConnected:
		return "connected"
	case StateDegraded:
		return "degraded"
	case StateClosed:
		return "closed"
	default:
		return "uninitialized"
	}
}

const connectTimeout = 10 * time.Second

// Database es el dueño único del cliente de MongoDB. Se construye una vez en
// main y se pasa por referencia a los repositorios.
type Database struct {
	mu     sync.RWMutex
	state  State
	client *mongo.Client
	db     *mongo.Database
	name   string
	log    *zap.Logger
}

func NewDatabase(log *zap.Logger) *Database {
	if log == nil {
		log = zap.NewNop()
	}
	return &Database{log: log}
}

// Connect abre la conexión compartida. Sin uri el proceso queda en modo
// degradado y Connect devuelve nil; un fallo de conexión también deja el modo
// degradado pero se devuelve para que el llamador lo registre.
func (d *Database) Connect(ctx context.Context, uri, dbName string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.state == StateConnected {
		return nil
	}
	d.name = dbName

	if uri == "" {
		d.state = StateDegraded
		d.log.Warn("MONGODB_URI no configurada, se ejecuta sin base de datos")
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		d.state = StateDegraded
		return fmt.Errorf("connect mongo: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		d.state = StateDegraded
		return fmt.Errorf("ping mongo: %w", err)
	}

	d.client = client
	d.db = client.Database(dbName)
	d.state = StateConnected
	d.log.Info("Connected to MongoDB", zap.String("db", dbName))
	return nil
}

// Ping comprueba que el servidor responde.
func (d *Database) Ping(ctx context.Context) error {
	d.mu.RLock()
	client, state := d.client, d.state
	d.mu.RUnlock()

	if state != StateConnected {
		return ErrNoDatabase
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("ping mongo: %w", err)
	}
	return nil
}

// Collection devuelve el handle de una colección. No crea ni valida esquema.
func (d *Database) Collection(name string) (*mongo.Collection, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.state != StateConnected {
		return nil, ErrNoDatabase
	}
	return d.db.Collection(name), nil
}

// Close libera el cliente. Puede llamarse varias veces.
func (d *Database) Close(ctx context.Context) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	client := d.client
	d.client = nil
	d.db = nil
	d.state = StateClosed

	if client == nil {
		return nil
	}
	if err := client.Disconnect(ctx); err != nil {
		return fmt.Errorf("disconnect mongo: %w", err)
	}
	d.log.Info("MongoDB connection closed")
	return nil
}

func (d *Database) State() State {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.state
}

func (d *Database) Name() string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.name
}
