package controllers

import (
	"context"
	"sort"
	"sync"
	"time"

	"resortpay/models"
	"resortpay/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// memGuests imita la semántica de GuestRepository en memoria.
type memGuests struct {
	mu      sync.Mutex
	guests  map[primitive.ObjectID]models.Guest
	err     error
	lastUpd *models.GuestUpdate
}

func newMemGuests() *memGuests {
	return &memGuests{guests: map[primitive.ObjectID]models.Guest{}}
}

func (m *memGuests) ListActive(context.Context) ([]models.Guest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	var out []models.Guest
	for _, g := range m.guests {
		if g.Activo {
			out = append(out, g)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].FechaRegistro.After(out[j].FechaRegistro) })
	return out, nil
}

func (m *memGuests) FindByID(_ context.Context, id primitive.ObjectID) (*models.Guest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	g, ok := m.guests[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &g, nil
}

func (m *memGuests) Create(_ context.Context, g models.Guest) (primitive.ObjectID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return primitive.NilObjectID, m.err
	}
	g.ID = primitive.NewObjectID()
	m.guests[g.ID] = g
	return g.ID, nil
}

func (m *memGuests) Update(_ context.Context, id primitive.ObjectID, upd models.GuestUpdate, now time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	g, ok := m.guests[id]
	if !ok {
		return repository.ErrNotFound
	}
	m.lastUpd = &upd
	if upd.Nombre != nil {
		g.Nombre = *upd.Nombre
	}
	if upd.Habitacion != nil {
		g.Habitacion = *upd.Habitacion
	}
	g.UpdatedAt = now
	m.guests[id] = g
	return nil
}

func (m *memGuests) SoftDelete(_ context.Context, id primitive.ObjectID, now time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	g, ok := m.guests[id]
	if !ok {
		return repository.ErrNotFound
	}
	g.Activo = false
	g.DeletedAt = &now
	g.UpdatedAt = now
	m.guests[id] = g
	return nil
}

type memTransactions struct {
	mu  sync.Mutex
	txs []models.Transaction
	err error
}

func (m *memTransactions) List(ctx context.Context) ([]models.Transaction, error) {
	return m.filter("")
}

func (m *memTransactions) ListByGuest(_ context.Context, huespedID string) ([]models.Transaction, error) {
	return m.filter(huespedID)
}

func (m *memTransactions) filter(huespedID string) ([]models.Transaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	var out []models.Transaction
	for _, tx := range m.txs {
		if huespedID == "" || tx.HuespedID == huespedID {
			out = append(out, tx)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Fecha.After(out[j].Fecha) })
	return out, nil
}

func (m *memTransactions) Create(_ context.Context, tx models.Transaction) (primitive.ObjectID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return primitive.NilObjectID, m.err
	}
	tx.ID = primitive.NewObjectID()
	m.txs = append(m.txs, tx)
	return tx.ID, nil
}

type memProducts struct {
	mu       sync.Mutex
	products []models.Product
	err      error
}

func (m *memProducts) ListActive(_ context.Context, categoria string) ([]models.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	var out []models.Product
	for _, p := range m.products {
		if !p.Activo {
			continue
		}
		if categoria != "" && categoria != models.CategoryAll && p.Categoria != categoria {
			continue
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Categoria != out[j].Categoria {
			return out[i].Categoria < out[j].Categoria
		}
		return out[i].Nombre < out[j].Nombre
	})
	return out, nil
}

func (m *memProducts) Create(_ context.Context, p models.Product) (primitive.ObjectID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return primitive.NilObjectID, m.err
	}
	p.ID = primitive.NewObjectID()
	m.products = append(m.products, p)
	return p.ID, nil
}

type stubPinger struct {
	err error
}

func (s stubPinger) Ping(context.Context) error { return s.err }
