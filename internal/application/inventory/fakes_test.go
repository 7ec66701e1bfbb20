package inventory_test

import (
	"context"

	"github.com/google/uuid"
	"github.com/tu-usuario/despensa-api/internal/domain"
	"github.com/tu-usuario/despensa-api/internal/domain/entity"
	"github.com/tu-usuario/despensa-api/internal/domain/repository"
)

// Dobles en memoria de los puertos de persistencia, suficientes para ejercer
// resolver y recorder sin PostgreSQL.

type fakeItemRepo struct {
	items  map[string]*entity.Item // por id
	byCode map[string]*entity.Item // por código de barras
	// createErr simula perder la carrera de creación: el primer Create falla
	// con este error y luego se limpia.
	createErr error
	// missFirstLookup hace que el primer GetByBarcode devuelva "no existe",
	// como le pasa al perdedor de la carrera antes de su insert.
	missFirstLookup bool
}

func newFakeItemRepo() *fakeItemRepo {
	return &fakeItemRepo{items: map[string]*entity.Item{}, byCode: map[string]*entity.Item{}}
}

func (f *fakeItemRepo) add(it *entity.Item) {
	f.items[it.ID] = it
	if it.Barcode != nil {
		f.byCode[*it.Barcode] = it
	}
}

func (f *fakeItemRepo) Create(it *entity.Item) error {
	if f.createErr != nil {
		err := f.createErr
		f.createErr = nil
		return err
	}
	if it.Barcode != nil {
		if _, ok := f.byCode[*it.Barcode]; ok {
			return domain.ErrDuplicate
		}
	}
	f.add(it)
	return nil
}

func (f *fakeItemRepo) GetByID(id string) (*entity.Item, error) {
	return f.items[id], nil
}

func (f *fakeItemRepo) GetByBarcode(barcode string) (*entity.Item, error) {
	if f.missFirstLookup {
		f.missFirstLookup = false
		return nil, nil
	}
	return f.byCode[barcode], nil
}

func (f *fakeItemRepo) GetForUpdate(id string) (*entity.Item, error) {
	return f.items[id], nil
}

func (f *fakeItemRepo) Update(it *entity.Item) error {
	f.items[it.ID] = it
	return nil
}

func (f *fakeItemRepo) Delete(id string) error {
	if it, ok := f.items[id]; ok && it.Barcode != nil {
		delete(f.byCode, *it.Barcode)
	}
	delete(f.items, id)
	return nil
}

func (f *fakeItemRepo) ListWithTotals() ([]repository.ItemListing, error) {
	return nil, nil
}

func (f *fakeItemRepo) GetListingByBarcode(string) (*repository.ItemListing, error) {
	return nil, nil
}

type fakeTxnRepo struct {
	txns []*entity.Transaction
}

func (f *fakeTxnRepo) Create(t *entity.Transaction) error {
	f.txns = append(f.txns, t)
	return nil
}

func (f *fakeTxnRepo) ListByItem(itemID string) ([]*entity.Transaction, error) {
	var out []*entity.Transaction
	for _, t := range f.txns {
		if t.ItemID == itemID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeTxnRepo) ListRecent(limit int) ([]repository.LedgerEntry, error) {
	var out []repository.LedgerEntry
	for i := len(f.txns) - 1; i >= 0 && len(out) < limit; i-- {
		t := f.txns[i]
		out = append(out, repository.LedgerEntry{
			ID: t.ID, Kind: t.Kind, Quantity: t.Quantity, Delta: t.Delta,
			Note: t.Note, CreatedAt: t.CreatedAt,
		})
	}
	return out, nil
}

// fakeTxRunner ejecuta el callback directamente sobre los mismos fakes (las
// garantías de atomicidad no aplican en memoria).
type fakeTxRunner struct {
	items *fakeItemRepo
	txns  *fakeTxnRepo
}

func (r *fakeTxRunner) Run(ctx context.Context, fn func(
	itemRepo repository.ItemRepository,
	txnRepo repository.TransactionRepository,
) error) error {
	return fn(r.items, r.txns)
}

type fakeTypeRepo struct {
	byName map[string]*entity.ItemType
}

func newFakeTypeRepo() *fakeTypeRepo {
	return &fakeTypeRepo{byName: map[string]*entity.ItemType{}}
}

func (f *fakeTypeRepo) UpsertByName(name string) (*entity.ItemType, error) {
	if t, ok := f.byName[name]; ok {
		return t, nil
	}
	t := &entity.ItemType{ID: uuid.New().String(), Name: name}
	f.byName[name] = t
	return t, nil
}

func (f *fakeTypeRepo) List() ([]*entity.ItemType, error) {
	var out []*entity.ItemType
	for _, t := range f.byName {
		out = append(out, t)
	}
	return out, nil
}

type fakeLocationRepo struct {
	byName map[string]*entity.Location
}

func newFakeLocationRepo() *fakeLocationRepo {
	return &fakeLocationRepo{byName: map[string]*entity.Location{}}
}

func (f *fakeLocationRepo) UpsertByName(name string) (*entity.Location, error) {
	if l, ok := f.byName[name]; ok {
		return l, nil
	}
	l := &entity.Location{ID: uuid.New().String(), Name: name}
	f.byName[name] = l
	return l, nil
}

func (f *fakeLocationRepo) List() ([]*entity.Location, error) {
	var out []*entity.Location
	for _, l := range f.byName {
		out = append(out, l)
	}
	return out, nil
}
