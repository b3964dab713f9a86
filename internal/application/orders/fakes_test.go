package orders_test

import (
	"context"
	"errors"

	"github.com/servusapp/servus-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes em memória dos portos usados pelos casos de uso de O.S.
// ──────────────────────────────────────────────────────────────────────────────

type fakeOrderRepo struct {
	orders   map[string]*entity.WorkOrder
	created  []*entity.WorkOrder
	count    int
	countErr error
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: map[string]*entity.WorkOrder{}}
}

func (r *fakeOrderRepo) Create(o *entity.WorkOrder) error {
	r.created = append(r.created, o)
	r.orders[o.ID] = o
	r.count++
	return nil
}

func (r *fakeOrderRepo) GetByID(userID, id string) (*entity.WorkOrder, error) {
	o, ok := r.orders[id]
	if !ok || o.UserID != userID {
		return nil, nil
	}
	return o, nil
}

func (r *fakeOrderRepo) ListByUser(userID string) ([]*entity.WorkOrder, error) {
	var out []*entity.WorkOrder
	for _, o := range r.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *fakeOrderRepo) ListByDateRange(userID, start, end string) ([]*entity.WorkOrder, error) {
	var out []*entity.WorkOrder
	for _, o := range r.orders {
		if o.UserID == userID && o.Date >= start && o.Date <= end {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *fakeOrderRepo) CountByDateRange(userID, start, end string) (int, error) {
	if r.countErr != nil {
		return 0, r.countErr
	}
	return r.count, nil
}

func (r *fakeOrderRepo) UpdateStatus(userID, id, status string) error {
	o, _ := r.GetByID(userID, id)
	if o == nil {
		return errors.New("não encontrada")
	}
	o.Status = status
	return nil
}

func (r *fakeOrderRepo) SetSignature(userID, id, signatureURL, status string) error {
	o, _ := r.GetByID(userID, id)
	if o == nil {
		return errors.New("não encontrada")
	}
	o.SignatureURL = signatureURL
	o.Status = status
	return nil
}

func (r *fakeOrderRepo) AppendPhoto(userID, id string, photo entity.OrderPhoto) error {
	o, _ := r.GetByID(userID, id)
	if o == nil {
		return errors.New("não encontrada")
	}
	o.Photos = append(o.Photos, photo)
	return nil
}

func (r *fakeOrderRepo) SetPhotos(userID, id string, photos []entity.OrderPhoto) error {
	o, _ := r.GetByID(userID, id)
	if o == nil {
		return errors.New("não encontrada")
	}
	o.Photos = photos
	return nil
}

func (r *fakeOrderRepo) Delete(userID, id string) error {
	delete(r.orders, id)
	return nil
}

type fakeCustomerRepo struct {
	customers map[string]*entity.Customer
}

func newFakeCustomerRepo(customers ...*entity.Customer) *fakeCustomerRepo {
	r := &fakeCustomerRepo{customers: map[string]*entity.Customer{}}
	for _, c := range customers {
		r.customers[c.ID] = c
	}
	return r
}

func (r *fakeCustomerRepo) Create(c *entity.Customer) error {
	r.customers[c.ID] = c
	return nil
}

func (r *fakeCustomerRepo) GetByID(userID, id string) (*entity.Customer, error) {
	c, ok := r.customers[id]
	if !ok || c.UserID != userID {
		return nil, nil
	}
	return c, nil
}

func (r *fakeCustomerRepo) ListByUser(userID string) ([]*entity.Customer, error) {
	var out []*entity.Customer
	for _, c := range r.customers {
		if c.UserID == userID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeCustomerRepo) Update(c *entity.Customer) error {
	r.customers[c.ID] = c
	return nil
}

func (r *fakeCustomerRepo) Delete(userID, id string) error {
	delete(r.customers, id)
	return nil
}

type fakeCatalogRepo struct {
	items map[string]*entity.CatalogItem
}

func newFakeCatalogRepo(items ...*entity.CatalogItem) *fakeCatalogRepo {
	r := &fakeCatalogRepo{items: map[string]*entity.CatalogItem{}}
	for _, it := range items {
		r.items[it.ID] = it
	}
	return r
}

func (r *fakeCatalogRepo) Create(it *entity.CatalogItem) error {
	r.items[it.ID] = it
	return nil
}

func (r *fakeCatalogRepo) GetByID(userID, id string) (*entity.CatalogItem, error) {
	it, ok := r.items[id]
	if !ok || it.UserID != userID {
		return nil, nil
	}
	return it, nil
}

func (r *fakeCatalogRepo) ListByUser(userID string) ([]*entity.CatalogItem, error) {
	var out []*entity.CatalogItem
	for _, it := range r.items {
		if it.UserID == userID {
			out = append(out, it)
		}
	}
	return out, nil
}

func (r *fakeCatalogRepo) Delete(userID, id string) error {
	delete(r.items, id)
	return nil
}

type fakeProfileRepo struct {
	profile *entity.Profile
	err     error
}

func (r *fakeProfileRepo) Get(userID string) (*entity.Profile, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.profile, nil
}

func (r *fakeProfileRepo) Upsert(p *entity.Profile) error {
	r.profile = p
	return nil
}

type fakeUploader struct {
	uploads []string // pastas na ordem das chamadas
	err     error
}

func (u *fakeUploader) Upload(_ context.Context, data []byte, filename, folder string) (string, error) {
	if u.err != nil {
		return "", u.err
	}
	u.uploads = append(u.uploads, folder)
	return "https://media.test/" + folder + "/" + filename, nil
}

func (u *fakeUploader) UploadBase64(_ context.Context, base64Image, folder string) (string, error) {
	if u.err != nil {
		return "", u.err
	}
	u.uploads = append(u.uploads, folder)
	return "https://media.test/" + folder + "/img", nil
}
