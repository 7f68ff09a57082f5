package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/simplesdental/product-api/internal/core/domain"
	"github.com/simplesdental/product-api/internal/core/ports"
)

type stubProductRepo struct {
	byID   map[string]*domain.Product
	nextID int
}

func newStubProductRepo() *stubProductRepo {
	return &stubProductRepo{byID: map[string]*domain.Product{}}
}

func (r *stubProductRepo) FindByID(_ context.Context, id string) (*domain.Product, error) {
	if p, ok := r.byID[id]; ok {
		return p, nil
	}
	return nil, domain.ErrProductNotFound
}

func (r *stubProductRepo) Create(_ context.Context, product *domain.Product) (*domain.Product, error) {
	r.nextID++
	product.ID = fmt.Sprintf("p-%d", r.nextID)
	r.byID[product.ID] = product
	return product, nil
}

func (r *stubProductRepo) Update(_ context.Context, product *domain.Product) (*domain.Product, error) {
	if _, ok := r.byID[product.ID]; !ok {
		return nil, domain.ErrProductNotFound
	}
	r.byID[product.ID] = product
	return product, nil
}

func (r *stubProductRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrProductNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *stubProductRepo) List(_ context.Context, nameFilter string, _, _ int) ([]*domain.Product, int64, error) {
	var products []*domain.Product
	for _, p := range r.byID {
		if nameFilter == "" || strings.Contains(strings.ToLower(p.Name), strings.ToLower(nameFilter)) {
			products = append(products, p)
		}
	}
	return products, int64(len(products)), nil
}

type stubCategoryRepo struct {
	byID   map[string]*domain.Category
	nextID int
}

func newStubCategoryRepo(categories ...*domain.Category) *stubCategoryRepo {
	r := &stubCategoryRepo{byID: map[string]*domain.Category{}}
	for _, c := range categories {
		r.byID[c.ID] = c
	}
	return r
}

func (r *stubCategoryRepo) FindByID(_ context.Context, id string) (*domain.Category, error) {
	if c, ok := r.byID[id]; ok {
		return c, nil
	}
	return nil, domain.ErrCategoryNotFound
}

func (r *stubCategoryRepo) Create(_ context.Context, category *domain.Category) (*domain.Category, error) {
	r.nextID++
	category.ID = fmt.Sprintf("c-%d", r.nextID)
	r.byID[category.ID] = category
	return category, nil
}

func (r *stubCategoryRepo) Update(_ context.Context, category *domain.Category) (*domain.Category, error) {
	if _, ok := r.byID[category.ID]; !ok {
		return nil, domain.ErrCategoryNotFound
	}
	r.byID[category.ID] = category
	return category, nil
}

func (r *stubCategoryRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrCategoryNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *stubCategoryRepo) List(_ context.Context, _, _ int) ([]*domain.Category, int64, error) {
	var categories []*domain.Category
	for _, c := range r.byID {
		categories = append(categories, c)
	}
	return categories, int64(len(categories)), nil
}

var testActor = domain.Identity{ID: "a1", Email: "admin@test.com", Role: domain.RoleAdmin}

func TestProductService_Create(t *testing.T) {
	categories := newStubCategoryRepo(&domain.Category{ID: "c-1", Name: "Drills"})
	recorder := &stubRecorder{}
	svc := NewProductService(newStubProductRepo(), categories, recorder, zerolog.Nop())

	created, err := svc.Create(context.Background(), ports.ProductInput{
		Name:       "Contra-angle",
		Price:      199.90,
		Status:     true,
		Code:       "CA-100",
		CategoryID: "c-1",
	}, testActor)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == "" {
		t.Errorf("expected assigned id")
	}
	if created.Category == nil || created.Category.Name != "Drills" {
		t.Errorf("expected category snapshot, got %+v", created.Category)
	}
	if len(recorder.events) != 1 || recorder.events[0].ActorEmail != "admin@test.com" {
		t.Errorf("expected one audit event from the actor, got %+v", recorder.events)
	}
}

func TestProductService_CreateUnknownCategory(t *testing.T) {
	svc := NewProductService(newStubProductRepo(), newStubCategoryRepo(), &stubRecorder{}, zerolog.Nop())

	_, err := svc.Create(context.Background(), ports.ProductInput{
		Name:       "Contra-angle",
		CategoryID: "missing",
	}, testActor)
	if !errors.Is(err, domain.ErrCategoryNotFound) {
		t.Fatalf("expected ErrCategoryNotFound, got %v", err)
	}
}

func TestProductService_UpdateMovesCategory(t *testing.T) {
	categories := newStubCategoryRepo(
		&domain.Category{ID: "c-1", Name: "Drills"},
		&domain.Category{ID: "c-2", Name: "Implants"},
	)
	repo := newStubProductRepo()
	svc := NewProductService(repo, categories, &stubRecorder{}, zerolog.Nop())

	created, err := svc.Create(context.Background(), ports.ProductInput{Name: "Screw", CategoryID: "c-1"}, testActor)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := svc.Update(context.Background(), created.ID, ports.ProductInput{
		Name:       "Screw v2",
		CategoryID: "c-2",
	}, testActor)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.CategoryID != "c-2" || updated.Category.Name != "Implants" {
		t.Errorf("expected category move, got %+v", updated)
	}
}

func TestProductService_UpdateUnknownProduct(t *testing.T) {
	categories := newStubCategoryRepo(&domain.Category{ID: "c-1", Name: "Drills"})
	svc := NewProductService(newStubProductRepo(), categories, &stubRecorder{}, zerolog.Nop())

	_, err := svc.Update(context.Background(), "missing", ports.ProductInput{CategoryID: "c-1"}, testActor)
	if !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestProductService_Delete(t *testing.T) {
	categories := newStubCategoryRepo(&domain.Category{ID: "c-1", Name: "Drills"})
	repo := newStubProductRepo()
	recorder := &stubRecorder{}
	svc := NewProductService(repo, categories, recorder, zerolog.Nop())

	created, err := svc.Create(context.Background(), ports.ProductInput{Name: "Screw", CategoryID: "c-1"}, testActor)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := svc.Delete(context.Background(), created.ID, testActor); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.FindByID(context.Background(), created.ID); !errors.Is(err, domain.ErrProductNotFound) {
		t.Errorf("expected product gone, got %v", err)
	}
	if len(recorder.events) != 2 || recorder.events[1].Action != domain.AuditActionDelete {
		t.Errorf("expected delete audit event, got %+v", recorder.events)
	}
}

func TestProductService_FindAllFiltersByName(t *testing.T) {
	categories := newStubCategoryRepo(&domain.Category{ID: "c-1", Name: "Drills"})
	svc := NewProductService(newStubProductRepo(), categories, &stubRecorder{}, zerolog.Nop())

	for _, name := range []string{"Titanium screw", "Resin block", "Screwdriver"} {
		if _, err := svc.Create(context.Background(), ports.ProductInput{Name: name, CategoryID: "c-1"}, testActor); err != nil {
			t.Fatalf("create %q: %v", name, err)
		}
	}

	page, err := svc.FindAll(context.Background(), "screw", 0, 10)
	if err != nil {
		t.Fatalf("find all: %v", err)
	}
	if page.TotalItems != 2 || len(page.Items) != 2 {
		t.Fatalf("expected 2 matches, got total=%d items=%d", page.TotalItems, len(page.Items))
	}
}
