package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/elparadero/inventario-api/internal/application/dto"
	"github.com/elparadero/inventario-api/internal/domain"
	"github.com/elparadero/inventario-api/internal/domain/entity"
	"github.com/elparadero/inventario-api/internal/domain/repository"
)

// CatalogUseCase agrupa el CRUD de los catálogos livianos: categorías, marcas
// y proveedores.
type CatalogUseCase struct {
	categories repository.CategoryRepository
	brands     repository.BrandRepository
	suppliers  repository.SupplierRepository
}

// NewCatalogUseCase construye el caso de uso con los tres puertos.
func NewCatalogUseCase(
	categories repository.CategoryRepository,
	brands repository.BrandRepository,
	suppliers repository.SupplierRepository,
) *CatalogUseCase {
	return &CatalogUseCase{categories: categories, brands: brands, suppliers: suppliers}
}

// ── Categorías ────────────────────────────────────────────────────────────────

// CreateCategory crea una categoría.
func (uc *CatalogUseCase) CreateCategory(in dto.NameRequest) (*dto.CategoryResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	c := &entity.Category{ID: uuid.New().String(), Name: in.Name, CreatedAt: time.Now()}
	if err := uc.categories.Create(c); err != nil {
		return nil, err
	}
	return toCategoryResponse(c), nil
}

// UpdateCategory renombra una categoría.
func (uc *CatalogUseCase) UpdateCategory(id string, in dto.NameRequest) (*dto.CategoryResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	c, err := uc.categories.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	c.Name = in.Name
	if err := uc.categories.Update(c); err != nil {
		return nil, err
	}
	return toCategoryResponse(c), nil
}

// ListCategories lista todas las categorías.
func (uc *CatalogUseCase) ListCategories() ([]dto.CategoryResponse, error) {
	list, err := uc.categories.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCategoryResponse(c))
	}
	return items, nil
}

// DeleteCategory elimina una categoría por ID.
func (uc *CatalogUseCase) DeleteCategory(id string) error {
	c, err := uc.categories.GetByID(id)
	if err != nil {
		return err
	}
	if c == nil {
		return domain.ErrNotFound
	}
	return uc.categories.Delete(id)
}

// ── Marcas ────────────────────────────────────────────────────────────────────

// CreateBrand crea una marca.
func (uc *CatalogUseCase) CreateBrand(in dto.NameRequest) (*dto.BrandResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	b := &entity.Brand{ID: uuid.New().String(), Name: in.Name, CreatedAt: time.Now()}
	if err := uc.brands.Create(b); err != nil {
		return nil, err
	}
	return toBrandResponse(b), nil
}

// UpdateBrand renombra una marca.
func (uc *CatalogUseCase) UpdateBrand(id string, in dto.NameRequest) (*dto.BrandResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	b, err := uc.brands.GetByID(id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, domain.ErrNotFound
	}
	b.Name = in.Name
	if err := uc.brands.Update(b); err != nil {
		return nil, err
	}
	return toBrandResponse(b), nil
}

// ListBrands lista todas las marcas.
func (uc *CatalogUseCase) ListBrands() ([]dto.BrandResponse, error) {
	list, err := uc.brands.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.BrandResponse, 0, len(list))
	for _, b := range list {
		items = append(items, *toBrandResponse(b))
	}
	return items, nil
}

// DeleteBrand elimina una marca por ID.
func (uc *CatalogUseCase) DeleteBrand(id string) error {
	b, err := uc.brands.GetByID(id)
	if err != nil {
		return err
	}
	if b == nil {
		return domain.ErrNotFound
	}
	return uc.brands.Delete(id)
}

// ── Proveedores ───────────────────────────────────────────────────────────────

// CreateSupplier crea un proveedor.
func (uc *CatalogUseCase) CreateSupplier(in dto.SupplierRequest) (*dto.SupplierResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	s := &entity.Supplier{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Contact:   in.Contact,
		Phone:     in.Phone,
		Email:     in.Email,
		CreatedAt: time.Now(),
	}
	if err := uc.suppliers.Create(s); err != nil {
		return nil, err
	}
	return toSupplierResponse(s), nil
}

// UpdateSupplier actualiza un proveedor.
func (uc *CatalogUseCase) UpdateSupplier(id string, in dto.SupplierRequest) (*dto.SupplierResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	s, err := uc.suppliers.GetByID(id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	s.Name = in.Name
	s.Contact = in.Contact
	s.Phone = in.Phone
	s.Email = in.Email
	if err := uc.suppliers.Update(s); err != nil {
		return nil, err
	}
	return toSupplierResponse(s), nil
}

// ListSuppliers lista todos los proveedores.
func (uc *CatalogUseCase) ListSuppliers() ([]dto.SupplierResponse, error) {
	list, err := uc.suppliers.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.SupplierResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toSupplierResponse(s))
	}
	return items, nil
}

// DeleteSupplier elimina un proveedor por ID.
func (uc *CatalogUseCase) DeleteSupplier(id string) error {
	s, err := uc.suppliers.GetByID(id)
	if err != nil {
		return err
	}
	if s == nil {
		return domain.ErrNotFound
	}
	return uc.suppliers.Delete(id)
}

func toCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	return &dto.CategoryResponse{ID: c.ID, Name: c.Name, CreatedAt: c.CreatedAt}
}

func toBrandResponse(b *entity.Brand) *dto.BrandResponse {
	return &dto.BrandResponse{ID: b.ID, Name: b.Name, CreatedAt: b.CreatedAt}
}

func toSupplierResponse(s *entity.Supplier) *dto.SupplierResponse {
	return &dto.SupplierResponse{
		ID: s.ID, Name: s.Name, Contact: s.Contact, Phone: s.Phone, Email: s.Email,
		CreatedAt: s.CreatedAt,
	}
}
