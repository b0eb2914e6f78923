package impl

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// catalogSnapshot is the catalog as one session sees it at a point in time.
type catalogSnapshot struct {
	role      entity.Role
	products  []*entity.Product
	byID      map[uuid.UUID]*entity.Product
	access    entity.AccessSet
	orderable map[uuid.UUID]struct{}
}

func loadCatalogSnapshot(
	ctx context.Context,
	productRepo repository.ProductRepository,
	accessRepo repository.CategoryAccessRepository,
	session *entity.Session,
) (*catalogSnapshot, error) {
	products, err := productRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	access := entity.AccessSet{}
	if !session.IsAdmin() {
		rows, err := accessRepo.ListByUser(ctx, session.UserID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to list category access")
		}
		access = entity.NewAccessSet(rows)
	}

	byID := make(map[uuid.UUID]*entity.Product, len(products))
	for _, product := range products {
		byID[product.ID] = product
	}

	return &catalogSnapshot{
		role:      session.Role,
		products:  products,
		byID:      byID,
		access:    access,
		orderable: entity.OrderableProductIDs(products, access, session.Role),
	}, nil
}

func (s *catalogSnapshot) isOrderable(productID uuid.UUID) bool {
	_, ok := s.orderable[productID]

	return ok
}

// orderableProducts keeps the upstream order of the limited, unfiltered catalog.
func (s *catalogSnapshot) orderableProducts() []*entity.Product {
	return entity.LimitProducts(
		entity.VisibleProducts(s.products, s.access, s.role, entity.CatalogQuery{}),
		s.access, s.role, "",
	)
}
