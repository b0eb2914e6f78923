package impl

import (
	"context"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type catalogService struct {
	productRepo repository.ProductRepository
	accessRepo  repository.CategoryAccessRepository
	bannerRepo  repository.BannerRepository
	logger      *slog.Logger
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
	AccessRepo  repository.CategoryAccessRepository
	BannerRepo  repository.BannerRepository
	Logger      *slog.Logger
}

// NewCatalogService creates the gated catalog reader.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		productRepo: params.ProductRepo,
		accessRepo:  params.AccessRepo,
		bannerRepo:  params.BannerRepo,
		logger:      params.Logger,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListProducts filters by access and query, then applies per-category limits.
func (srv *catalogService) ListProducts(ctx context.Context, session *entity.Session, query entity.CatalogQuery) ([]*entity.Product, error) {
	snapshot, err := loadCatalogSnapshot(ctx, srv.productRepo, srv.accessRepo, session)
	if err != nil {
		return nil, err
	}

	visible := entity.VisibleProducts(snapshot.products, snapshot.access, session.Role, query)
	limited := entity.LimitProducts(visible, snapshot.access, session.Role, query.Category)

	srv.log(ctx).Debug("Listed products",
		slog.Any("userID", session.UserID),
		slog.String("category", query.Category),
		slog.Int("total", len(snapshot.products)),
		slog.Int("visible", len(visible)),
		slog.Int("returned", len(limited)),
	)

	return limited, nil
}

// GetProduct hides products outside the session's orderable set.
func (srv *catalogService) GetProduct(ctx context.Context, session *entity.Session, productID uuid.UUID) (*entity.Product, error) {
	snapshot, err := loadCatalogSnapshot(ctx, srv.productRepo, srv.accessRepo, session)
	if err != nil {
		return nil, err
	}

	product, ok := snapshot.byID[productID]
	if !ok || !snapshot.isOrderable(productID) {
		return nil, domainerrors.ErrProductNotFound
	}

	return product, nil
}

func (srv *catalogService) OrderableProducts(ctx context.Context, session *entity.Session) ([]*entity.Product, error) {
	snapshot, err := loadCatalogSnapshot(ctx, srv.productRepo, srv.accessRepo, session)
	if err != nil {
		return nil, err
	}

	return snapshot.orderableProducts(), nil
}

func (srv *catalogService) ListActiveBanners(ctx context.Context) ([]*entity.Banner, error) {
	banners, err := srv.bannerRepo.List(ctx, true)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list banners")
	}

	return banners, nil
}
