package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type accessService struct {
	txManager         repository.TransactionManager
	categoryRepo      repository.CategoryRepository
	accessRepo        repository.CategoryAccessRepository
	accessRequestRepo repository.AccessRequestRepository
	events            eventEmitter
	logger            *slog.Logger
}

// AccessServiceParams holds dependencies for AccessService, injected by Fx.
type AccessServiceParams struct {
	fx.In

	TxManager         repository.TransactionManager
	CategoryRepo      repository.CategoryRepository
	AccessRepo        repository.CategoryAccessRepository
	AccessRequestRepo repository.AccessRequestRepository
	Publisher         service.EventPublisher
	Logger            *slog.Logger
}

// NewAccessService creates the category access gate.
func NewAccessService(params AccessServiceParams) usecase.AccessUsecase {
	return &accessService{
		txManager:         params.TxManager,
		categoryRepo:      params.CategoryRepo,
		accessRepo:        params.AccessRepo,
		accessRequestRepo: params.AccessRequestRepo,
		events:            newEventEmitter(params.Publisher, params.Logger),
		logger:            params.Logger,
	}
}

func (srv *accessService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListCategories returns every category with the session's gate state and price.
func (srv *accessService) ListCategories(ctx context.Context, session *entity.Session) ([]*usecase.CategoryView, error) {
	categories, err := srv.categoryRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	accessRows, err := srv.accessRepo.ListByUser(ctx, session.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list category access")
	}
	access := entity.NewAccessSet(accessRows)

	currentRequests, err := srv.accessRequestRepo.ListCurrentByUser(ctx, session.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list access requests")
	}
	current := make(map[string]*entity.AccessRequest, len(currentRequests))
	for _, request := range currentRequests {
		current[request.Category] = request
	}

	views := make([]*usecase.CategoryView, 0, len(categories))
	for _, category := range categories {
		row := access[category.Slug]
		state := entity.ResolveAccessState(row, current[category.Slug])
		if session.IsAdmin() {
			state = entity.AccessStateGranted
		}

		views = append(views, &usecase.CategoryView{
			Category:     category,
			State:        state,
			Price:        entity.EffectiveAccessPrice(category, row),
			ProductLimit: access.Limit(category.Slug),
		})
	}

	return views, nil
}

// PurchaseAccess debits the effective price and files a pending request in one
// transaction. Concurrent purchases for the same category collide on the current
// request index and the loser is rolled back, debit included.
func (srv *accessService) PurchaseAccess(ctx context.Context, userID uuid.UUID, category string) (*entity.AccessRequest, error) {
	slug := strings.ToLower(strings.TrimSpace(category))
	srv.log(ctx).Info("Purchasing category access", slog.Any("userID", userID), slog.String("category", slug))

	var request *entity.AccessRequest
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cat, err := repoFactory.CategoryRepo().FindBySlug(ctx, slug)
		if err != nil {
			if errors.Is(err, repository.ErrCategoryNotFound) {
				return domainerrors.ErrCategoryNotFound
			}

			return errors.Wrap(err, "failed to find category")
		}

		access, err := repoFactory.CategoryAccessRepo().FindByUserAndCategory(ctx, userID, slug)
		if err != nil && !errors.Is(err, repository.ErrCategoryAccessNotFound) {
			return errors.Wrap(err, "failed to find category access")
		}

		current, err := repoFactory.AccessRequestRepo().FindCurrent(ctx, userID, slug)
		if err != nil && !errors.Is(err, repository.ErrAccessRequestNotFound) {
			return errors.Wrap(err, "failed to find current access request")
		}

		switch state := entity.ResolveAccessState(access, current); {
		case state == entity.AccessStateGranted:
			return domainerrors.ErrAccessAlreadyGranted
		case state == entity.AccessStateRequestPending:
			return domainerrors.ErrDuplicatePendingRequest
		case !state.CanPurchase():
			return domainerrors.ErrConflict.WithDetails(string(state))
		}

		price := entity.EffectiveAccessPrice(cat, access)
		if price == nil || !price.IsPositive() {
			return domainerrors.ErrCategoryNotForSale
		}

		userRepo := repoFactory.UserRepo()
		user, err := findUser(ctx, userRepo, userID)
		if err != nil {
			return err
		}

		if _, err := debitBalance(ctx, userRepo, userID, user.Balance, *price); err != nil {
			return err
		}

		request = &entity.AccessRequest{
			UserID:    userID,
			Category:  slug,
			PricePaid: *price,
			Status:    entity.ReviewStatusPending,
		}

		return repoFactory.AccessRequestRepo().Create(ctx, request)
	})
	if err != nil {
		srv.log(ctx).Warn("Category purchase failed", slog.Any("userID", userID), slog.String("category", slug), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to purchase category access")
	}

	srv.events.emit(ctx, entity.EventAccessRequestCreated, userID, request.ID.String(), map[string]string{
		"category": slug,
		"price":    request.PricePaid.StringFixed(2),
	})

	return request, nil
}

func (srv *accessService) ListAccessRequests(ctx context.Context, userID uuid.UUID) ([]*entity.AccessRequest, error) {
	requests, err := srv.accessRequestRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list access requests")
	}

	return requests, nil
}

// IsAccessible is true for administrators and for enabled access rows.
func (srv *accessService) IsAccessible(ctx context.Context, session *entity.Session, category string) (bool, error) {
	if session.IsAdmin() {
		return true, nil
	}

	access, err := srv.accessRepo.FindByUserAndCategory(ctx, session.UserID, category)
	if err != nil {
		if errors.Is(err, repository.ErrCategoryAccessNotFound) {
			return false, nil
		}

		return false, errors.Wrap(err, "failed to find category access")
	}

	return entity.AccessSet{category: access}.IsAccessible(session.Role, category), nil
}
