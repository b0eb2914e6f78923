package handler

import (
	"net/http"
	"strings"

	"storefront/internal/delivery/api/response"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// CatalogHandlerParams holds dependencies for CatalogHandler, injected by Fx.
type CatalogHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	AccessUC  usecase.AccessUsecase
}

// CatalogHandler serves the gated catalog and the category access gate.
type CatalogHandler struct {
	catalogUC usecase.CatalogUsecase
	accessUC  usecase.AccessUsecase
}

// NewCatalogHandler is the constructor for CatalogHandler.
func NewCatalogHandler(params CatalogHandlerParams) *CatalogHandler {
	return &CatalogHandler{
		catalogUC: params.CatalogUC,
		accessUC:  params.AccessUC,
	}
}

// ListProducts handles GET /products?category=&search=.
func (h *CatalogHandler) ListProducts(c echo.Context) error {
	session, err := sessionFrom(c)
	if err != nil {
		return err
	}

	query := entity.CatalogQuery{
		Category: strings.ToLower(strings.TrimSpace(c.QueryParam("category"))),
		Search:   c.QueryParam("search"),
	}
	products, err := h.catalogUC.ListProducts(c.Request().Context(), session, query)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.List(c, mapViews(products, toProductView))
}

// GetProduct returns one product if it is visible to the caller.
func (h *CatalogHandler) GetProduct(c echo.Context) error {
	session, err := sessionFrom(c)
	if err != nil {
		return err
	}
	productID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	product, err := h.catalogUC.GetProduct(c.Request().Context(), session, productID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProductView(product))
}

// ListBanners returns the active storefront banners.
func (h *CatalogHandler) ListBanners(c echo.Context) error {
	banners, err := h.catalogUC.ListActiveBanners(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.List(c, mapViews(banners, toBannerView))
}

// ListCategories returns every category with the caller's access state and price.
func (h *CatalogHandler) ListCategories(c echo.Context) error {
	session, err := sessionFrom(c)
	if err != nil {
		return err
	}

	categories, err := h.accessUC.ListCategories(c.Request().Context(), session)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.List(c, mapViews(categories, toShopperCategoryView))
}

// PurchaseAccess pays for a category and files the access request.
func (h *CatalogHandler) PurchaseAccess(c echo.Context) error {
	session, err := sessionFrom(c)
	if err != nil {
		return err
	}

	request, err := h.accessUC.PurchaseAccess(c.Request().Context(), session.UserID, c.Param("slug"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toAccessRequestView(request))
}

// ListAccessRequests returns the caller's access purchase history.
func (h *CatalogHandler) ListAccessRequests(c echo.Context) error {
	session, err := sessionFrom(c)
	if err != nil {
		return err
	}

	requests, err := h.accessUC.ListAccessRequests(c.Request().Context(), session.UserID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.List(c, mapViews(requests, toAccessRequestView))
}
