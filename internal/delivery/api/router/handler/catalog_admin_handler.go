package handler

import (
	"io"
	"net/http"

	"storefront/internal/delivery/api/response"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// imageFormField is the multipart field carrying a product image.
const imageFormField = "image"

// CatalogAdminHandlerParams holds dependencies for CatalogAdminHandler, injected by Fx.
type CatalogAdminHandlerParams struct {
	fx.In

	CatalogAdminUC usecase.CatalogAdminUsecase
}

// CatalogAdminHandler serves product, category and banner maintenance.
type CatalogAdminHandler struct {
	catalogAdminUC usecase.CatalogAdminUsecase
}

// NewCatalogAdminHandler is the constructor for CatalogAdminHandler.
func NewCatalogAdminHandler(params CatalogAdminHandlerParams) *CatalogAdminHandler {
	return &CatalogAdminHandler{catalogAdminUC: params.CatalogAdminUC}
}

type ProductRequest struct {
	Name        string          `json:"name" validate:"required,max=200"`
	Description string          `json:"description" validate:"max=5000"`
	Price       decimal.Decimal `json:"price" validate:"dgt=0"`
	Category    string          `json:"category" validate:"required"`
	Rating      float64         `json:"rating" validate:"gte=0,lte=5"`
	ReviewCount int             `json:"review_count" validate:"gte=0"`
	VIPTier     *int            `json:"vip_tier" validate:"omitempty,gte=0"`
}

func (r *ProductRequest) input() *usecase.ProductInput {
	return &usecase.ProductInput{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		Category:    r.Category,
		Rating:      r.Rating,
		ReviewCount: r.ReviewCount,
		VIPTier:     r.VIPTier,
	}
}

type CategoryRequest struct {
	Slug        string           `json:"slug" validate:"required,slug,max=64"`
	Name        string           `json:"name" validate:"required,max=100"`
	Description string           `json:"description" validate:"max=2000"`
	AccessPrice *decimal.Decimal `json:"access_price" validate:"omitempty,dgte=0"`
	VIPTier     *int             `json:"vip_tier" validate:"omitempty,gte=0"`
}

func (r *CategoryRequest) input() *usecase.CategoryInput {
	return &usecase.CategoryInput{
		Slug:        r.Slug,
		Name:        r.Name,
		Description: r.Description,
		AccessPrice: r.AccessPrice,
		VIPTier:     r.VIPTier,
	}
}

type BannerRequest struct {
	Title     string `json:"title" validate:"required,max=200"`
	ImageURL  string `json:"image_url" validate:"required,url"`
	LinkURL   string `json:"link_url" validate:"omitempty,url"`
	Active    bool   `json:"active"`
	SortOrder int    `json:"sort_order"`
}

func (r *BannerRequest) input() *usecase.BannerInput {
	return &usecase.BannerInput{
		Title:     r.Title,
		ImageURL:  r.ImageURL,
		LinkURL:   r.LinkURL,
		Active:    r.Active,
		SortOrder: r.SortOrder,
	}
}

// --- Products ---

// CreateProduct handles POST /admin/products.
func (h *CatalogAdminHandler) CreateProduct(c echo.Context) error {
	var req ProductRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	product, err := h.catalogAdminUC.CreateProduct(c.Request().Context(), req.input())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toProductView(product))
}

// UpdateProduct handles PUT /admin/products/:id.
func (h *CatalogAdminHandler) UpdateProduct(c echo.Context) error {
	productID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	var req ProductRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	product, err := h.catalogAdminUC.UpdateProduct(c.Request().Context(), productID, req.input())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProductView(product))
}

// DeleteProduct handles DELETE /admin/products/:id.
func (h *CatalogAdminHandler) DeleteProduct(c echo.Context) error {
	productID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.catalogAdminUC.DeleteProduct(c.Request().Context(), productID); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// UploadProductImage accepts a multipart "image" file.
func (h *CatalogAdminHandler) UploadProductImage(c echo.Context) error {
	productID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	fileHeader, err := c.FormFile(imageFormField)
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("missing image file")
	}
	file, err := fileHeader.Open()
	if err != nil {
		return errors.Wrap(err, "failed to open uploaded image")
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return errors.Wrap(err, "failed to read uploaded image")
	}

	product, err := h.catalogAdminUC.UploadProductImage(c.Request().Context(), productID, data)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProductView(product))
}

// --- Categories ---

// ListCategories handles GET /admin/categories.
func (h *CatalogAdminHandler) ListCategories(c echo.Context) error {
	categories, err := h.catalogAdminUC.ListCategories(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.List(c, mapViews(categories, toCategoryView))
}

// CreateCategory handles POST /admin/categories.
func (h *CatalogAdminHandler) CreateCategory(c echo.Context) error {
	var req CategoryRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	category, err := h.catalogAdminUC.CreateCategory(c.Request().Context(), req.input())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toCategoryView(category))
}

// UpdateCategory handles PUT /admin/categories/:id. The slug cannot change.
func (h *CatalogAdminHandler) UpdateCategory(c echo.Context) error {
	categoryID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	var req CategoryRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	category, err := h.catalogAdminUC.UpdateCategory(c.Request().Context(), categoryID, req.input())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toCategoryView(category))
}

// DeleteCategory handles DELETE /admin/categories/:id.
func (h *CatalogAdminHandler) DeleteCategory(c echo.Context) error {
	categoryID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.catalogAdminUC.DeleteCategory(c.Request().Context(), categoryID); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// --- Banners ---

// ListBanners handles GET /admin/banners, inactive ones included.
func (h *CatalogAdminHandler) ListBanners(c echo.Context) error {
	banners, err := h.catalogAdminUC.ListBanners(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.List(c, mapViews(banners, toBannerView))
}

// CreateBanner handles POST /admin/banners.
func (h *CatalogAdminHandler) CreateBanner(c echo.Context) error {
	var req BannerRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	banner, err := h.catalogAdminUC.CreateBanner(c.Request().Context(), req.input())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toBannerView(banner))
}

// UpdateBanner handles PUT /admin/banners/:id.
func (h *CatalogAdminHandler) UpdateBanner(c echo.Context) error {
	bannerID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	var req BannerRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	banner, err := h.catalogAdminUC.UpdateBanner(c.Request().Context(), bannerID, req.input())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toBannerView(banner))
}

// DeleteBanner handles DELETE /admin/banners/:id.
func (h *CatalogAdminHandler) DeleteBanner(c echo.Context) error {
	bannerID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.catalogAdminUC.DeleteBanner(c.Request().Context(), bannerID); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}
