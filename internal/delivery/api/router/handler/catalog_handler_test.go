package handler

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	mockUC "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupCatalogHandler(t *testing.T, session *entity.Session) (*echo.Echo, *mockUC.MockCatalogUsecase, *mockUC.MockAccessUsecase) {
	catalogUC := mockUC.NewMockCatalogUsecase(t)
	accessUC := mockUC.NewMockAccessUsecase(t)
	h := NewCatalogHandler(CatalogHandlerParams{CatalogUC: catalogUC, AccessUC: accessUC})

	e := newTestEcho()
	g := e.Group("/api/v1", withSession(session))
	g.GET("/products", h.ListProducts)
	g.GET("/categories", h.ListCategories)
	g.POST("/categories/:slug/purchase", h.PurchaseAccess)

	return e, catalogUC, accessUC
}

func TestCatalogHandler_ListProducts_Query(t *testing.T) {
	session := clientSession()
	e, catalogUC, _ := setupCatalogHandler(t, session)
	catalogUC.EXPECT().
		ListProducts(mock.Anything, session, entity.CatalogQuery{Category: "kitchen", Search: "mug"}).
		Return([]*entity.Product{{ID: uuid.New(), Name: "Blue Mug", Category: "kitchen", Price: decimal.RequireFromString("5")}}, nil)

	rec, env := doJSON(t, e, http.MethodGet, "/api/v1/products?category=%20Kitchen&search=mug", nil)

	requireStatus(t, rec, http.StatusOK)
	var got []ProductView
	decodeData(t, env, &got)
	require.Len(t, got, 1)
	assert.Equal(t, "Blue Mug", got[0].Name)
	assert.Equal(t, 1, *env.Meta.Count)
}

func TestCatalogHandler_ListCategories(t *testing.T) {
	session := clientSession()
	e, _, accessUC := setupCatalogHandler(t, session)
	price := decimal.RequireFromString("30")
	accessUC.EXPECT().ListCategories(mock.Anything, session).Return([]*usecase.CategoryView{
		{Category: &entity.Category{Slug: "premium", Name: "Premium"}, State: entity.AccessStateRejected, Price: &price},
		{Category: &entity.Category{Slug: "basic", Name: "Basic"}, State: entity.AccessStateGranted, ProductLimit: 4},
	}, nil)

	rec, env := doJSON(t, e, http.MethodGet, "/api/v1/categories", nil)

	requireStatus(t, rec, http.StatusOK)
	var got []CategoryView
	decodeData(t, env, &got)
	require.Len(t, got, 2)
	assert.Equal(t, entity.AccessStateRejected, got[0].State)
	assert.Equal(t, "30", got[0].AccessPrice.String())
	assert.Nil(t, got[1].AccessPrice)
	assert.Equal(t, 4, *got[1].ProductLimit)
}

func TestCatalogHandler_PurchaseAccess(t *testing.T) {
	t.Run("pending request", func(t *testing.T) {
		session := clientSession()
		e, _, accessUC := setupCatalogHandler(t, session)
		accessUC.EXPECT().PurchaseAccess(mock.Anything, session.UserID, "premium").Return(&entity.AccessRequest{
			ID:        uuid.New(),
			Category:  "premium",
			PricePaid: decimal.RequireFromString("30"),
			Status:    entity.ReviewStatusPending,
			IsCurrent: true,
		}, nil)

		rec, env := doJSON(t, e, http.MethodPost, "/api/v1/categories/premium/purchase", nil)

		requireStatus(t, rec, http.StatusCreated)
		var got AccessRequestView
		decodeData(t, env, &got)
		assert.Equal(t, entity.ReviewStatusPending, got.Status)
	})

	t.Run("duplicate pending request", func(t *testing.T) {
		session := clientSession()
		e, _, accessUC := setupCatalogHandler(t, session)
		accessUC.EXPECT().PurchaseAccess(mock.Anything, session.UserID, "premium").Return(nil, domainerrors.ErrDuplicatePendingRequest)

		rec, env := doJSON(t, e, http.MethodPost, "/api/v1/categories/premium/purchase", nil)

		requireStatus(t, rec, http.StatusConflict)
		assert.Equal(t, "DUPLICATE_PENDING_REQUEST", env.Error.Code)
	})
}

func setupCatalogAdminHandler(t *testing.T) (*echo.Echo, *mockUC.MockCatalogAdminUsecase) {
	catalogAdminUC := mockUC.NewMockCatalogAdminUsecase(t)
	h := NewCatalogAdminHandler(CatalogAdminHandlerParams{CatalogAdminUC: catalogAdminUC})

	e := newTestEcho()
	g := e.Group("/api/v1/admin", withSession(adminSession()))
	g.POST("/products", h.CreateProduct)
	g.POST("/products/:id/image", h.UploadProductImage)
	g.POST("/categories", h.CreateCategory)
	g.POST("/banners", h.CreateBanner)

	return e, catalogAdminUC
}

func TestCatalogAdminHandler_UploadProductImage(t *testing.T) {
	productID := uuid.New()
	png := []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

	newUpload := func(t *testing.T, field string) *http.Request {
		var body bytes.Buffer
		writer := multipart.NewWriter(&body)
		part, err := writer.CreateFormFile(field, "mug.png")
		require.NoError(t, err)
		_, err = part.Write(png)
		require.NoError(t, err)
		require.NoError(t, writer.Close())

		req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/products/"+productID.String()+"/image", &body)
		req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())

		return req
	}

	t.Run("stores the file bytes", func(t *testing.T) {
		e, catalogAdminUC := setupCatalogAdminHandler(t)
		catalogAdminUC.EXPECT().UploadProductImage(mock.Anything, productID, png).
			Return(&entity.Product{ID: productID, ImageURL: "https://cdn/mug.png"}, nil)

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, newUpload(t, imageFormField))

		requireStatus(t, rec, http.StatusOK)
		assert.Contains(t, rec.Body.String(), "https://cdn/mug.png")
	})

	t.Run("wrong field name", func(t *testing.T) {
		e, _ := setupCatalogAdminHandler(t)

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, newUpload(t, "file"))

		requireStatus(t, rec, http.StatusBadRequest)
		assert.Contains(t, rec.Body.String(), "missing image file")
	})
}

func TestCatalogAdminHandler_Create_Validation(t *testing.T) {
	tests := []struct {
		name  string
		path  string
		body  string
		field string
	}{
		{name: "product without price", path: "/api/v1/admin/products", body: `{"name":"Mug","category":"kitchen"}`, field: "price"},
		{name: "product rating above five", path: "/api/v1/admin/products", body: `{"name":"Mug","category":"kitchen","price":"3","rating":7}`, field: "rating"},
		{name: "category slug with spaces", path: "/api/v1/admin/categories", body: `{"slug":"home decor","name":"Home"}`, field: "slug"},
		{name: "banner image is not a url", path: "/api/v1/admin/banners", body: `{"title":"Sale","image_url":"banner.png"}`, field: "image_url"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _ := setupCatalogAdminHandler(t)

			rec, _ := doJSON(t, e, http.MethodPost, tt.path, tt.body)

			requireStatus(t, rec, http.StatusBadRequest)
			assert.Contains(t, rec.Body.String(), `"field":"`+tt.field+`"`)
		})
	}
}

func TestCatalogAdminHandler_CreateCategory(t *testing.T) {
	e, catalogAdminUC := setupCatalogAdminHandler(t)
	catalogAdminUC.EXPECT().
		CreateCategory(mock.Anything, mock.MatchedBy(func(in *usecase.CategoryInput) bool {
			return in.Slug == "home-decor" && in.AccessPrice != nil && in.AccessPrice.Equal(decimal.RequireFromString("5"))
		})).
		Return(&entity.Category{ID: uuid.New(), Slug: "home-decor", Name: "Home"}, nil)

	rec, _ := doJSON(t, e, http.MethodPost, "/api/v1/admin/categories", `{"slug":"home-decor","name":"Home","access_price":"5"}`)

	requireStatus(t, rec, http.StatusCreated)
}
