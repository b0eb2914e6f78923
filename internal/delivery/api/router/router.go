// Package router wires the API handlers onto echo routes.
package router

import (
	"storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/router/handler"
	"storefront/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler         *handler.AuthHandler
	WalletHandler       *handler.WalletHandler
	CatalogHandler      *handler.CatalogHandler
	CartHandler         *handler.CartHandler
	ReferralHandler     *handler.ReferralHandler
	AdminHandler        *handler.AdminHandler
	CatalogAdminHandler *handler.CatalogAdminHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	auth           *handler.AuthHandler
	wallet         *handler.WalletHandler
	catalog        *handler.CatalogHandler
	cart           *handler.CartHandler
	referral       *handler.ReferralHandler
	admin          *handler.AdminHandler
	catalogAdmin   *handler.CatalogAdminHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{
		auth:           params.AuthHandler,
		wallet:         params.WalletHandler,
		catalog:        params.CatalogHandler,
		cart:           params.CartHandler,
		referral:       params.ReferralHandler,
		admin:          params.AdminHandler,
		catalogAdmin:   params.CatalogAdminHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.auth.Register)
		authGroup.POST("/login", r.auth.Login)
		authGroup.POST("/refresh", r.auth.RefreshToken)
		authGroup.POST("/logout", r.auth.Logout)
	}

	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate)

	apiV1.GET("/session", r.auth.Session)
	apiV1.GET("/sessions", r.auth.ListSessions)
	apiV1.POST("/auth/logout-all", r.auth.LogoutAll)
	apiV1.GET("/profile", r.auth.Profile)

	walletGroup := apiV1.Group("/wallet")
	{
		walletGroup.GET("", r.wallet.GetWallet)
		walletGroup.GET("/transactions", r.wallet.ListTransactions)
		walletGroup.POST("/deposits", r.wallet.RequestDeposit)
		walletGroup.POST("/withdrawals", r.wallet.RequestWithdrawal)
	}

	apiV1.GET("/categories", r.catalog.ListCategories)
	apiV1.POST("/categories/:slug/purchase", r.catalog.PurchaseAccess)
	apiV1.GET("/access-requests", r.catalog.ListAccessRequests)
	apiV1.GET("/products", r.catalog.ListProducts)
	apiV1.GET("/products/:id", r.catalog.GetProduct)
	apiV1.GET("/banners", r.catalog.ListBanners)

	cartGroup := apiV1.Group("/cart")
	{
		cartGroup.GET("", r.cart.GetCart)
		cartGroup.DELETE("", r.cart.Clear)
		cartGroup.POST("/items", r.cart.AddItem)
		cartGroup.PUT("/items/:productId", r.cart.UpdateQuantity)
		cartGroup.DELETE("/items/:productId", r.cart.RemoveItem)
	}
	apiV1.POST("/checkout", r.cart.Checkout)
	apiV1.GET("/orders", r.cart.ListOrders)
	apiV1.GET("/orders/:id", r.cart.GetOrder)

	apiV1.GET("/referrals", r.referral.GetSummary)
	apiV1.GET("/referrals/qrcode", r.referral.QRCode)

	r.registerAdminRoutes(apiV1.Group("/admin", r.authMiddleware.RequireRole(entity.RoleAdmin)))
}

func (r *router) registerAdminRoutes(adminGroup *echo.Group) {
	adminGroup.GET("/users", r.admin.ListUsers)
	adminGroup.GET("/users/:id/access", r.admin.GetUserAccess)
	adminGroup.PUT("/users/:id/access", r.admin.SetCategoryAccess)

	adminGroup.GET("/access-requests", r.admin.ListAccessRequests)
	adminGroup.POST("/access-requests/:id/approve", r.admin.ApproveAccessRequest)
	adminGroup.POST("/access-requests/:id/reject", r.admin.RejectAccessRequest)

	adminGroup.GET("/transactions", r.admin.ListTransactions)
	adminGroup.POST("/transactions/:id/approve", r.admin.ApproveTransaction)
	adminGroup.POST("/transactions/:id/reject", r.admin.RejectTransaction)

	adminGroup.GET("/orders", r.admin.ListOrders)
	adminGroup.PUT("/orders/:id/status", r.admin.UpdateOrderStatus)

	adminGroup.GET("/referrals", r.admin.ListReferrals)
	adminGroup.POST("/referrals/:id/pay", r.admin.PayReferral)

	adminGroup.POST("/products", r.catalogAdmin.CreateProduct)
	adminGroup.PUT("/products/:id", r.catalogAdmin.UpdateProduct)
	adminGroup.DELETE("/products/:id", r.catalogAdmin.DeleteProduct)
	adminGroup.POST("/products/:id/image", r.catalogAdmin.UploadProductImage)

	adminGroup.GET("/categories", r.catalogAdmin.ListCategories)
	adminGroup.POST("/categories", r.catalogAdmin.CreateCategory)
	adminGroup.PUT("/categories/:id", r.catalogAdmin.UpdateCategory)
	adminGroup.DELETE("/categories/:id", r.catalogAdmin.DeleteCategory)

	adminGroup.GET("/banners", r.catalogAdmin.ListBanners)
	adminGroup.POST("/banners", r.catalogAdmin.CreateBanner)
	adminGroup.PUT("/banners/:id", r.catalogAdmin.UpdateBanner)
	adminGroup.DELETE("/banners/:id", r.catalogAdmin.DeleteBanner)
}
