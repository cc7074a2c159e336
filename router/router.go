package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/inatfood/pos-backend/controllers"
	"github.com/inatfood/pos-backend/kds"
	"github.com/inatfood/pos-backend/middlewares"
	"github.com/inatfood/pos-backend/models"
	"github.com/inatfood/pos-backend/services"
)

func SetupRouter(db *gorm.DB, hub *kds.Hub) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	userCtrl := controllers.NewUserController(db)
	menuItemCtrl := controllers.NewMenuItemController(db, services.NewCloudinaryService())
	orderCtrl := controllers.NewOrderController(db, hub)
	analyticsCtrl := controllers.NewAnalyticsController(db)
	kdsCtrl := controllers.NewKDSController(hub)

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Inat Food POS API is live and running!")
	})

	api := r.Group("/api/v1")

	// USERS
	users := api.Group("/users")
	users.POST("/signup", userCtrl.Signup)
	users.POST("/login", middlewares.NewLoginRateLimiter(), userCtrl.Login)
	users.Use(middlewares.Protect(db))
	users.GET("/me", userCtrl.GetMe)
	users.Use(middlewares.RestrictTo(models.RoleOwner))
	users.GET("", userCtrl.GetAllUsers)
	users.POST("", userCtrl.CreateUser)
	users.GET("/:id", userCtrl.GetUser)
	users.PATCH("/:id", userCtrl.UpdateUser)
	users.DELETE("/:id", userCtrl.DeleteUser)

	// CATEGORIES (list is public so ordering tablets can load the menu)
	categories := api.Group("/categories")
	categories.GET("", controllers.GetAll[models.Category](db))
	categories.Use(middlewares.Protect(db), middlewares.RestrictTo(models.RoleOwner))
	categories.POST("", controllers.CreateOne[models.Category](db))
	categories.GET("/:id", controllers.GetOne[models.Category](db))
	categories.PATCH("/:id", controllers.UpdateOne[models.Category](db))
	categories.DELETE("/:id", controllers.DeleteOne[models.Category](db))

	// MENU ITEMS
	menuItems := api.Group("/menu-items")
	menuItems.GET("", menuItemCtrl.GetAllMenuItems)
	menuItems.Use(middlewares.Protect(db), middlewares.RestrictTo(models.RoleOwner))
	menuItems.POST("/cloudinary-signature", menuItemCtrl.GetCloudinarySignature)
	menuItems.POST("/upload-image", menuItemCtrl.UploadImage)
	menuItems.POST("", controllers.CreateOne[models.MenuItem](db))
	menuItems.GET("/:id", menuItemCtrl.GetMenuItem)
	menuItems.PATCH("/:id", controllers.UpdateOne[models.MenuItem](db))
	menuItems.DELETE("/:id", controllers.DeleteOne[models.MenuItem](db))

	// ADDONS / INGREDIENTS / STOCK (Owner-only master data)
	addons := api.Group("/addons", middlewares.Protect(db), middlewares.RestrictTo(models.RoleOwner))
	addons.GET("", controllers.GetAll[models.Addon](db))
	addons.POST("", controllers.CreateOne[models.Addon](db))
	addons.GET("/:id", controllers.GetOne[models.Addon](db))
	addons.PATCH("/:id", controllers.UpdateOne[models.Addon](db))
	addons.DELETE("/:id", controllers.DeleteOne[models.Addon](db))

	ingredients := api.Group("/ingredients", middlewares.Protect(db), middlewares.RestrictTo(models.RoleOwner))
	ingredients.GET("", controllers.GetAll[models.Ingredient](db))
	ingredients.POST("", controllers.CreateOne[models.Ingredient](db))
	ingredients.GET("/:id", controllers.GetOne[models.Ingredient](db))
	ingredients.PATCH("/:id", controllers.UpdateOne[models.Ingredient](db))
	ingredients.DELETE("/:id", controllers.DeleteOne[models.Ingredient](db))

	stockItems := api.Group("/stock-items", middlewares.Protect(db), middlewares.RestrictTo(models.RoleOwner))
	stockItems.GET("", controllers.GetAll[models.StockItem](db))
	stockItems.POST("", controllers.CreateOne[models.StockItem](db))
	stockItems.GET("/:id", controllers.GetOne[models.StockItem](db))
	stockItems.PATCH("/:id", controllers.UpdateOne[models.StockItem](db))
	stockItems.DELETE("/:id", controllers.DeleteOne[models.StockItem](db))

	// ORDERS
	orders := api.Group("/orders", middlewares.Protect(db))
	orders.GET("/my-active", middlewares.RestrictTo(models.RoleWaitress), orderCtrl.GetMyActiveOrders)
	orders.POST("", middlewares.RestrictTo(models.RoleWaitress), orderCtrl.CreateOrder)
	orders.PATCH("/:id/pay", middlewares.RestrictTo(models.RoleWaitress), orderCtrl.CompleteOrderPayment)
	orders.GET("/active-for-kds", middlewares.RestrictTo(models.RoleKitchen, models.RoleJuiceBar), orderCtrl.GetActiveKdsOrders)
	orders.PATCH("/:id/status", middlewares.RestrictTo(models.RoleKitchen, models.RoleJuiceBar), orderCtrl.UpdateOrderStatus)

	// ANALYTICS
	analytics := api.Group("/analytics", middlewares.Protect(db), middlewares.RestrictTo(models.RoleOwner))
	analytics.GET("/dashboard", analyticsCtrl.GetDashboardAnalytics)
	analytics.GET("/item-sales", analyticsCtrl.GetItemSalesAnalytics)
	analytics.GET("/addon-sales", analyticsCtrl.GetAddonSalesAnalytics)
	analytics.GET("/waitress-details", analyticsCtrl.GetWaitressSalesDetails)
	analytics.DELETE("/reset-sales", analyticsCtrl.ResetSalesAnalytics)

	// Real-time KDS socket
	ws := r.Group("/ws", middlewares.WebSocketAuthMiddleware())
	ws.GET("", kdsCtrl.Handle)

	return r
}
