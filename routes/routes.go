package routes

import (
	"github.com/cooper235/Canteen-project-sub000/configs"
	"github.com/cooper235/Canteen-project-sub000/controllers"
	"github.com/cooper235/Canteen-project-sub000/middlewares"
	"github.com/cooper235/Canteen-project-sub000/repository"
	"github.com/cooper235/Canteen-project-sub000/services"
	"github.com/cooper235/Canteen-project-sub000/ws"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config, hub *ws.Hub, log zerolog.Logger) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	canteenRepo := repository.NewCanteenRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	reviewRepo := repository.NewReviewRepository(db)

	// Services
	orderSvc := services.NewOrderService(db, orderRepo, menuRepo, canteenRepo, hub)
	ratingSvc := services.NewRatingService(reviewRepo, menuRepo, canteenRepo)
	sentiment := services.NewSentimentClient(cfg.SentimentBaseURL, cfg.SentimentTimeout, log)
	reviewSvc := services.NewReviewService(reviewRepo, orderRepo, menuRepo, canteenRepo, ratingSvc, sentiment)

	// Controllers
	authCtrl := controllers.NewAuthController(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	canteenCtrl := controllers.NewCanteenController(canteenRepo, menuRepo)
	orderCtrl := controllers.NewOrderController(orderSvc)
	canteenOrderCtrl := controllers.NewCanteenOrderController(orderSvc)
	reviewCtrl := controllers.NewReviewController(reviewSvc)
	wsHandler := ws.NewHandler(hub, canteenRepo, log)

	// Auth
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
	}
	a.GET("/me", middlewares.AuthMiddleware(cfg.JWTSecret), authCtrl.Me)

	// Public
	r.GET("/canteens", canteenCtrl.List)
	r.GET("/canteens/:id", canteenCtrl.Detail)
	r.GET("/canteens/:id/menu", canteenCtrl.MenuList)
	r.GET("/canteens/:id/reviews", reviewCtrl.ListForCanteen)
	r.GET("/menu-items/:id/reviews", reviewCtrl.ListForMenuItem)

	// Orders (buyer)
	u := r.Group("/", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		u.POST("/orders", orderCtrl.Create)
		u.GET("/orders/:id", orderCtrl.Detail)
		u.POST("/orders/:id/cancel", orderCtrl.Cancel)
		u.POST("/reviews", reviewCtrl.Create)
		u.DELETE("/reviews/:id", reviewCtrl.Delete)
		u.POST("/reviews/:id/helpful", reviewCtrl.Helpful)
	}

	// Profile
	profile := r.Group("/profile", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		profile.GET("/orders", orderCtrl.ListForMe)
	}

	// Partner Canteen (vendor/admin)
	partner := r.Group("/partner/canteen", middlewares.AuthMiddleware(cfg.JWTSecret, "vendor", "admin"))
	{
		partner.GET("/orders", canteenOrderCtrl.List)
		partner.GET("/orders/:id", canteenOrderCtrl.Detail)
		partner.PATCH("/orders/:id/status", canteenOrderCtrl.Advance)
		partner.PATCH("/orders/:id/payment", canteenOrderCtrl.SetPayment)
		partner.PATCH("/menu/:id", canteenCtrl.UpdateMenuItem)
	}

	// Admin
	admin := r.Group("/admin", middlewares.AuthMiddleware(cfg.JWTSecret, "admin"))
	{
		admin.PATCH("/reviews/:id/status", reviewCtrl.SetStatus)
	}

	// Real-time channel. Clients must re-issue join after every reconnect;
	// membership is never restored server-side.
	r.GET("/ws", middlewares.WSAuthMiddleware(cfg.JWTSecret), wsHandler.HandleWebSocket)
}
