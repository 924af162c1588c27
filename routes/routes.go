package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Jead100/restaurant-api/configs"
	"github.com/Jead100/restaurant-api/controllers"
	"github.com/Jead100/restaurant-api/entity"
	"github.com/Jead100/restaurant-api/middlewares"
	"github.com/Jead100/restaurant-api/repository"
	"github.com/Jead100/restaurant-api/services"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	groupRepo := repository.NewGroupRepository(db)
	catRepo := repository.NewCategoryRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	// Controllers
	authCtrl := controllers.NewAuthController(services.NewAuthService(userRepo, cfg))
	catCtrl := controllers.NewCategoryController(services.NewCategoryService(catRepo, cfg.DemoMode))
	menuCtrl := controllers.NewMenuController(services.NewMenuService(menuRepo, catRepo, cfg.DemoMode))
	cartCtrl := controllers.NewCartController(services.NewCartService(cartRepo, menuRepo, cfg.DemoMode))
	orderCtrl := controllers.NewOrderController(services.NewOrderService(db, orderRepo, cartRepo, groupRepo, cfg.DemoMode))
	managerCtrl := controllers.NewGroupController(
		services.NewGroupService(db, groupRepo, userRepo, orderRepo, entity.GroupManager),
		"Manager", "Managers")
	crewCtrl := controllers.NewGroupController(
		services.NewGroupService(db, groupRepo, userRepo, orderRepo, entity.GroupDeliveryCrew),
		"Delivery crew member", "Delivery crew members")
	userCtrl := controllers.NewUserController(services.NewUserService(userRepo))
	demoCtrl := controllers.NewDemoController(services.NewDemoService(db, userRepo, groupRepo, cfg))

	auth := middlewares.Auth(userRepo, cfg.JWTSecret)

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
		a.POST("/refresh", authCtrl.Refresh)
		a.GET("/me", auth, authCtrl.Me)
	}

	// Menu catalog: anyone may read, managers write.
	cat := r.Group("/categories", auth, middlewares.Require(middlewares.IsManagerOrReadOnly))
	{
		cat.GET("", catCtrl.List)
		cat.GET("/:slug", catCtrl.Retrieve)
		cat.POST("", catCtrl.Create)
		cat.PUT("/:slug", catCtrl.Update)
		cat.PATCH("/:slug", catCtrl.PartialUpdate)
		cat.DELETE("/:slug", catCtrl.Destroy)
	}

	items := r.Group("/items", auth, middlewares.Require(middlewares.IsManagerOrReadOnly))
	{
		items.GET("", menuCtrl.List)
		items.GET("/:id", menuCtrl.Retrieve)
		items.POST("", menuCtrl.Create)
		items.PUT("/:id", menuCtrl.Update)
		items.PATCH("/:id", menuCtrl.PartialUpdate)
		items.DELETE("/:id", menuCtrl.Destroy)
	}

	// Cart: customers only, always scoped to the requester.
	cart := r.Group("/cart", auth, middlewares.Require(middlewares.IsCustomer))
	{
		cart.GET("", cartCtrl.List)
		cart.POST("", cartCtrl.Add)
		cart.DELETE("", cartCtrl.Clear)
		cart.DELETE("/clear", cartCtrl.Clear)
		cart.PUT("/:id", cartCtrl.UpdateQuantity)
		cart.PATCH("/:id", cartCtrl.UpdateQuantity)
		cart.DELETE("/:id", cartCtrl.Remove)
	}

	// Orders: visibility is role-scoped inside the service; the route
	// gates only constrain who may mutate.
	orders := r.Group("/orders", auth)
	{
		orders.GET("", orderCtrl.List)
		orders.GET("/:id", orderCtrl.Retrieve)
		orders.POST("", middlewares.Require(middlewares.IsCustomer), orderCtrl.Create)
		orders.PUT("/:id", middlewares.Require(middlewares.IsManagerOrDeliveryCrew), orderCtrl.Update)
		orders.PATCH("/:id", middlewares.Require(middlewares.IsManagerOrDeliveryCrew), orderCtrl.Update)
		orders.DELETE("/:id", middlewares.Require(middlewares.IsManager), orderCtrl.Destroy)
	}

	// Group rosters: managers read the manager roster, admins change it;
	// the delivery crew roster is open to managers and admins alike.
	mgr := r.Group("/groups/manager/users", auth, middlewares.Require(middlewares.IsManagerForReadOnlyOrAdmin))
	{
		mgr.GET("", managerCtrl.List)
		mgr.GET("/:id", managerCtrl.Retrieve)
		mgr.POST("", managerCtrl.Add)
		mgr.DELETE("/:id", managerCtrl.Remove)
	}

	crew := r.Group("/groups/delivery-crew/users", auth, middlewares.Require(middlewares.IsManagerOrAdmin))
	{
		crew.GET("", crewCtrl.List)
		crew.GET("/:id", crewCtrl.Retrieve)
		crew.POST("", crewCtrl.Add)
		crew.DELETE("/:id", crewCtrl.Remove)
	}

	r.GET("/users/customers", auth, middlewares.Require(middlewares.IsManagerOrAdmin), userCtrl.Customers)

	// Demo sandbox
	demo := r.Group("/demo")
	{
		demo.POST("/login/:role", demoCtrl.Login)
		demo.GET("/me", auth, demoCtrl.Me)
		demo.POST("/purge", auth, middlewares.Require(middlewares.IsAdmin), demoCtrl.Purge)
	}
}
