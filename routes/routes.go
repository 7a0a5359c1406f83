package routes

import (
	"resortpay/controllers"
	"resortpay/middleware"
	"resortpay/utils"

	"github.com/gin-gonic/gin"
)

// Dependencies son los servicios que necesitan las rutas; se construyen en main.
type Dependencies struct {
	Database     controllers.Pinger
	Guests       controllers.GuestStore
	Transactions controllers.TransactionStore
	Products     controllers.ProductStore
	Version      string
	// JWTSecret vacío desactiva la autenticación de escritura.
	JWTSecret string
}

func InitializeRoutes(router *gin.Engine, deps Dependencies) {
	system := controllers.NewSystemController(deps.Database, deps.Version)
	guests := controllers.NewGuestController(deps.Guests)
	transactions := controllers.NewTransactionController(deps.Transactions)
	products := controllers.NewProductController(deps.Products)

	staffOnly := middleware.AuthMiddleware(deps.JWTSecret, utils.RoleStaff)

	router.GET("/", system.Root)

	api := router.Group("/api")
	{
		api.GET("/ping", system.Ping)

		api.GET("/huespedes", guests.ListGuests)
		api.GET("/huespedes/:id", guests.GetGuest)
		api.POST("/huespedes", staffOnly, guests.CreateGuest)
		api.PUT("/huespedes/:id", staffOnly, guests.UpdateGuest)
		api.DELETE("/huespedes/:id", staffOnly, guests.DeleteGuest)

		api.GET("/transacciones", transactions.ListTransactions)
		api.GET("/transacciones/huesped/:huespedId", transactions.ListGuestTransactions)
		api.POST("/transacciones", staffOnly, transactions.CreateTransaction)

		api.GET("/productos", products.ListProducts)
		api.POST("/productos", staffOnly, products.CreateProduct)
	}
}
