package routes

import (
	"time"

	"github.com/raflyryhnsyh/ApotekQu-sub001/auth"
	"github.com/raflyryhnsyh/ApotekQu-sub001/controllers"
	"github.com/raflyryhnsyh/ApotekQu-sub001/events"
	"github.com/raflyryhnsyh/ApotekQu-sub001/middlewares"
	"github.com/raflyryhnsyh/ApotekQu-sub001/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Deps dikumpulkan di main.go lalu dibagikan ke controller.
type Deps struct {
	Provider       auth.Provider
	Profiles       service.ProfileStore
	Suppliers      service.SupplierStore
	PenyediaProduk service.PenyediaProdukStore
	Orders         service.PurchaseOrderStore
	BarangDiterima service.BarangDiterimaStore
	Katalog        service.KatalogStore
	Events         events.Publisher
	AllowOrigins   []string
}

func corsConfig(origins []string) cors.Config {
	return cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
}

func SetupRoutes(r *gin.Engine, d Deps) {
	authCtrl := &controllers.AuthController{Provider: d.Provider, Profiles: d.Profiles}
	supplierCtrl := &controllers.SupplierController{Suppliers: d.Suppliers, PenyediaProduk: d.PenyediaProduk}
	poCtrl := &controllers.PurchaseOrderController{Orders: d.Orders}
	bdCtrl := &controllers.BarangDiterimaController{Store: d.BarangDiterima, Events: d.Events}
	pengadaanCtrl := &controllers.PengadaanController{Katalog: d.Katalog, Orders: d.Orders, Events: d.Events}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"success": true, "message": "🚀 ApotekQu API is running"})
	})

	api := r.Group("/api")
	{
		authGroup := api.Group("/auth")
		{
			authGroup.POST("/login", authCtrl.Login)
			authGroup.POST("/refresh", authCtrl.Refresh)
		}

		// Semua di bawah butuh bearer token
		protected := api.Group("/", middlewares.AuthRequired(d.Provider))

		protected.POST("/auth/logout", authCtrl.Logout)
		protected.GET("/auth/me", authCtrl.Me)

		protected.GET("/supplier", supplierCtrl.GetAllSupplier)
		protected.GET("/penyedia-produk/:id", supplierCtrl.GetPenyediaProdukByID)

		po := protected.Group("/purchase-order")
		{
			po.GET("", poCtrl.List)
			po.GET("/:id/detail", poCtrl.Detail)
		}

		bd := protected.Group("/detail-barang-diterima")
		{
			bd.POST("", bdCtrl.Create)
			bd.PATCH("/:id", bdCtrl.UpdateNomorBatch)
		}

		pengadaan := protected.Group("/pengadaan")
		{
			pengadaan.GET("/katalog", pengadaanCtrl.GetKatalog)
			pengadaan.POST("/checkout", pengadaanCtrl.Checkout)
		}
	}
}

// NewRouter membuat engine lengkap dengan CORS dan semua route.
func NewRouter(d Deps) *gin.Engine {
	r := gin.Default()
	r.Use(cors.New(corsConfig(d.AllowOrigins)))
	SetupRoutes(r, d)
	return r
}
