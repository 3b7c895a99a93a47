package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"tripmood/cmd/fx/accountfx"
	"tripmood/cmd/fx/dbfx"
	"tripmood/cmd/fx/gatewayfx"
	"tripmood/cmd/fx/lookupfx"
	"tripmood/cmd/fx/plannerfx"
	"tripmood/cmd/fx/tripfx"
	"tripmood/internal/api/controllers"
	"tripmood/internal/infra"
	"tripmood/internal/models/db_models"
	"tripmood/internal/repositories"
	"tripmood/internal/services"
	"tripmood/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	app := fx.New(
		dbfx.Module,
		gatewayfx.Module,
		plannerfx.Module,
		lookupfx.Module,
		tripfx.Module,
		accountfx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(BootstrapRoot),
		fx.Invoke(PrunePlanCache),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func BootstrapRoot(accountService services.AccountServiceInterface) {
	if err := accountService.BootstrapRoot(context.Background()); err != nil {
		log.Printf("root account bootstrap failed: %v", err)
	}
}

func PrunePlanCache(planCacheRepo repositories.PlanCacheRepository) {
	removed, err := planCacheRepo.DeleteExpired(context.Background())
	if err != nil {
		log.Printf("plan cache pruning failed: %v", err)
		return
	}
	if removed > 0 {
		log.Printf("pruned %d expired cached plans", removed)
	}
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, db *gorm.DB) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Println("Starting HTTP server at :" + port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			infra.ClosePostgresql(db)
			return nil
		},
	})
}

func ProvideRouter(
	planController *controllers.PlanController,
	lookupController *controllers.LookupController,
	tripController *controllers.TripController,
	accountController *controllers.AccountController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, planController, lookupController, tripController, accountController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	planController *controllers.PlanController,
	lookupController *controllers.LookupController,
	tripController *controllers.TripController,
	accountController *controllers.AccountController) {

	r.POST("/auth/google", accountController.GoogleLogin)
	r.POST("/auth/signup", accountController.SignUp)
	r.POST("/auth/login", accountController.Login)

	api := r.Group("/api")
	api.POST("/itinerary", planController.GenerateItinerary)
	api.GET("/places", lookupController.GetPlaces)
	api.GET("/hotels", lookupController.GetHotels)
	api.GET("/locations", lookupController.GetLocations)

	authed := api.Group("")
	authed.Use(middleware.JWTAuthMiddleware())
	authed.POST("/save", tripController.SaveTrip)
	authed.GET("/plans", tripController.ListTrips)
	authed.PUT("/plans", tripController.UpdateTrip)
	authed.GET("/plans/:id", tripController.GetTrip)
	authed.DELETE("/plans/:id", tripController.DeleteTrip)
	authed.GET("/user/profile", accountController.GetProfile)

	admin := api.Group("/admin")
	admin.Use(middleware.JWTAuthMiddleware())
	admin.GET("/users", middleware.RoleMiddleware(db_models.RoleAdmin, db_models.RoleRoot), accountController.ListUsers)
	admin.PUT("/users/:id/role", middleware.RoleMiddleware(db_models.RoleRoot), accountController.UpdateRole)
	admin.GET("/stats", middleware.RoleMiddleware(db_models.RoleAdmin, db_models.RoleRoot), accountController.GetStats)
}
