package tripfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"tripmood/internal/api/controllers"
	"tripmood/internal/repositories"
	"tripmood/internal/services"
)

var Module = fx.Provide(
	provideTripRepo,
	providePlanCacheRepo,
	provideTripService,
	provideTripController,
)

func provideTripRepo(db *gorm.DB) repositories.TripRepository {
	return repositories.NewTripRepository(db)
}

func providePlanCacheRepo(db *gorm.DB) repositories.PlanCacheRepository {
	return repositories.NewPlanCacheRepository(db)
}

func provideTripService(tripRepo repositories.TripRepository) services.TripServiceInterface {
	return services.NewTripService(tripRepo)
}

func provideTripController(tripService services.TripServiceInterface) *controllers.TripController {
	return controllers.NewTripController(tripService)
}
