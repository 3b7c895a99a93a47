package lookupfx

import (
	"time"

	"go.uber.org/fx"
	"tripmood/internal/api/controllers"
	"tripmood/internal/gateway"
	"tripmood/internal/repositories"
	"tripmood/internal/services"
	mem "tripmood/pkg/memcache"
	"tripmood/pkg/utils"
)

var Module = fx.Provide(
	provideItineraryService,
	provideAttractionService,
	provideBudgetService,
	providePackingService,
	providePlanService,
	providePlanController,
	provideLookupController,
)

const lookupCacheTTL = 6 * time.Hour

func provideItineraryService() services.ItineraryServiceInterface {
	return services.NewItineraryService()
}

func provideAttractionService() services.AttractionServiceInterface {
	return services.NewAttractionService()
}

func provideBudgetService() services.BudgetServiceInterface {
	return services.NewBudgetService()
}

func providePackingService() services.PackingServiceInterface {
	return services.NewPackingService()
}

func providePlanService(
	gw gateway.Client,
	planner utils.PlannerClientInterface,
	itinerary services.ItineraryServiceInterface,
	attraction services.AttractionServiceInterface,
	budget services.BudgetServiceInterface,
	packing services.PackingServiceInterface,
	planCache repositories.PlanCacheRepository,
) services.PlanServiceInterface {
	return services.NewPlanService(
		gw,
		planner,
		itinerary,
		attraction,
		budget,
		packing,
		planCache,
		mem.NewTTLStore(lookupCacheTTL, time.Now),
		mem.NewTTLStore(lookupCacheTTL, time.Now),
	)
}

func providePlanController(planService services.PlanServiceInterface) *controllers.PlanController {
	return controllers.NewPlanController(planService)
}

func provideLookupController(planService services.PlanServiceInterface) *controllers.LookupController {
	return controllers.NewLookupController(planService)
}
