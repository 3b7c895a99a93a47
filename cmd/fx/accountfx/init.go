package accountfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"tripmood/internal/api/controllers"
	"tripmood/internal/repositories"
	"tripmood/internal/services"
)

var Module = fx.Provide(
	provideAccountRepo,
	provideAccountService,
	provideAccountController,
)

func provideAccountRepo(db *gorm.DB) repositories.AccountRepository {
	return repositories.NewAccountRepository(db)
}

func provideAccountService(
	accountRepo repositories.AccountRepository,
	tripRepo repositories.TripRepository,
	planCacheRepo repositories.PlanCacheRepository,
) services.AccountServiceInterface {
	return services.NewAccountService(accountRepo, tripRepo, planCacheRepo)
}

func provideAccountController(accountService services.AccountServiceInterface) *controllers.AccountController {
	return controllers.NewAccountController(accountService)
}
