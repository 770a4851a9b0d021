// Package http wires the application use cases into a Gin engine.
package http

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	householdUsecases "larder/internal/application/household/usecases"
	ingredientUsecases "larder/internal/application/ingredient/usecases"
	mealplanUsecases "larder/internal/application/mealplan/usecases"
	pantryUsecases "larder/internal/application/pantry/usecases"
	personUsecases "larder/internal/application/person/usecases"
	recipeUsecases "larder/internal/application/recipe/usecases"
	"larder/internal/infrastructure/repository"
	"larder/internal/interfaces/http/handlers"
	"larder/internal/shared/db"
	"larder/internal/shared/logger"
)

// Router holds the engine and the handlers serving the API.
type Router struct {
	engine            *gin.Engine
	householdHandler  *handlers.HouseholdHandler
	ingredientHandler *handlers.IngredientHandler
	recipeHandler     *handlers.RecipeHandler
	pantryHandler     *handlers.PantryHandler
	personHandler     *handlers.PersonHandler
	mealPlanHandler   *handlers.MealPlanHandler
	assistantHandler  *handlers.AssistantHandler
}

// NewRouter creates a new HTTP router with all dependencies.
func NewRouter(gdb *gorm.DB, log logger.Interface) *Router {
	engine := gin.New()

	tm := db.NewTransactionManager(gdb)

	householdRepo := repository.NewHouseholdRepository(gdb, log)
	ingredientRepo := repository.NewIngredientRepository(gdb, log)
	recipeRepo := repository.NewRecipeRepository(gdb, log)
	pantryRepo := repository.NewPantryItemRepository(gdb, log)
	personRepo := repository.NewPersonRepository(gdb, log)
	mealPlanRepo := repository.NewMealPlanRepository(gdb, log)

	resolver := householdUsecases.NewHouseholdResolver(householdRepo, log)

	householdHandler := handlers.NewHouseholdHandler(
		householdUsecases.NewGetHouseholdUseCase(resolver),
		householdUsecases.NewRenameHouseholdUseCase(resolver, householdRepo, log),
	)

	ingredientHandler := handlers.NewIngredientHandler(
		ingredientUsecases.NewListIngredientsUseCase(ingredientRepo, log),
		ingredientUsecases.NewCreateIngredientUseCase(ingredientRepo, log),
	)

	recipeHandler := handlers.NewRecipeHandler(
		recipeUsecases.NewListRecipesUseCase(resolver, recipeRepo, log),
		recipeUsecases.NewCreateRecipeUseCase(resolver, recipeRepo, ingredientRepo, tm, log),
		recipeUsecases.NewGetRecipeUseCase(resolver, recipeRepo, log),
		recipeUsecases.NewUpdateRecipeUseCase(resolver, recipeRepo, log),
		recipeUsecases.NewDeleteRecipeUseCase(resolver, recipeRepo, tm, log),
		recipeUsecases.NewReplaceIngredientsUseCase(resolver, recipeRepo, ingredientRepo, tm, log),
	)

	pantryHandler := handlers.NewPantryHandler(
		pantryUsecases.NewListPantryUseCase(resolver, pantryRepo, log),
		pantryUsecases.NewCreatePantryItemUseCase(resolver, pantryRepo, ingredientRepo, log),
		pantryUsecases.NewUpdatePantryItemUseCase(resolver, pantryRepo, log),
	)

	personHandler := handlers.NewPersonHandler(
		personUsecases.NewListPeopleUseCase(resolver, personRepo, log),
		personUsecases.NewCreatePersonUseCase(resolver, personRepo, log),
	)

	mealPlanHandler := handlers.NewMealPlanHandler(
		mealplanUsecases.NewListMealPlansUseCase(resolver, mealPlanRepo, log),
		mealplanUsecases.NewCreateMealPlanUseCase(resolver, mealPlanRepo, log),
		mealplanUsecases.NewGetMealPlanUseCase(resolver, mealPlanRepo, log),
		mealplanUsecases.NewListDaysUseCase(resolver, mealPlanRepo, log),
		mealplanUsecases.NewCreateDayUseCase(resolver, mealPlanRepo, log),
		mealplanUsecases.NewGetDayUseCase(resolver, mealPlanRepo, log),
		mealplanUsecases.NewDeleteDayUseCase(resolver, mealPlanRepo, tm, log),
		mealplanUsecases.NewCreateItemUseCase(resolver, mealPlanRepo, recipeRepo, log),
		mealplanUsecases.NewGetItemUseCase(resolver, mealPlanRepo, log),
		mealplanUsecases.NewUpdateItemUseCase(resolver, mealPlanRepo, log),
		mealplanUsecases.NewDeleteItemUseCase(resolver, mealPlanRepo, log),
	)

	return &Router{
		engine:            engine,
		householdHandler:  householdHandler,
		ingredientHandler: ingredientHandler,
		recipeHandler:     recipeHandler,
		pantryHandler:     pantryHandler,
		personHandler:     personHandler,
		mealPlanHandler:   mealPlanHandler,
		assistantHandler:  handlers.NewAssistantHandler(),
	}
}

// Engine exposes the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
