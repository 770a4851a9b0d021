package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"larder/internal/infrastructure/config"
	"larder/internal/interfaces/http/middleware"
	"larder/internal/shared/logger"
)

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes(cfg *config.Config) {
	r.engine.Use(middleware.Logger(logger.NewLogger()))
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.CORS(cfg.Server.AllowedOrigins))

	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.engine.Group("/api")

	r.setupHouseholdRoutes(api)
	r.setupIngredientRoutes(api)
	r.setupRecipeRoutes(api)
	r.setupPantryRoutes(api)
	r.setupPeopleRoutes(api)
	r.setupMealPlanRoutes(api)
	r.setupAssistantRoutes(api)
}

func (r *Router) setupHouseholdRoutes(api *gin.RouterGroup) {
	api.GET("/household", r.householdHandler.GetHousehold)
	api.PUT("/household", r.householdHandler.RenameHousehold)
}

func (r *Router) setupIngredientRoutes(api *gin.RouterGroup) {
	api.GET("/ingredients", r.ingredientHandler.ListIngredients)
	api.POST("/ingredients", r.ingredientHandler.CreateIngredient)
}

func (r *Router) setupRecipeRoutes(api *gin.RouterGroup) {
	recipes := api.Group("/recipes")
	{
		recipes.GET("", r.recipeHandler.ListRecipes)
		recipes.POST("", r.recipeHandler.CreateRecipe)
		recipes.GET("/:id", r.recipeHandler.GetRecipe)
		recipes.PATCH("/:id", r.recipeHandler.UpdateRecipe)
		recipes.DELETE("/:id", r.recipeHandler.DeleteRecipe)
		recipes.PATCH("/:id/ingredients", r.recipeHandler.ReplaceIngredients)
	}
}

func (r *Router) setupPantryRoutes(api *gin.RouterGroup) {
	pantry := api.Group("/pantry")
	{
		pantry.GET("", r.pantryHandler.ListPantry)
		pantry.POST("", r.pantryHandler.CreatePantryItem)
		pantry.PATCH("/:id", r.pantryHandler.UpdatePantryItem)
	}
}

func (r *Router) setupPeopleRoutes(api *gin.RouterGroup) {
	api.GET("/people", r.personHandler.ListPeople)
	api.POST("/people", r.personHandler.CreatePerson)
}

func (r *Router) setupMealPlanRoutes(api *gin.RouterGroup) {
	plans := api.Group("/mealplans")
	{
		plans.GET("", r.mealPlanHandler.ListMealPlans)
		plans.POST("", r.mealPlanHandler.CreateMealPlan)
		plans.GET("/:mealPlanId", r.mealPlanHandler.GetMealPlan)

		plans.GET("/:mealPlanId/days", r.mealPlanHandler.ListDays)
		plans.POST("/:mealPlanId/days", r.mealPlanHandler.CreateDay)
		plans.DELETE("/:mealPlanId/days/:dayId", r.mealPlanHandler.DeleteDay)

		plans.POST("/:mealPlanId/days/:dayId/items", r.mealPlanHandler.CreateItem)
		plans.PATCH("/:mealPlanId/days/:dayId/items/:itemId", r.mealPlanHandler.UpdateItem)
		plans.DELETE("/:mealPlanId/days/:dayId/items/:itemId", r.mealPlanHandler.DeleteItem)
	}
}

func (r *Router) setupAssistantRoutes(api *gin.RouterGroup) {
	api.GET("/assistant", r.assistantHandler.GetStatus)
}
