package http

import (
	"fmt"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createMealPlan(t *testing.T, engine *gin.Engine, name, status string) string {
	t.Helper()

	w := doRequest(t, engine, "POST", "/api/mealplans",
		fmt.Sprintf(`{"name":%q,"status":%q}`, name, status))
	require.Equal(t, 201, w.Code, w.Body.String())
	return decodeBody(t, w)["id"].(string)
}

func createDay(t *testing.T, engine *gin.Engine, planID, date string) string {
	t.Helper()

	w := doRequest(t, engine, "POST", "/api/mealplans/"+planID+"/days",
		fmt.Sprintf(`{"date":%q}`, date))
	require.Equal(t, 201, w.Code, w.Body.String())
	return decodeBody(t, w)["id"].(string)
}

func TestMealPlansAPI(t *testing.T) {
	engine := setupTestServer(t)

	t.Run("POST creates an empty plan", func(t *testing.T) {
		w := doRequest(t, engine, "POST", "/api/mealplans", `{"name":" Week 1 ","status":"draft"}`)
		require.Equal(t, 201, w.Code, w.Body.String())

		payload := decodeBody(t, w)
		assert.Equal(t, "Week 1", payload["name"])
		assert.Equal(t, "draft", payload["status"])
		assert.Empty(t, payload["items"])
	})

	t.Run("POST validation", func(t *testing.T) {
		assertErrorMessage(t, doRequest(t, engine, "POST", "/api/mealplans", `{"status":"draft"}`),
			400, "name must be a string")
		assertErrorMessage(t, doRequest(t, engine, "POST", "/api/mealplans", `{"name":"Week 2"}`),
			400, "status must be one of: draft, active, completed")
		assertErrorMessage(t, doRequest(t, engine, "POST", "/api/mealplans",
			`{"name":"Week 2","status":"paused"}`),
			400, "status must be one of: draft, active, completed")
	})

	t.Run("GET one plan", func(t *testing.T) {
		planID := createMealPlan(t, engine, "Week 3", "active")

		w := doRequest(t, engine, "GET", "/api/mealplans/"+planID, "")
		require.Equal(t, 200, w.Code)
		assert.Equal(t, "active", decodeBody(t, w)["status"])

		assertErrorMessage(t, doRequest(t, engine, "GET", "/api/mealplans/mp_missing", ""),
			404, "MealPlan not found")
	})

	t.Run("GET lists plans", func(t *testing.T) {
		w := doRequest(t, engine, "GET", "/api/mealplans", "")
		require.Equal(t, 200, w.Code)
		assert.NotEmpty(t, decodeBody(t, w)["mealPlans"])
	})
}

func TestMealPlanDaysAPI(t *testing.T) {
	engine := setupTestServer(t)
	planID := createMealPlan(t, engine, "Week 1", "draft")

	t.Run("missing plan wins over invalid body", func(t *testing.T) {
		assertErrorMessage(t, doRequest(t, engine, "POST", "/api/mealplans/mp_missing/days", `{"bad`),
			404, "MealPlan not found")
	})

	t.Run("date validation", func(t *testing.T) {
		assertErrorMessage(t, doRequest(t, engine, "POST", "/api/mealplans/"+planID+"/days", `{}`),
			400, "date must be a string")
		assertErrorMessage(t, doRequest(t, engine, "POST", "/api/mealplans/"+planID+"/days",
			`{"date":"03/01/2026"}`), 400, "date must be an ISO date (YYYY-MM-DD)")
		assertErrorMessage(t, doRequest(t, engine, "POST", "/api/mealplans/"+planID+"/days",
			`{"date":"2024-02-30"}`), 400, "date must be an ISO date (YYYY-MM-DD)")
	})

	t.Run("days list in date order", func(t *testing.T) {
		createDay(t, engine, planID, "2026-03-02")
		createDay(t, engine, planID, "2026-03-01")

		w := doRequest(t, engine, "GET", "/api/mealplans/"+planID+"/days", "")
		require.Equal(t, 200, w.Code)

		days := decodeBody(t, w)["days"].([]interface{})
		require.Len(t, days, 2)
		assert.Equal(t, "2026-03-01", days[0].(map[string]interface{})["date"])
		assert.Equal(t, "2026-03-02", days[1].(map[string]interface{})["date"])
	})

	t.Run("delete day", func(t *testing.T) {
		dayID := createDay(t, engine, planID, "2026-03-03")

		assertErrorMessage(t, doRequest(t, engine, "DELETE", "/api/mealplans/"+planID+"/days/mpd_missing", ""),
			404, "Day not found")

		w := doRequest(t, engine, "DELETE", "/api/mealplans/"+planID+"/days/"+dayID, "")
		require.Equal(t, 200, w.Code)
		assert.Equal(t, true, decodeBody(t, w)["ok"])
	})
}

func TestMealPlanItemsAPI(t *testing.T) {
	engine := setupTestServer(t)

	planID := createMealPlan(t, engine, "Week 1", "draft")
	dayID := createDay(t, engine, planID, "2026-03-01")

	recipePayload := createRecipe(t, engine,
		`{"name":"Pancakes","servings":4,"instructions":"Mix and fry.","ingredients":[]}`)
	recipeID := recipePayload["id"].(string)

	itemsPath := "/api/mealplans/" + planID + "/days/" + dayID + "/items"

	var itemID string

	t.Run("path resolution wins over invalid body", func(t *testing.T) {
		assertErrorMessage(t, doRequest(t, engine, "POST", "/api/mealplans/mp_missing/days/"+dayID+"/items", `{"bad`),
			404, "MealPlan not found")
		assertErrorMessage(t, doRequest(t, engine, "POST", "/api/mealplans/"+planID+"/days/mpd_missing/items", `{"bad`),
			404, "Day not found")
	})

	t.Run("POST validation", func(t *testing.T) {
		assertErrorMessage(t, doRequest(t, engine, "POST", itemsPath, `{}`),
			400, "recipeId must be a string")
		assertErrorMessage(t, doRequest(t, engine, "POST", itemsPath,
			fmt.Sprintf(`{"recipeId":%q,"mealType":"brunch","servings":2}`, recipeID)),
			400, "mealType must be one of: breakfast, lunch, dinner, snack")
		assertErrorMessage(t, doRequest(t, engine, "POST", itemsPath,
			fmt.Sprintf(`{"recipeId":%q,"mealType":"dinner","servings":0}`, recipeID)),
			400, "servings must be a finite number > 0")
		assertErrorMessage(t, doRequest(t, engine, "POST", itemsPath,
			`{"recipeId":"rcp_missing","mealType":"dinner","servings":2}`),
			404, "Recipe not found")
	})

	t.Run("POST plans a recipe on the day", func(t *testing.T) {
		w := doRequest(t, engine, "POST", itemsPath,
			fmt.Sprintf(`{"recipeId":%q,"mealType":"breakfast","servings":2}`, recipeID))
		require.Equal(t, 201, w.Code, w.Body.String())

		payload := decodeBody(t, w)
		itemID = payload["id"].(string)
		assert.Equal(t, "breakfast", payload["mealType"])
		assert.Equal(t, 2.0, payload["servings"])
		assert.Equal(t, recipeID, payload["recipeId"])
		assert.Equal(t, "Pancakes", payload["recipe"].(map[string]interface{})["name"])
	})

	t.Run("items ride along on the days listing", func(t *testing.T) {
		w := doRequest(t, engine, "GET", "/api/mealplans/"+planID+"/days", "")
		require.Equal(t, 200, w.Code)

		days := decodeBody(t, w)["days"].([]interface{})
		require.Len(t, days, 1)
		items := days[0].(map[string]interface{})["items"].([]interface{})
		require.Len(t, items, 1)
		assert.Equal(t, itemID, items[0].(map[string]interface{})["id"])
	})

	t.Run("PATCH path resolution before body", func(t *testing.T) {
		assertErrorMessage(t, doRequest(t, engine, "PATCH", itemsPath+"/mpi_missing", `{"bad`),
			404, "Item not found")
	})

	t.Run("PATCH validation", func(t *testing.T) {
		assertErrorMessage(t, doRequest(t, engine, "PATCH", itemsPath+"/"+itemID, `{}`),
			400, "No updatable fields provided")
		assertErrorMessage(t, doRequest(t, engine, "PATCH", itemsPath+"/"+itemID,
			`{"mealType":"brunch"}`), 400, "mealType must be one of: breakfast, lunch, dinner, snack")
		assertErrorMessage(t, doRequest(t, engine, "PATCH", itemsPath+"/"+itemID,
			`{"servings":-1}`), 400, "servings must be a finite number > 0")
	})

	t.Run("PATCH updates the item", func(t *testing.T) {
		w := doRequest(t, engine, "PATCH", itemsPath+"/"+itemID, `{"mealType":"dinner","servings":3}`)
		require.Equal(t, 200, w.Code, w.Body.String())

		payload := decodeBody(t, w)
		assert.Equal(t, "dinner", payload["mealType"])
		assert.Equal(t, 3.0, payload["servings"])
	})

	t.Run("deleting the day removes its items", func(t *testing.T) {
		w := doRequest(t, engine, "DELETE", "/api/mealplans/"+planID+"/days/"+dayID, "")
		require.Equal(t, 200, w.Code)
		assert.Equal(t, true, decodeBody(t, w)["ok"])

		assertErrorMessage(t, doRequest(t, engine, "DELETE", itemsPath+"/"+itemID, ""),
			404, "Day not found")

		w = doRequest(t, engine, "GET", "/api/mealplans/"+planID+"/days", "")
		require.Equal(t, 200, w.Code)
		assert.Empty(t, decodeBody(t, w)["days"])
	})
}

func TestMealPlanItemDeleteAPI(t *testing.T) {
	engine := setupTestServer(t)

	planID := createMealPlan(t, engine, "Week 1", "draft")
	dayID := createDay(t, engine, planID, "2026-03-01")

	recipePayload := createRecipe(t, engine,
		`{"name":"Soup","servings":2,"instructions":"Simmer.","ingredients":[]}`)
	itemsPath := "/api/mealplans/" + planID + "/days/" + dayID + "/items"

	w := doRequest(t, engine, "POST", itemsPath,
		fmt.Sprintf(`{"recipeId":%q,"mealType":"lunch","servings":2}`, recipePayload["id"]))
	require.Equal(t, 201, w.Code, w.Body.String())
	itemID := decodeBody(t, w)["id"].(string)

	assertErrorMessage(t, doRequest(t, engine, "DELETE", itemsPath+"/mpi_missing", ""),
		404, "Item not found")

	w = doRequest(t, engine, "DELETE", itemsPath+"/"+itemID, "")
	require.Equal(t, 200, w.Code)
	assert.Equal(t, true, decodeBody(t, w)["ok"])

	w = doRequest(t, engine, "GET", "/api/mealplans/"+planID+"/days", "")
	require.Equal(t, 200, w.Code)
	days := decodeBody(t, w)["days"].([]interface{})
	require.Len(t, days, 1)
	assert.Empty(t, days[0].(map[string]interface{})["items"])
}
