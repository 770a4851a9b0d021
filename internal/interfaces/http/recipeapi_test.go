package http

import (
	"fmt"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createIngredient(t *testing.T, engine *gin.Engine, name, unit string) string {
	t.Helper()

	w := doRequest(t, engine, "POST", "/api/ingredients",
		fmt.Sprintf(`{"name":%q,"unit":%q}`, name, unit))
	require.Equal(t, 201, w.Code, w.Body.String())
	return decodeBody(t, w)["id"].(string)
}

func createRecipe(t *testing.T, engine *gin.Engine, body string) map[string]interface{} {
	t.Helper()

	w := doRequest(t, engine, "POST", "/api/recipes", body)
	require.Equal(t, 201, w.Code, w.Body.String())
	return decodeBody(t, w)
}

func TestRecipesCreateAPI(t *testing.T) {
	engine := setupTestServer(t)

	sugarID := createIngredient(t, engine, "Sugar", "g")
	flourID := createIngredient(t, engine, "Flour", "g")

	t.Run("round trip with ingredient lines", func(t *testing.T) {
		payload := createRecipe(t, engine, fmt.Sprintf(`{
			"name":" Pancakes ",
			"servings":4,
			"instructions":"Mix and fry.",
			"ingredients":[
				{"ingredientId":%q,"quantity":200},
				{"ingredientId":%q,"quantity":50,"unit":"tbsp"}
			]
		}`, flourID, sugarID))

		assert.Equal(t, "Pancakes", payload["name"])
		assert.Equal(t, 4.0, payload["servings"])
		assert.Nil(t, payload["description"])
		assert.Nil(t, payload["notes"])

		lines := payload["ingredients"].([]interface{})
		require.Len(t, lines, 2)

		// Lines are sorted by ingredient name.
		first := lines[0].(map[string]interface{})
		assert.Equal(t, flourID, first["ingredientId"])
		assert.Equal(t, "g", first["unit"])

		second := lines[1].(map[string]interface{})
		assert.Equal(t, sugarID, second["ingredientId"])
		assert.Equal(t, "tbsp", second["unit"])
		assert.Equal(t, "Sugar", second["ingredient"].(map[string]interface{})["name"])

		w := doRequest(t, engine, "GET", "/api/recipes/"+payload["id"].(string), "")
		require.Equal(t, 200, w.Code)
		assert.Equal(t, "Pancakes", decodeBody(t, w)["name"])
	})

	t.Run("validation order", func(t *testing.T) {
		assertErrorMessage(t, doRequest(t, engine, "POST", "/api/recipes",
			`{"servings":2}`), 400, "name must be a string")
		assertErrorMessage(t, doRequest(t, engine, "POST", "/api/recipes",
			`{"name":"Soup","servings":0}`), 400, "servings must be a finite number > 0")
		assertErrorMessage(t, doRequest(t, engine, "POST", "/api/recipes",
			`{"name":"Soup","servings":2}`), 400, "instructions must be a string")
		assertErrorMessage(t, doRequest(t, engine, "POST", "/api/recipes",
			`{"name":"Soup","servings":2,"instructions":"Simmer.","ingredients":"nope"}`), 400, "ingredients must be an array")
		assertErrorMessage(t, doRequest(t, engine, "POST", "/api/recipes",
			`{"name":" ","servings":2,"instructions":"Simmer.","ingredients":[]}`), 400, "name cannot be empty")
		assertErrorMessage(t, doRequest(t, engine, "POST", "/api/recipes",
			`{"name":"Soup","servings":2,"instructions":" ","ingredients":[]}`), 400, "instructions cannot be empty")
		assertErrorMessage(t, doRequest(t, engine, "POST", "/api/recipes",
			`{"name":"Soup","servings":2,"instructions":"Simmer.","ingredients":[{"quantity":1}]}`), 400, "ingredients[].ingredientId must be a string")
		assertErrorMessage(t, doRequest(t, engine, "POST", "/api/recipes",
			fmt.Sprintf(`{"name":"Soup","servings":2,"instructions":"Simmer.","ingredients":[{"ingredientId":%q,"quantity":0}]}`, sugarID)),
			400, "ingredients[].quantity must be a finite number > 0")
	})

	t.Run("duplicate ingredientId creates no recipe", func(t *testing.T) {
		body := fmt.Sprintf(`{
			"name":"Syrup","servings":1,"instructions":"Boil.",
			"ingredients":[
				{"ingredientId":%q,"quantity":10},
				{"ingredientId":%q,"quantity":20}
			]
		}`, sugarID, sugarID)
		assertErrorMessage(t, doRequest(t, engine, "POST", "/api/recipes", body),
			400, "Duplicate ingredientId in ingredients list")

		w := doRequest(t, engine, "GET", "/api/recipes", "")
		require.Equal(t, 200, w.Code)
		for _, item := range decodeBody(t, w)["recipes"].([]interface{}) {
			assert.NotEqual(t, "Syrup", item.(map[string]interface{})["name"])
		}
	})

	t.Run("unknown ingredientId is rejected", func(t *testing.T) {
		body := `{
			"name":"Mystery","servings":1,"instructions":"None.",
			"ingredients":[{"ingredientId":"ing_missing","quantity":1}]
		}`
		assertErrorMessage(t, doRequest(t, engine, "POST", "/api/recipes", body),
			400, "One or more ingredientId are invalid")
	})
}

func TestRecipesUpdateAPI(t *testing.T) {
	engine := setupTestServer(t)

	payload := createRecipe(t, engine, `{"name":"Soup","servings":2,"instructions":"Simmer.","ingredients":[]}`)
	recipeID := payload["id"].(string)

	t.Run("empty patch is rejected before existence check", func(t *testing.T) {
		assertErrorMessage(t, doRequest(t, engine, "PATCH", "/api/recipes/rcp_missing", `{}`),
			400, "No updatable fields provided")
	})

	t.Run("missing recipe", func(t *testing.T) {
		assertErrorMessage(t, doRequest(t, engine, "PATCH", "/api/recipes/rcp_missing", `{"name":"X"}`),
			404, "Recipe not found")
	})

	t.Run("partial update", func(t *testing.T) {
		w := doRequest(t, engine, "PATCH", "/api/recipes/"+recipeID,
			`{"name":" Tomato Soup ","servings":6,"notes":"Serve hot"}`)
		require.Equal(t, 200, w.Code, w.Body.String())

		updated := decodeBody(t, w)
		assert.Equal(t, "Tomato Soup", updated["name"])
		assert.Equal(t, 6.0, updated["servings"])
		assert.Equal(t, "Serve hot", updated["notes"])
		assert.Equal(t, "Simmer.", updated["instructions"])
	})

	t.Run("null clears nullable fields", func(t *testing.T) {
		w := doRequest(t, engine, "PATCH", "/api/recipes/"+recipeID, `{"notes":null}`)
		require.Equal(t, 200, w.Code, w.Body.String())
		assert.Nil(t, decodeBody(t, w)["notes"])
	})

	t.Run("GET missing recipe", func(t *testing.T) {
		assertErrorMessage(t, doRequest(t, engine, "GET", "/api/recipes/rcp_missing", ""),
			404, "Recipe not found")
	})
}

func TestRecipesReplaceIngredientsAPI(t *testing.T) {
	engine := setupTestServer(t)

	sugarID := createIngredient(t, engine, "Sugar", "g")
	milkID := createIngredient(t, engine, "Milk", "ml")

	payload := createRecipe(t, engine, fmt.Sprintf(
		`{"name":"Pudding","servings":2,"instructions":"Chill.","ingredients":[{"ingredientId":%q,"quantity":30}]}`,
		sugarID))
	recipeID := payload["id"].(string)

	t.Run("missing recipe wins over invalid body", func(t *testing.T) {
		assertErrorMessage(t, doRequest(t, engine, "PATCH", "/api/recipes/rcp_missing/ingredients", `{"bad`),
			404, "Recipe not found")
	})

	t.Run("ingredients must be an array", func(t *testing.T) {
		assertErrorMessage(t, doRequest(t, engine, "PATCH", "/api/recipes/"+recipeID+"/ingredients",
			`{"ingredients":"nope"}`), 400, "ingredients must be an array")
	})

	t.Run("replaces the full set", func(t *testing.T) {
		w := doRequest(t, engine, "PATCH", "/api/recipes/"+recipeID+"/ingredients",
			fmt.Sprintf(`{"ingredients":[{"ingredientId":%q,"quantity":200}]}`, milkID))
		require.Equal(t, 200, w.Code, w.Body.String())

		lines := decodeBody(t, w)["ingredients"].([]interface{})
		require.Len(t, lines, 1)
		assert.Equal(t, milkID, lines[0].(map[string]interface{})["ingredientId"])
	})

	t.Run("duplicate leaves the list unchanged", func(t *testing.T) {
		body := fmt.Sprintf(`{"ingredients":[
			{"ingredientId":%q,"quantity":10},
			{"ingredientId":%q,"quantity":20}
		]}`, sugarID, sugarID)
		assertErrorMessage(t, doRequest(t, engine, "PATCH", "/api/recipes/"+recipeID+"/ingredients", body),
			400, "Duplicate ingredientId in ingredients list")

		w := doRequest(t, engine, "GET", "/api/recipes/"+recipeID, "")
		require.Equal(t, 200, w.Code)
		lines := decodeBody(t, w)["ingredients"].([]interface{})
		require.Len(t, lines, 1)
		assert.Equal(t, milkID, lines[0].(map[string]interface{})["ingredientId"])
	})

	t.Run("empty list clears the recipe", func(t *testing.T) {
		w := doRequest(t, engine, "PATCH", "/api/recipes/"+recipeID+"/ingredients", `{"ingredients":[]}`)
		require.Equal(t, 200, w.Code, w.Body.String())
		assert.Empty(t, decodeBody(t, w)["ingredients"])
	})
}

func TestRecipesDeleteAPI(t *testing.T) {
	engine := setupTestServer(t)

	payload := createRecipe(t, engine, `{"name":"Toast","servings":1,"instructions":"Toast.","ingredients":[]}`)
	recipeID := payload["id"].(string)

	t.Run("missing recipe", func(t *testing.T) {
		assertErrorMessage(t, doRequest(t, engine, "DELETE", "/api/recipes/rcp_missing", ""),
			404, "Recipe not found")
	})

	t.Run("delete returns ok and removes the recipe", func(t *testing.T) {
		w := doRequest(t, engine, "DELETE", "/api/recipes/"+recipeID, "")
		require.Equal(t, 200, w.Code)
		assert.Equal(t, true, decodeBody(t, w)["ok"])

		assertErrorMessage(t, doRequest(t, engine, "GET", "/api/recipes/"+recipeID, ""),
			404, "Recipe not found")
	})
}
