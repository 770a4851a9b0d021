package jsonbody

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, payload string) *Body {
	t.Helper()
	body, err := Parse(strings.NewReader(payload))
	require.NoError(t, err)
	return body
}

func TestParse(t *testing.T) {
	t.Run("valid object", func(t *testing.T) {
		body, err := Parse(strings.NewReader(`{"name":"Sugar"}`))
		require.NoError(t, err)
		assert.True(t, body.Has("name"))
	})

	t.Run("malformed JSON", func(t *testing.T) {
		_, err := Parse(strings.NewReader(`{"name":`))
		require.Error(t, err)
		assert.Equal(t, "Invalid JSON body", err.Error())
	})

	t.Run("non-object payloads", func(t *testing.T) {
		for _, payload := range []string{`null`, `42`, `"text"`, `[1,2]`} {
			_, err := Parse(strings.NewReader(payload))
			require.Error(t, err, payload)
			assert.Equal(t, "Body must be an object", err.Error(), payload)
		}
	})

	t.Run("empty object", func(t *testing.T) {
		body := parse(t, `{}`)
		assert.True(t, body.Empty())
		assert.False(t, body.Has("name"))
	})

	t.Run("null field counts as present", func(t *testing.T) {
		body := parse(t, `{"name":null}`)
		assert.True(t, body.Has("name"))
		assert.False(t, body.Empty())
	})
}

func TestBodyString(t *testing.T) {
	t.Run("returns value untrimmed", func(t *testing.T) {
		body := parse(t, `{"name":"  Sugar "}`)
		s, err := body.String("name", "name")
		require.NoError(t, err)
		assert.Equal(t, "  Sugar ", s)
	})

	t.Run("rejects absent, null and non-string", func(t *testing.T) {
		for _, payload := range []string{`{}`, `{"name":null}`, `{"name":5}`, `{"name":["a"]}`} {
			body := parse(t, payload)
			_, err := body.String("name", "name")
			require.Error(t, err, payload)
			assert.Equal(t, "name must be a string", err.Error(), payload)
		}
	})

	t.Run("uses the given label", func(t *testing.T) {
		body := parse(t, `{}`)
		_, err := body.String("ingredientId", "ingredients[].ingredientId")
		require.Error(t, err)
		assert.Equal(t, "ingredients[].ingredientId must be a string", err.Error())
	})
}

func TestBodyTrimmedString(t *testing.T) {
	t.Run("trims", func(t *testing.T) {
		body := parse(t, `{"name":"  Sugar "}`)
		s, err := body.TrimmedString("name", "name")
		require.NoError(t, err)
		assert.Equal(t, "Sugar", s)
	})

	t.Run("rejects whitespace-only", func(t *testing.T) {
		body := parse(t, `{"name":"   "}`)
		_, err := body.TrimmedString("name", "name")
		require.Error(t, err)
		assert.Equal(t, "name cannot be empty", err.Error())
	})
}

func TestBodyNullableText(t *testing.T) {
	t.Run("absent and null map to nil", func(t *testing.T) {
		for _, payload := range []string{`{}`, `{"notes":null}`} {
			body := parse(t, payload)
			v, err := body.NullableText("notes", "notes")
			require.NoError(t, err, payload)
			assert.Nil(t, v, payload)
		}
	})

	t.Run("empty after trim maps to nil", func(t *testing.T) {
		body := parse(t, `{"notes":"   "}`)
		v, err := body.NullableText("notes", "notes")
		require.NoError(t, err)
		assert.Nil(t, v)
	})

	t.Run("trims kept values", func(t *testing.T) {
		body := parse(t, `{"notes":" keep refrigerated "}`)
		v, err := body.NullableText("notes", "notes")
		require.NoError(t, err)
		require.NotNil(t, v)
		assert.Equal(t, "keep refrigerated", *v)
	})

	t.Run("rejects non-strings", func(t *testing.T) {
		body := parse(t, `{"notes":12}`)
		_, err := body.NullableText("notes", "notes")
		require.Error(t, err)
		assert.Equal(t, "notes must be a string", err.Error())
	})
}

func TestBodyPositiveNumber(t *testing.T) {
	t.Run("accepts positive floats", func(t *testing.T) {
		body := parse(t, `{"servings":2.5}`)
		v, err := body.PositiveNumber("servings", "servings")
		require.NoError(t, err)
		assert.Equal(t, 2.5, v)
	})

	t.Run("rejects zero, negatives and non-numbers", func(t *testing.T) {
		for _, payload := range []string{
			`{"servings":0}`, `{"servings":-1}`, `{"servings":"4"}`, `{"servings":null}`, `{}`,
		} {
			body := parse(t, payload)
			_, err := body.PositiveNumber("servings", "servings")
			require.Error(t, err, payload)
			assert.Equal(t, "servings must be a finite number > 0", err.Error(), payload)
		}
	})
}

func TestBodyNumber(t *testing.T) {
	body := parse(t, `{"portionFactor":0.5}`)
	v, err := body.Number("portionFactor", "portionFactor")
	require.NoError(t, err)
	assert.Equal(t, 0.5, v)

	body = parse(t, `{"portionFactor":"big"}`)
	_, err = body.Number("portionFactor", "portionFactor")
	require.Error(t, err)
	assert.Equal(t, "portionFactor must be a finite number", err.Error())
}

func TestBodyEnum(t *testing.T) {
	const msg = "availability must be HAVE, LOW, or OUT"

	t.Run("accepts allowed values", func(t *testing.T) {
		body := parse(t, `{"availability":"LOW"}`)
		v, err := body.Enum("availability", msg, "HAVE", "LOW", "OUT")
		require.NoError(t, err)
		assert.Equal(t, "LOW", v)
	})

	t.Run("rejects everything else with the given message", func(t *testing.T) {
		for _, payload := range []string{
			`{"availability":"have"}`, `{"availability":5}`, `{"availability":null}`, `{}`,
		} {
			body := parse(t, payload)
			_, err := body.Enum("availability", msg, "HAVE", "LOW", "OUT")
			require.Error(t, err, payload)
			assert.Equal(t, msg, err.Error(), payload)
		}
	})
}

func TestBodyObjects(t *testing.T) {
	t.Run("returns element bodies", func(t *testing.T) {
		body := parse(t, `{"ingredients":[{"ingredientId":"ing_1","quantity":2}]}`)
		elems, err := body.Objects("ingredients", "ingredients")
		require.NoError(t, err)
		require.Len(t, elems, 1)

		id, err := elems[0].String("ingredientId", "ingredients[].ingredientId")
		require.NoError(t, err)
		assert.Equal(t, "ing_1", id)
	})

	t.Run("rejects non-arrays", func(t *testing.T) {
		for _, payload := range []string{`{"ingredients":"none"}`, `{"ingredients":null}`, `{}`} {
			body := parse(t, payload)
			_, err := body.Objects("ingredients", "ingredients")
			require.Error(t, err, payload)
			assert.Equal(t, "ingredients must be an array", err.Error(), payload)
		}
	})

	t.Run("non-object elements fail per-field checks", func(t *testing.T) {
		body := parse(t, `{"ingredients":[5]}`)
		elems, err := body.Objects("ingredients", "ingredients")
		require.NoError(t, err)
		require.Len(t, elems, 1)

		_, err = elems[0].String("ingredientId", "ingredients[].ingredientId")
		require.Error(t, err)
		assert.Equal(t, "ingredients[].ingredientId must be a string", err.Error())
	})

	t.Run("empty array is valid", func(t *testing.T) {
		body := parse(t, `{"ingredients":[]}`)
		elems, err := body.Objects("ingredients", "ingredients")
		require.NoError(t, err)
		assert.Empty(t, elems)
	})
}
