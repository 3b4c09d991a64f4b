package echoapi_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"courseboard/core/weekly"
)

func Test_weeklyApi_crud(t *testing.T) {
	srv := setup(t)

	// resource defaults to weeks
	code, env := do(t, srv, http.MethodPost, "/api/weekly", marchallObj(t, map[string]interface{}{
		"title":       "Week 1",
		"start_date":  "2024-01-08",
		"description": "Introduction",
		"links":       []string{"https://example.test/slides"},
	}))
	require.Equal(t, http.StatusCreated, code)

	var created weekly.Week
	decodeData(t, env, &created)
	assert.Equal(t, 1, created.ID)
	assert.Equal(t, []string{"https://example.test/slides"}, created.Links)

	code, env = do(t, srv, http.MethodPost, "/api/weekly?resource=weeks", marchallObj(t, map[string]interface{}{
		"title":       "Week 2",
		"start_date":  "2024-01-15",
		"description": "Types",
	}))
	require.Equal(t, http.StatusCreated, code)
	assert.Contains(t, string(env.Data), `"links":[]`)

	// bad start_date
	code, env = do(t, srv, http.MethodPost, "/api/weekly", marchallObj(t, map[string]interface{}{
		"title":       "Week 3",
		"start_date":  "2024-13-01",
		"description": "x",
	}))
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Contains(t, fieldErrors(t, env), "start_date")

	// list defaults to start_date ascending
	code, env = do(t, srv, http.MethodGet, "/api/weekly")
	require.Equal(t, http.StatusOK, code)
	var weeks []weekly.Week
	decodeData(t, env, &weeks)
	require.Len(t, weeks, 2)
	assert.Equal(t, "Week 1", weeks[0].Title)

	// update returns the freshly stored record
	code, env = do(t, srv, http.MethodPut, "/api/weekly", marchallObj(t, map[string]interface{}{
		"id":    1,
		"links": []string{"https://example.test/slides", "https://example.test/notes"},
	}))
	require.Equal(t, http.StatusOK, code)
	var updated weekly.Week
	decodeData(t, env, &updated)
	assert.Len(t, updated.Links, 2)
	assert.Equal(t, "Week 1", updated.Title)

	code, env = do(t, srv, http.MethodPut, "/api/weekly", marchallObj(t, map[string]interface{}{"id": 42, "title": "x"}))
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "Week not found", messageString(t, env))

	code, _ = do(t, srv, http.MethodDelete, "/api/weekly?id=1")
	require.Equal(t, http.StatusOK, code)
	code, _ = do(t, srv, http.MethodGet, "/api/weekly?id=1")
	assert.Equal(t, http.StatusNotFound, code)
}

func Test_weeklyApi_comments(t *testing.T) {
	srv := setup(t)

	code, _ := do(t, srv, http.MethodPost, "/api/weekly", marchallObj(t, map[string]interface{}{
		"title":       "Week 1",
		"start_date":  "2024-01-08",
		"description": "Introduction",
	}))
	require.Equal(t, http.StatusCreated, code)

	code, env := do(t, srv, http.MethodPost, "/api/weekly?resource=comments", marchallObj(t, map[string]interface{}{
		"week_id": 42,
		"author":  "S1",
		"text":    "Slides missing?",
	}))
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "Week not found", messageString(t, env))

	code, env = do(t, srv, http.MethodPost, "/api/weekly?resource=comments", marchallObj(t, map[string]interface{}{
		"week_id": 1,
		"author":  "S1",
		"text":    "Slides missing?",
	}))
	require.Equal(t, http.StatusCreated, code)
	var c weekly.Comment
	decodeData(t, env, &c)
	assert.Equal(t, 1, c.ID)

	list := func(t *testing.T) []weekly.Comment {
		code, env := do(t, srv, http.MethodGet, "/api/weekly?resource=comments&week_id=1")
		require.Equal(t, http.StatusOK, code)
		var comments []weekly.Comment
		decodeData(t, env, &comments)
		return comments
	}
	assert.Len(t, list(t), 1)

	// deleting the week cascades to its comments
	code, _ = do(t, srv, http.MethodDelete, "/api/weekly?id=1")
	require.Equal(t, http.StatusOK, code)
	assert.Empty(t, list(t))
}
