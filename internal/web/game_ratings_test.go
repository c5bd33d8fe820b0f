package web

import (
	"encoding/json"
	"fmt"
	"gamerating/internal/back"
	"gamerating/internal/config"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/go-chi/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type getAllResponse struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Games   []back.GameRating `json:"games"`
}

func TestGetAllEmptyOnStart(t *testing.T) {
	h := newTestHandler(t, config.Default())

	res := get(h, "/get-all")
	require.Equal(t, http.StatusOK, res.Code)
	assert.Contains(t, res.Header().Get("Content-Type"), "application/json")
	assert.JSONEq(t, `{"success":true,"games":[]}`, res.Body.String())
}

func TestAddThenGetAll(t *testing.T) {
	h := newTestHandler(t, config.Default())

	res := post(h, "/add", chessForm(), "")
	require.Equal(t, http.StatusOK, res.Code)
	assert.True(t, strings.HasPrefix(res.Body.String(), "New game has been added into the database with ID: "))
	assert.True(t, strings.HasSuffix(res.Body.String(), ", Name: Chess, Author: Ancient, Game Rating: 5 and Comments: Classic"))

	all := getAll(t, h)
	require.Len(t, all.Games, 1)
	game := all.Games[0]
	assert.NotEmpty(t, game.ID)
	assert.Contains(t, res.Body.String(), game.ID)
	assert.Equal(t, "Chess", game.Name.String)
	assert.Equal(t, "Ancient", game.Author.String)
	assert.Equal(t, "5", game.Rating.String)
	assert.Equal(t, "Classic", game.Comments.String)
}

func TestAddAsJSON(t *testing.T) {
	h := newTestHandler(t, config.Default())

	res := post(h, "/add", chessForm(), "application/json")
	require.Equal(t, http.StatusOK, res.Code)

	var body struct {
		Success bool            `json:"success"`
		Message string          `json:"message"`
		Game    back.GameRating `json:"game"`
	}
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Contains(t, body.Message, body.Game.ID)
	assert.Equal(t, "Chess", body.Game.Name.String)
}

func TestAddWithAbsentFields(t *testing.T) {
	h := newTestHandler(t, config.Default())

	res := post(h, "/add", url.Values{"name": {"Go"}, "rating": {""}}, "")
	require.Equal(t, http.StatusOK, res.Code)

	res = get(h, "/get-all")
	require.Equal(t, http.StatusOK, res.Code)
	assert.Contains(t, res.Body.String(), `"author":null`)
	assert.Contains(t, res.Body.String(), `"rating":""`)
}

func TestView(t *testing.T) {
	h := newTestHandler(t, config.Default())
	require.Equal(t, http.StatusOK, post(h, "/add", chessForm(), "").Code)
	id := getAll(t, h).Games[0].ID

	res := post(h, "/view", url.Values{"name": {"Chess"}}, "")
	require.Equal(t, http.StatusOK, res.Code)
	assert.Equal(t,
		"Game details: id: "+id+", name: Chess, author: Ancient, rating: 5, comments: Classic",
		res.Body.String(),
	)

	for _, form := range []url.Values{{"name": {"chess"}}, {}} {
		res = post(h, "/view", form, "")
		assert.Equal(t, http.StatusNotFound, res.Code)
		assert.Equal(t, "No games were found with that name", res.Body.String())
	}

	assert.Len(t, getAll(t, h).Games, 1)
}

func TestUpdate(t *testing.T) {
	h := newTestHandler(t, config.Default())
	require.Equal(t, http.StatusOK, post(h, "/add", chessForm(), "").Code)
	id := getAll(t, h).Games[0].ID

	form := url.Values{
		"id":       {id},
		"name":     {"Go"},
		"author":   {"Ancient"},
		"rating":   {"4"},
		"comments": {"Subtle"},
	}
	for i := 0; i < 2; i++ {
		res := post(h, "/update", form, "")
		require.Equal(t, http.StatusOK, res.Code)
		assert.Equal(t,
			"Game rating has been updated successfully. ID: "+id+", Name: Go, Author: Ancient, Game Rating: 4 and Comments: Subtle",
			res.Body.String(),
		)

		all := getAll(t, h)
		require.Len(t, all.Games, 1)
		assert.Equal(t, id, all.Games[0].ID)
		assert.Equal(t, "Go", all.Games[0].Name.String)
		assert.Equal(t, "Subtle", all.Games[0].Comments.String)
	}

	form.Set("id", "missing")
	res := post(h, "/update", form, "")
	assert.Equal(t, http.StatusNotFound, res.Code)
	assert.Equal(t, "No game with the ID missing was found", res.Body.String())
}

func TestDelete(t *testing.T) {
	h := newTestHandler(t, config.Default())
	require.Equal(t, http.StatusOK, post(h, "/add", chessForm(), "").Code)
	id := getAll(t, h).Games[0].ID

	res := post(h, "/delete", url.Values{"id": {id}}, "")
	require.Equal(t, http.StatusOK, res.Code)
	assert.Equal(t, "Game rating with ID: "+id+" has been deleted.", res.Body.String())
	assert.Empty(t, getAll(t, h).Games)

	res = post(h, "/delete", url.Values{"id": {id}}, "")
	assert.Equal(t, http.StatusNotFound, res.Code)
	assert.Equal(t, "No game with the ID "+id+" was found", res.Body.String())

	res = post(h, "/delete", url.Values{"id": {id}}, "application/json")
	assert.Equal(t, http.StatusNotFound, res.Code)
	assert.JSONEq(t, `{"success":false,"message":"No game with the ID `+id+` was found"}`, res.Body.String())
}

func TestClose(t *testing.T) {
	h := newTestHandler(t, config.Default())

	res := get(h, "/close")
	require.Equal(t, http.StatusOK, res.Code)
	assert.Equal(t, "Database connection successfully closed", res.Body.String())

	res = get(h, "/get-all")
	assert.Equal(t, http.StatusInternalServerError, res.Code)
	assert.JSONEq(t, `{"success":false,"message":"Error encountered while getting all"}`, res.Body.String())

	for path, message := range map[string]string{
		"/add":    "Error encountered while adding",
		"/view":   "Error encountered while displaying",
		"/update": "Error encountered while updating",
		"/delete": "Error encountered while deleting",
	} {
		res = post(h, path, chessForm(), "")
		assert.Equal(t, http.StatusInternalServerError, res.Code, path)
		assert.Equal(t, message, res.Body.String(), path)
	}

	res = get(h, "/close")
	assert.Equal(t, http.StatusInternalServerError, res.Code)
	assert.Equal(t, "There is some error in closing the database", res.Body.String())
}

func TestStatic(t *testing.T) {
	h := newTestHandler(t, config.Default())

	res := get(h, "/")
	require.Equal(t, http.StatusOK, res.Code)
	assert.Contains(t, res.Body.String(), `id="form-add"`)

	res = get(h, "/main.js")
	require.Equal(t, http.StatusOK, res.Code)
	assert.Contains(t, res.Body.String(), "/get-all")

	assert.Equal(t, http.StatusNotFound, get(h, "/nope.html").Code)
}

func TestAcceptedContentType(t *testing.T) {
	cases := map[string]bool{
		"":                                         false,
		"*/*":                                      false,
		"text/plain":                               false,
		"application/json":                         true,
		"application/json; charset=utf-8":          true,
		"text/html, application/json;q=0.9":        true,
		"text/plain, application/json":             false,
		"application/xml, application/json, */*":   true,
		"application/json;q=0, text/plain":         false,
		"application/json;q=0":                     false,
		"text/plain;q=0.5, application/json":       true,
		"application/json;q=0.5, text/plain;q=0.8": false,
		"*/*, application/json":                    true,
	}

	for accept, expected := range cases {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set("Accept", accept)
		assert.Equal(t, expected, acceptedContentType(r) == render.ContentTypeJSON, accept)
	}
}

func TestRefusedJSONFallsBackToText(t *testing.T) {
	h := newTestHandler(t, config.Default())

	res := post(h, "/view", url.Values{"name": {"Chess"}}, "application/json;q=0, text/plain")
	assert.Equal(t, http.StatusNotFound, res.Code)
	assert.Contains(t, res.Header().Get("Content-Type"), "text/plain")
	assert.Equal(t, "No games were found with that name", res.Body.String())
}

func TestConcurrentRequests(t *testing.T) {
	const n = 50
	h := newTestHandler(t, config.Default())

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			name := fmt.Sprintf("Game %d", i)

			res := post(h, "/add", url.Values{"name": {name}, "author": {"Author"}}, "application/json")
			if !assert.Equal(t, http.StatusOK, res.Code, name) {
				return
			}

			var added struct {
				Game back.GameRating `json:"game"`
			}
			if !assert.NoError(t, json.Unmarshal(res.Body.Bytes(), &added)) {
				return
			}

			res = post(h, "/view", url.Values{"name": {name}}, "")
			if assert.Equal(t, http.StatusOK, res.Code, name) {
				assert.True(t, strings.HasPrefix(res.Body.String(), "Game details: id: "+added.Game.ID+", name: "+name+","))
			}

			assert.Equal(t, http.StatusOK, get(h, "/get-all").Code)
		}(i)
	}
	wg.Wait()

	all := getAll(t, h)
	require.Len(t, all.Games, n)

	ids := map[string]struct{}{}
	for _, game := range all.Games {
		ids[game.ID] = struct{}{}
	}
	assert.Len(t, ids, n)
}

func chessForm() url.Values {
	return url.Values{
		"id":       {"unknown"},
		"name":     {"Chess"},
		"author":   {"Ancient"},
		"rating":   {"5"},
		"comments": {"Classic"},
	}
}

func newTestHandler(t *testing.T, conf *config.Config) http.Handler {
	b, err := back.New("sqlite3", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() {
		b.Close() // nolint:errcheck
	})

	return NewServer(b, conf).Handler()
}

func get(h http.Handler, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	res := httptest.NewRecorder()
	h.ServeHTTP(res, req)

	return res
}

func post(h http.Handler, path string, form url.Values, accept string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if accept != "" {
		req.Header.Set("Accept", accept)
	}

	res := httptest.NewRecorder()
	h.ServeHTTP(res, req)

	return res
}

func getAll(t *testing.T, h http.Handler) getAllResponse {
	res := get(h, "/get-all")
	require.Equal(t, http.StatusOK, res.Code)

	var ret getAllResponse
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &ret))
	require.True(t, ret.Success)

	return ret
}
