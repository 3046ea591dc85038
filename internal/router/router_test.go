package router_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"paw-connects/internal/router"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newRouter(t *testing.T) http.Handler {
	t.Helper()

	h, err := router.NewRouter(router.Options{})
	require.NoError(t, err)
	return h
}

func TestHTTP_EndToEnd_SwipeMatchesAndRecipe(t *testing.T) {
	h := newRouter(t)

	// 1) Estado inicial: Buddy activo, Bastian primero
	{
		st, body := doReq(t, h, "GET", "/swipe", nil)
		require.Equal(t, http.StatusOK, st, string(body))

		var v struct {
			ActiveDog struct {
				Name string `json:"name"`
			} `json:"active_dog"`
			Candidate *struct {
				ID     int `json:"id"`
				Avatar struct {
					ImageKey  string `json:"image_key"`
					ImagePath string `json:"image_path"`
				} `json:"avatar"`
			} `json:"candidate"`
			Remaining int `json:"remaining"`
		}
		require.NoError(t, json.Unmarshal(body, &v))
		assert.Equal(t, "Buddy", v.ActiveDog.Name)
		require.NotNil(t, v.Candidate)
		assert.Equal(t, 101, v.Candidate.ID)
		assert.Equal(t, "bastian", v.Candidate.Avatar.ImageKey)
		assert.Equal(t, "bastian.jpg", v.Candidate.Avatar.ImagePath)
		assert.Equal(t, 4, v.Remaining)
	}

	// 2) Like Bastian => match (RUNNING)
	{
		res := swipeAction(t, h, "POST", "/swipe/like", nil)
		assert.True(t, res.Matched)
		assert.Equal(t, []string{"RUNNING"}, res.Match.Shared)
		assert.NotEmpty(t, res.Match.ID)
	}

	// 3) Skip Chester
	{
		res := swipeAction(t, h, "POST", "/swipe/skip", nil)
		assert.False(t, res.Matched)
		assert.Equal(t, "swipe_left", res.Gesture)
		assert.Equal(t, 102, res.Candidate.ID)
	}

	// 4) Drag corto => vuelve a su lugar, Bella sigue
	{
		res := swipeAction(t, h, "POST", "/swipe/drag", map[string]any{"offset_x": 120})
		assert.Equal(t, "snap_back", res.Gesture)
		assert.Equal(t, 103, res.Candidate.ID)
	}

	// 5) Drag largo a la derecha => like Bella
	{
		res := swipeAction(t, h, "POST", "/swipe/drag", map[string]any{"offset_x": 420})
		assert.Equal(t, "swipe_right", res.Gesture)
		assert.True(t, res.Matched)
		assert.Equal(t, []string{"RUNNING", "PARK"}, res.Match.Shared)
	}

	// 6) Like Julia => match (PARK)
	swipeAction(t, h, "POST", "/swipe/like", nil)

	// 7) Mazo vacío: estado vacío, no error
	{
		st, body := doReq(t, h, "GET", "/swipe", nil)
		require.Equal(t, http.StatusOK, st)
		assert.Contains(t, string(body), `"candidate":null`)
		assert.Contains(t, string(body), "No more profiles today")

		res := swipeAction(t, h, "POST", "/swipe/like", nil)
		assert.True(t, res.Exhausted)
		assert.False(t, res.Matched)
	}

	// 8) Matches en orden
	{
		st, body := doReq(t, h, "GET", "/matches", nil)
		require.Equal(t, http.StatusOK, st)

		var ms []struct {
			MyDog struct {
				ID int `json:"id"`
			} `json:"my_dog"`
			OtherDog struct {
				ID int `json:"id"`
			} `json:"other_dog"`
		}
		require.NoError(t, json.Unmarshal(body, &ms))
		require.Len(t, ms, 3)
		assert.Equal(t, 1, ms[0].MyDog.ID)
		assert.Equal(t, []int{101, 103, 104}, []int{ms[0].OtherDog.ID, ms[1].OtherDog.ID, ms[2].OtherDog.ID})
	}

	// 9) Batch de Buddy
	{
		p := getPlan(t, h, "GET", "/recipe", nil, http.StatusOK)
		assert.Equal(t, 1485, p.KcalPerDay)
		assert.Equal(t, 39.8, p.OzPerDay)
		assert.Equal(t, 74.7, p.TotalBatchLb30d)
		assert.Len(t, p.PerIngredientOz, 4)
	}

	// 10) Cambia a Luna (alérgica a "sweet potato") y regenera
	{
		st, body := doReq(t, h, "PUT", "/profile/active", map[string]any{"dog_id": 2})
		require.Equal(t, http.StatusOK, st, string(body))
		// Luna no tiene asset => inicial
		assert.Contains(t, string(body), `"initial":"L"`)

		p := getPlan(t, h, "GET", "/recipe", nil, http.StatusOK)
		assert.Equal(t, 754, p.KcalPerDay)
		assert.Equal(t, 499, p.GramsPerDay)
		assert.Equal(t, 250, p.GramsPerMeal, "249.5 rounds away from zero")
		assert.Equal(t, 17.6, p.OzPerDay)
		assert.Equal(t, 8.8, p.OzPerMeal)
		assert.Equal(t, 33.0, p.TotalBatchLb30d)
		assert.Equal(t, map[string]float64{"turkey": 452.6, "carrot": 37.7, "broccoli": 37.7}, p.PerIngredientOz)
		assert.Equal(t, []string{"sweet_potato"}, p.Excluded)
		assert.True(t, strings.HasSuffix(p.Notes, "Excluded for allergies: sweet_potato."))
	}

	// 11) Perro desconocido
	{
		st, _ := doReq(t, h, "PUT", "/profile/active", map[string]any{"dog_id": 101})
		assert.Equal(t, http.StatusNotFound, st)
	}
}

func TestHTTP_AdHocRecipe_Errors(t *testing.T) {
	h := newRouter(t)

	getPlan(t, h, "POST", "/recipe", map[string]any{
		"weight_lb":  55,
		"activities": []string{"running"},
		"allergies":  []string{"turkey", "Sweet Potato", "carrot", "broccoli"},
	}, http.StatusUnprocessableEntity)

	getPlan(t, h, "POST", "/recipe", map[string]any{
		"weight_lb": 0,
	}, http.StatusBadRequest)

	getPlan(t, h, "POST", "/recipe", map[string]any{
		"weight_lb":  20,
		"activities": []string{"SURFING"},
	}, http.StatusBadRequest)

	getPlan(t, h, "POST", "/recipe", map[string]any{
		"weight_lb": 20,
		"allergies": []string{"chicken"},
	}, http.StatusBadRequest)

	p := getPlan(t, h, "POST", "/recipe", map[string]any{
		"weight_lb":  55,
		"activities": []string{"PARK", "RUNNING"},
		"allergies":  []string{"turkey"},
	}, http.StatusOK)
	assert.Equal(t, 1485, p.KcalPerDay)
	assert.Equal(t, 2010, p.GramsPerDay)
	assert.NotContains(t, p.PerIngredientOz, "turkey")
}

func TestHTTP_Quiz_AllCorrect(t *testing.T) {
	h := newRouter(t)

	st, _ := doReq(t, h, "POST", "/learn/next", nil)
	assert.Equal(t, http.StatusConflict, st, "next is disabled without a selection")

	correct := []int{1, 1, 0}
	var last quizView
	for _, opt := range correct {
		st, body := doReq(t, h, "POST", "/learn/select", map[string]any{"option": opt})
		require.Equal(t, http.StatusOK, st, string(body))
		require.NoError(t, json.Unmarshal(body, &last))
		assert.True(t, last.CanAdvance)
		assert.True(t, strings.HasPrefix(last.Explanation, "Why: "))

		st, body = doReq(t, h, "POST", "/learn/next", nil)
		require.Equal(t, http.StatusOK, st, string(body))
		require.NoError(t, json.Unmarshal(body, &last))
	}

	assert.True(t, last.Finished)
	assert.Equal(t, 3, last.Score.Correct)
	assert.Equal(t, 3, last.Score.Total)
	assert.Equal(t, 1.0, last.Score.Ratio)
	assert.NotEmpty(t, last.Takeaway)

	st, _ = doReq(t, h, "POST", "/learn/select", map[string]any{"option": 0})
	assert.Equal(t, http.StatusConflict, st)

	st, body := doReq(t, h, "POST", "/learn/reset", nil)
	require.Equal(t, http.StatusOK, st)
	require.NoError(t, json.Unmarshal(body, &last))
	assert.Equal(t, 1, last.Number)
	assert.False(t, last.Finished)
}

func TestHTTP_StaticContent(t *testing.T) {
	h := newRouter(t)

	st, body := doReq(t, h, "GET", "/health", nil)
	assert.Equal(t, http.StatusOK, st)
	assert.Equal(t, "ok", string(body))

	st, body = doReq(t, h, "GET", "/nav", nil)
	require.Equal(t, http.StatusOK, st)
	var nav struct {
		Start string `json:"start"`
		Items []struct {
			Route string `json:"route"`
		} `json:"items"`
	}
	require.NoError(t, json.Unmarshal(body, &nav))
	routes := make([]string, 0, len(nav.Items))
	for _, it := range nav.Items {
		routes = append(routes, it.Route)
	}
	assert.Equal(t, "swipe", nav.Start)
	assert.Equal(t, []string{"swipe", "matches", "recipe", "learn", "profile", "chat"}, routes)

	st, body = doReq(t, h, "GET", "/chat", nil)
	require.Equal(t, http.StatusOK, st)
	assert.Contains(t, string(body), "Hobie Beach")

	st, _ = doReq(t, h, "GET", "/dogs/104", nil)
	assert.Equal(t, http.StatusOK, st)
	st, _ = doReq(t, h, "GET", "/dogs/999", nil)
	assert.Equal(t, http.StatusNotFound, st)
	st, _ = doReq(t, h, "GET", "/dogs/abc", nil)
	assert.Equal(t, http.StatusBadRequest, st)

	st, body = doReq(t, h, "GET", "/swagger/doc.json", nil)
	require.Equal(t, http.StatusOK, st)
	assert.Contains(t, string(body), "PawConnects API")
}

type swipeResult struct {
	Gesture   string `json:"gesture"`
	Matched   bool   `json:"matched"`
	Exhausted bool   `json:"exhausted"`
	Candidate *struct {
		ID int `json:"id"`
	} `json:"candidate"`
	Match *struct {
		ID     string   `json:"id"`
		Shared []string `json:"shared_activities"`
	} `json:"match"`
}

type planResult struct {
	KcalPerDay      int                `json:"kcal_per_day"`
	GramsPerDay     int                `json:"grams_per_day"`
	GramsPerMeal    int                `json:"grams_per_meal"`
	OzPerDay        float64            `json:"oz_per_day"`
	OzPerMeal       float64            `json:"oz_per_meal"`
	TotalBatchLb30d float64            `json:"total_batch_lb_30d"`
	PerIngredientOz map[string]float64 `json:"per_ingredient_oz"`
	Excluded        []string           `json:"excluded"`
	Notes           string             `json:"notes"`
}

type quizView struct {
	Number      int    `json:"number"`
	CanAdvance  bool   `json:"can_advance"`
	Finished    bool   `json:"finished"`
	Explanation string `json:"explanation"`
	Takeaway    string `json:"takeaway"`
	Score       struct {
		Correct int     `json:"correct"`
		Total   int     `json:"total"`
		Ratio   float64 `json:"ratio"`
	} `json:"score"`
}

func swipeAction(t *testing.T, h http.Handler, method, path string, body any) swipeResult {
	t.Helper()

	st, raw := doReq(t, h, method, path, body)
	require.Equal(t, http.StatusOK, st, string(raw))

	var res swipeResult
	require.NoError(t, json.Unmarshal(raw, &res))
	return res
}

func getPlan(t *testing.T, h http.Handler, method, path string, body any, wantStatus int) planResult {
	t.Helper()

	st, raw := doReq(t, h, method, path, body)
	require.Equal(t, wantStatus, st, string(raw))

	var p planResult
	if wantStatus == http.StatusOK {
		require.NoError(t, json.Unmarshal(raw, &p))
	}
	return p
}

func doReq(t *testing.T, h http.Handler, method, path string, body any) (int, []byte) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("json marshal: %v", err)
		}
		rdr = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, rdr)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	respBody, _ := io.ReadAll(rec.Result().Body)
	return rec.Code, respBody
}
