package router

import (
	"encoding/json"
	"net/http"
)

// Destinos con nombre de la barra de navegación, en orden.
const (
	RouteSwipe   = "swipe"
	RouteMatches = "matches"
	RouteRecipe  = "recipe"
	RouteLearn   = "learn"
	RouteProfile = "profile"
	RouteChat    = "chat"
)

type navItem struct {
	Route string `json:"route"`
	Label string `json:"label"`
	Path  string `json:"path"`
}

var navItems = []navItem{
	{Route: RouteSwipe, Label: "Swipe", Path: "/swipe"},
	{Route: RouteMatches, Label: "Matches", Path: "/matches"},
	{Route: RouteRecipe, Label: "Batch", Path: "/recipe"},
	{Route: RouteLearn, Label: "Learn", Path: "/learn"},
	{Route: RouteProfile, Label: "Profile", Path: "/profile/dogs"},
	{Route: RouteChat, Label: "Chat", Path: "/chat"},
}

type navResponse struct {
	Start string    `json:"start"`
	Items []navItem `json:"items"`
}

func navHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(navResponse{Start: RouteSwipe, Items: navItems})
	}
}
