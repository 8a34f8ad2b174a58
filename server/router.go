package server

import (
	"net/http"

	"github.com/gorilla/mux"
)

// SearchHandler is the route surface the router needs; satisfied by
// handlers.SearchHandler and mockable in tests.
type SearchHandler interface {
	SearchBusinesses(w http.ResponseWriter, r *http.Request)
	GetBusinessesNearby(w http.ResponseWriter, r *http.Request)
	MapBusinesses(w http.ResponseWriter, r *http.Request)
	Ping(w http.ResponseWriter, r *http.Request)
}

type Router struct {
	searchHandler SearchHandler
	router        *mux.Router
}

// NewRouter creates a router with the app's routes.
func NewRouter(searchHandler SearchHandler, router *mux.Router) *Router {
	return &Router{
		searchHandler: searchHandler,
		router:        router,
	}
}

func (r *Router) RegisterRoutes() {
	// expects ?q=&category=&subcategory=&lat=&lng=&sort=&status=
	r.router.HandleFunc("/v1/businesses/search", r.searchHandler.SearchBusinesses).Methods("GET")

	// expects ?lat={latitude(float)}&lng={longitude(float)}&radius={km(float)}
	r.router.HandleFunc("/v1/businesses/nearby", r.searchHandler.GetBusinessesNearby).Methods("GET")

	// debug map of the ranked result set
	r.router.HandleFunc("/v1/businesses/map", r.searchHandler.MapBusinesses).Methods("GET")

	r.router.HandleFunc("/ping", r.searchHandler.Ping).Methods("GET")
}
