package routers

import (
	"annuaire-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachSearchRoutes(router chi.Router, searchController *controllers.SearchController) {
	router.Get("/search", searchController.Search)
}
