package climate

import (
	"database/sql"
	"net/http"

	"surfsup/internal/modules/climate/controller"
	"surfsup/internal/modules/climate/repository"
)

func RegisterFeature(mux *http.ServeMux, db *sql.DB) {
	climateRepository := repository.NewRepository(db)
	climateController := controller.NewClimateController(climateRepository)
	climateController.RegisterRoutes(mux)
}
