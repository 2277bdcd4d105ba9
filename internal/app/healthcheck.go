package app

import (
	"net/http"

	"github.com/metinatakli/planetarium-reservation-system/api"
)

func (app *Application) GetHealth(w http.ResponseWriter, r *http.Request) {
	status := "UP"

	if app.db != nil {
		if err := app.db.Ping(r.Context()); err != nil {
			app.contextGetLogger(r).Warn("database ping failed", "error", err)
			status = "DEGRADED"
		}
	}

	if app.redis != nil {
		if err := app.redis.Ping(r.Context()).Err(); err != nil {
			app.contextGetLogger(r).Warn("redis ping failed", "error", err)
			status = "DEGRADED"
		}
	}

	resp := api.HealthcheckResponse{
		Status: status,
		SystemInfo: api.SystemInfo{
			Version:     version,
			Environment: app.config.Env,
		},
	}

	err := app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetOpenAPISpec(w http.ResponseWriter, r *http.Request) {
	err := app.writeJSON(w, http.StatusOK, app.openapi, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
