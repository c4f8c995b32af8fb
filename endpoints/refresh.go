package endpoints

import (
	"log/slog"
	"net/http"

	"github.com/EngineerKamesh/crisprview/common"
)

// RefreshEndpoint rescans the assets directory after new charts are copied in.
func RefreshEndpoint(env *common.Env) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := env.DB.Refresh(); err != nil {
			slog.Error("failed to refresh chart index", "error", err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		slog.Info("chart index refreshed", "samples", len(env.DB.Samples()), "crispr_names", len(env.DB.CrisprNames()))
		w.WriteHeader(http.StatusNoContent)
	})
}
