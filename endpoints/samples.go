package endpoints

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/EngineerKamesh/crisprview/common"
	"github.com/EngineerKamesh/crisprview/shared/models"
)

func SamplesEndpoint(env *common.Env) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		index := models.SampleIndex{
			Samples:     env.DB.Samples(),
			CrisprNames: env.DB.CrisprNames(),
		}
		if crisprName := r.URL.Query().Get("crispr"); crisprName != "" {
			if !env.DB.HasCrisprName(crisprName) {
				http.NotFound(w, r)
				return
			}
			index.Samples = env.DB.SamplesWithCharts(crisprName)
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(index); err != nil {
			slog.Error("failed to encode sample index", "error", err)
		}
	})
}
