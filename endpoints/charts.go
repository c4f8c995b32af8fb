package endpoints

import (
	"log/slog"
	"net/http"

	"github.com/EngineerKamesh/crisprview/common"
	"github.com/EngineerKamesh/crisprview/shared/charts"
)

// ChartsEndpoint renders the chart table fragment for a sample, the same
// markup the client composes in the browser.
func ChartsEndpoint(env *common.Env) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		sel := charts.Selection{
			Sample:     q.Get("sample"),
			CrisprName: q.Get("crispr"),
			HighRes:    q.Get("high_res"),
		}
		if sel.Sample != "" && sel.CrisprName == "" {
			http.Error(w, "crispr is required when sample is set", http.StatusBadRequest)
			return
		}
		if sel.CrisprName != "" && !env.DB.HasCrisprName(sel.CrisprName) {
			http.NotFound(w, r)
			return
		}

		markup, err := charts.Markup(sel)
		if err != nil {
			slog.Error("failed to render charts", "sample", sel.Sample, "crispr", sel.CrisprName, "error", err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte(markup))
	})
}
