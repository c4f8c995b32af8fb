package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/isomorphicgo/isokit"

	"github.com/EngineerKamesh/crisprview/common"
	"github.com/EngineerKamesh/crisprview/models"
	"github.com/EngineerKamesh/crisprview/shared/charts"
)

// ReportHandler renders the chart browser for one CRISPR target.
func ReportHandler(env *common.Env) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		crisprName := mux.Vars(r)["crispr"]
		if !env.DB.HasCrisprName(crisprName) {
			http.NotFound(w, r)
			return
		}

		p := models.ReportPage{
			PageTitle:  crisprName,
			CrisprName: crisprName,
			PlusIcon:   charts.IconPath(charts.PlusIcon),
		}
		for _, sample := range env.DB.SamplesWithCharts(crisprName) {
			p.Files = append(p.Files, models.SampleFiles{Sample: sample, Images: env.DB.Charts(sample, crisprName)})
		}

		env.TemplateSet.Render("report_page", &isokit.RenderParams{Writer: w, Data: p})
	})
}
