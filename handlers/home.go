package handlers

import (
	"net/http"

	"github.com/isomorphicgo/isokit"

	"github.com/EngineerKamesh/crisprview/common"
	"github.com/EngineerKamesh/crisprview/models"
)

func HomeHandler(env *common.Env) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p := models.HomePage{
			PageTitle:   "CRISPR Targets",
			CrisprNames: env.DB.CrisprNames(),
			SampleCount: len(env.DB.Samples()),
		}
		env.TemplateSet.Render("home_page", &isokit.RenderParams{Writer: w, Data: p})
	})
}
