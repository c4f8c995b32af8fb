package handlers

import (
	"encoding/json"

	"github.com/gopherjs/gopherjs/js"
	"honnef.co/go/js/dom"
	"honnef.co/go/js/xhr"

	"github.com/EngineerKamesh/crisprview/client/common"
	"github.com/EngineerKamesh/crisprview/client/ui"
	"github.com/EngineerKamesh/crisprview/shared/models"
)

func InitializeReportEventHandlers(env *common.Env) {
	exportPageFunctions(env)

	chartsContainer := env.Document.GetElementByID(ui.ChartsID)
	if chartsContainer == nil {
		return
	}
	crisprName := chartsContainer.GetAttribute("data-crispr")

	recompose := func(event dom.Event) {
		showCharts(env, crisprName)
	}
	for _, id := range []string{ui.SampleSelectID, ui.HighResID} {
		if el := env.Document.GetElementByID(id); el != nil {
			el.AddEventListener("change", false, recompose)
		}
	}

	for _, toggle := range env.Document.QuerySelectorAll("[data-toggle]") {
		target := toggle.GetAttribute("data-toggle")
		icon := toggle.GetAttribute("data-icon")
		toggle.AddEventListener("click", false, func(event dom.Event) {
			ui.ToggleVisibility(env.Page, target)
			ui.ToggleIcon(env.Page, icon)
		})
	}

	// The report page ships only the placeholder option; the samples with
	// charts for this target come from the server.
	if sampleSelect, ok := env.Document.GetElementByID(ui.SampleSelectID).(*dom.HTMLSelectElement); ok {
		go populateSamples(env, sampleSelect, crisprName)
	}
}

// exportPageFunctions keeps inline onclick and onchange attributes working.
func exportPageFunctions(env *common.Env) {
	js.Global.Set("hideshow", func(id string) {
		ui.ToggleVisibility(env.Page, id)
	})
	js.Global.Set("toggleImg", func(id string) {
		ui.ToggleIcon(env.Page, id)
	})
	js.Global.Set("showCharts", func(crisprName string) {
		showCharts(env, crisprName)
	})
}

func showCharts(env *common.Env, crisprName string) {
	if err := ui.ShowCharts(env.Page, crisprName); err != nil {
		println("Encountered error while rendering the charts: ", err.Error())
	}
}

func populateSamples(env *common.Env, sampleSelect *dom.HTMLSelectElement, crisprName string) {
	data, err := xhr.Send("GET", models.SamplesPath(crisprName), nil)
	if err != nil {
		println("Encountered error while attempting to fetch the sample list: ", err.Error())
		return
	}

	var index models.SampleIndex
	if err := json.Unmarshal(data, &index); err != nil {
		println("Encountered error while attempting to unmarshal the sample list: ", err.Error())
		return
	}

	for _, option := range sampleSelect.Options() {
		if option.GetAttribute("value") != "" {
			sampleSelect.RemoveChild(option)
		}
	}
	for _, sample := range index.Samples {
		option := env.Document.CreateElement("option")
		option.SetAttribute("value", sample)
		option.SetTextContent(sample)
		sampleSelect.AppendChild(option)
	}
}
