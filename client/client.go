package main

import (
	"strings"

	"honnef.co/go/js/dom"

	"github.com/EngineerKamesh/crisprview/client/common"
	"github.com/EngineerKamesh/crisprview/client/dompage"
	"github.com/EngineerKamesh/crisprview/client/handlers"
)

var D = dom.GetWindow().Document().(dom.HTMLDocument)

func initializeEventHandlers(env *common.Env) {
	l := strings.Split(env.Window.Location().Pathname, "/")
	if len(l) > 2 && l[1] == "report" {
		handlers.InitializeReportEventHandlers(env)
	}
}

func run() {
	env := common.Env{}
	env.Window = dom.GetWindow()
	env.Document = dom.GetWindow().Document()
	env.Page = dompage.New(env.Document)

	initializeEventHandlers(&env)
}

func main() {
	switch readyState := D.ReadyState(); readyState {
	case "loading":
		D.AddEventListener("DOMContentLoaded", false, func(dom.Event) {
			go run()
		})
	case "interactive", "complete":
		run()
	default:
		println("Unexpected document.ReadyState value!")
	}
}
