package common

import (
	"honnef.co/go/js/dom"

	"github.com/EngineerKamesh/crisprview/client/dompage"
)

type Env struct {
	Window   dom.Window
	Document dom.Document
	Page     *dompage.Document
}
