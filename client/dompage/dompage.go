// Package dompage adapts the browser document to the ui package.
package dompage

import (
	"honnef.co/go/js/dom"

	"github.com/EngineerKamesh/crisprview/client/ui"
)

type Document struct {
	doc dom.Document
}

func New(doc dom.Document) *Document {
	return &Document{doc: doc}
}

func (d *Document) Element(id string) (ui.Element, bool) {
	el := d.doc.GetElementByID(id)
	if el == nil {
		return nil, false
	}
	return &Element{el: el}, true
}

type Element struct {
	el dom.Element
}

func (e *Element) Display() string {
	if h, ok := e.el.(dom.HTMLElement); ok {
		return h.Style().GetPropertyValue("display")
	}
	return ""
}

func (e *Element) SetDisplay(value string) {
	if h, ok := e.el.(dom.HTMLElement); ok {
		h.Style().SetProperty("display", value, "")
	}
}

func (e *Element) Attribute(name string) string {
	return e.el.GetAttribute(name)
}

func (e *Element) SetAttribute(name, value string) {
	e.el.SetAttribute(name, value)
}

// Value reads form controls. An unchecked checkbox reads as empty so the
// resolution switch can be turned off.
func (e *Element) Value() string {
	switch c := e.el.(type) {
	case *dom.HTMLSelectElement:
		return c.Value
	case *dom.HTMLInputElement:
		if (c.Type == "checkbox" || c.Type == "radio") && !c.Checked {
			return ""
		}
		return c.Value
	case *dom.HTMLTextAreaElement:
		return c.Value
	}
	return e.el.GetAttribute("value")
}

func (e *Element) SetInnerHTML(html string) {
	e.el.SetInnerHTML(html)
}
