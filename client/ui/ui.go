// Package ui holds the report page behaviors. Page elements are reached
// through the Document interface so the behaviors run the same against the
// browser DOM and against an in-memory page in tests.
package ui

import (
	"strings"

	"github.com/EngineerKamesh/crisprview/shared/charts"
)

// Element IDs the report page markup provides.
const (
	SampleSelectID = "select1"
	HighResID      = "high_res"
	ChartsID       = "charts"
)

const (
	displayBlock = "block"
	displayNone  = "none"
)

type Element interface {
	Display() string
	SetDisplay(value string)
	Attribute(name string) string
	SetAttribute(name, value string)
	Value() string
	SetInnerHTML(html string)
}

type Document interface {
	// Element reports false when no element has the given id.
	Element(id string) (Element, bool)
}

// ToggleVisibility shows the element if it is not displayed as a block and
// hides it otherwise.
func ToggleVisibility(doc Document, id string) {
	el, ok := doc.Element(id)
	if !ok {
		return
	}

	if el.Display() == displayBlock {
		el.SetDisplay(displayNone)
	} else {
		el.SetDisplay(displayBlock)
	}
}

// ToggleIcon swaps an expand icon for a collapse icon and back. Images
// showing any other file are left alone.
func ToggleIcon(doc Document, id string) {
	el, ok := doc.Element(id)
	if !ok {
		return
	}

	src := el.Attribute("src")
	segments := strings.Split(src, "/")
	switch segments[len(segments)-1] {
	case charts.PlusIcon:
		el.SetAttribute("src", charts.IconPath(charts.MinusIcon))
	case charts.MinusIcon:
		el.SetAttribute("src", charts.IconPath(charts.PlusIcon))
	}
}

// CurrentSelection reads the sample selector and resolution switch.
// Missing controls read as empty.
func CurrentSelection(doc Document, crisprName string) charts.Selection {
	sel := charts.Selection{CrisprName: crisprName}
	if el, ok := doc.Element(SampleSelectID); ok {
		sel.Sample = el.Value()
	}
	if el, ok := doc.Element(HighResID); ok {
		sel.HighRes = el.Value()
	}
	return sel
}

// ShowCharts replaces the content of the charts container with the chart
// grid for the selected sample, or clears it when no sample is selected.
func ShowCharts(doc Document, crisprName string) error {
	container, ok := doc.Element(ChartsID)
	if !ok {
		return nil
	}

	markup, err := charts.Markup(CurrentSelection(doc, crisprName))
	if err != nil {
		return err
	}
	container.SetInnerHTML(markup)
	return nil
}
