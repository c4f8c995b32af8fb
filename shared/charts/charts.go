// Package charts describes the chart images produced for a CRISPR run and
// renders the chart grid shown on a report page. It is shared by the server
// and the GopherJS client.
package charts

import (
	"bytes"
	"html/template"
	"io"
	"net/url"
	"strings"
)

const (
	AssetPrefix = "assets/"

	PlusIcon  = "plus.jpg"
	MinusIcon = "minus.jpg"

	PNGExtension  = ".png"
	TIFFExtension = ".tif"
)

// Kind names one of the plots generated for a sample and CRISPR target.
type Kind string

const (
	Insertion    Kind = "ins"
	Deletion     Kind = "del"
	IndelLength  Kind = "len"
	IndelLength2 Kind = "len2"
	SNP          Kind = "snp"
)

// GridKinds are the plots laid out two per row ahead of the SNP plot.
var GridKinds = []Kind{Insertion, Deletion, IndelLength, IndelLength2}

// AllKinds lists every plot kind in display order.
var AllKinds = []Kind{Insertion, Deletion, IndelLength, IndelLength2, SNP}

func (k Kind) Valid() bool {
	for _, known := range AllKinds {
		if k == known {
			return true
		}
	}
	return false
}

// Extension picks the image format for the resolution flag read from the
// page. Any non-empty flag selects the high resolution TIFF images.
func Extension(highRes string) string {
	if highRes != "" {
		return TIFFExtension
	}
	return PNGExtension
}

// FileName returns <sample>.<crisprName>.<kind><ext>.
func FileName(sample, crisprName string, kind Kind, ext string) string {
	return sample + "." + crisprName + "." + string(kind) + ext
}

// ImagePath returns the page relative path of a chart image. The file name
// is path escaped so names holding '#' or '?' still address the file.
func ImagePath(sample, crisprName string, kind Kind, ext string) string {
	return AssetPrefix + url.PathEscape(FileName(sample, crisprName, kind, ext))
}

// IconPath returns the page relative path of a toggle icon.
func IconPath(icon string) string {
	return AssetPrefix + icon
}

// Image is a chart file that follows the asset naming convention.
type Image struct {
	Sample     string
	CrisprName string
	Kind       Kind
	Extension  string
}

func (i Image) FileName() string {
	return FileName(i.Sample, i.CrisprName, i.Kind, i.Extension)
}

func (i Image) Path() string {
	return ImagePath(i.Sample, i.CrisprName, i.Kind, i.Extension)
}

// ParseImageName splits a file name of the form <sample>.<crispr>.<kind><ext>.
// The sample may contain dots, the CRISPR name may not.
func ParseImageName(name string) (Image, bool) {
	var ext string
	switch {
	case strings.HasSuffix(name, PNGExtension):
		ext = PNGExtension
	case strings.HasSuffix(name, TIFFExtension):
		ext = TIFFExtension
	default:
		return Image{}, false
	}
	stem := strings.TrimSuffix(name, ext)

	i := strings.LastIndex(stem, ".")
	if i < 0 {
		return Image{}, false
	}
	kind := Kind(stem[i+1:])
	if !kind.Valid() {
		return Image{}, false
	}
	stem = stem[:i]

	j := strings.LastIndex(stem, ".")
	if j <= 0 || j == len(stem)-1 {
		return Image{}, false
	}
	return Image{Sample: stem[:j], CrisprName: stem[j+1:], Kind: kind, Extension: ext}, true
}

// Selection is what the user picked on the report page.
type Selection struct {
	Sample     string
	CrisprName string
	HighRes    string
}

type cell struct {
	Src  string
	Alt  string
	Span int
}

type grid struct {
	Rows [][]cell
}

const gridTemplate = `{{with .Rows}}<table border="0">{{range .}}<tr>{{range .}}<td{{if gt .Span 1}} colspan="{{.Span}}"{{end}}><img src="{{.Src}}" alt="{{.Alt}}"></td>{{end}}</tr>{{end}}</table>{{end}}`

var gridTmpl = template.Must(template.New("charts_grid").Parse(gridTemplate))

func newGrid(sel Selection) grid {
	var g grid
	if sel.Sample == "" {
		return g
	}
	ext := Extension(sel.HighRes)
	newCell := func(k Kind, span int) cell {
		return cell{
			Src:  ImagePath(sel.Sample, sel.CrisprName, k, ext),
			Alt:  sel.Sample + " " + sel.CrisprName + " " + string(k),
			Span: span,
		}
	}

	var row []cell
	for i, k := range GridKinds {
		row = append(row, newCell(k, 1))
		if i%2 == 1 {
			g.Rows = append(g.Rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		g.Rows = append(g.Rows, row)
	}
	g.Rows = append(g.Rows, []cell{newCell(SNP, 2)})
	return g
}

// Render writes the chart table for sel. Nothing is written when no sample
// is selected.
func Render(w io.Writer, sel Selection) error {
	return gridTmpl.Execute(w, newGrid(sel))
}

// Markup returns the chart table for sel as a string.
func Markup(sel Selection) (string, error) {
	var buf bytes.Buffer
	if err := Render(&buf, sel); err != nil {
		return "", err
	}
	return buf.String(), nil
}
