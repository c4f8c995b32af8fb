package models

import "github.com/EngineerKamesh/crisprview/shared/charts"

type HomePage struct {
	PageTitle   string
	CrisprNames []string
	SampleCount int
}

// ReportPage is the data behind /report/{crispr}.
type ReportPage struct {
	PageTitle  string
	CrisprName string
	PlusIcon   string
	Files      []SampleFiles
}

// SampleFiles lists the chart images of one sample for the files section.
type SampleFiles struct {
	Sample string
	Images []charts.Image
}
