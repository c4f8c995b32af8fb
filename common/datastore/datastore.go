package datastore

import (
	"fmt"

	"github.com/EngineerKamesh/crisprview/shared/charts"
)

// Datastore indexes the chart images available to the report pages.
type Datastore interface {
	Samples() []string
	CrisprNames() []string
	HasCrisprName(crisprName string) bool
	SamplesWithCharts(crisprName string) []string
	Charts(sample, crisprName string) []charts.Image
	Refresh() error
}

const (
	FILESYSTEM = iota
)

func NewDatastore(datastoreType int, location string) (Datastore, error) {

	switch datastoreType {
	case FILESYSTEM:
		fs, err := NewFilesystemDatastore(location)
		if err != nil {
			return nil, err
		}
		return fs, nil
	}

	return nil, fmt.Errorf("unknown datastore type %d", datastoreType)
}
