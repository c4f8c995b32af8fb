package common

import (
	"github.com/isomorphicgo/isokit"

	"github.com/EngineerKamesh/crisprview/common/config"
	"github.com/EngineerKamesh/crisprview/common/datastore"
)

type Env struct {
	DB          datastore.Datastore
	TemplateSet *isokit.TemplateSet
	Config      *config.Config
}
