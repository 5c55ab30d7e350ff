package modules

import (
	"github.com/lumenhr/orgadmin/modules/organisation"
	"github.com/lumenhr/orgadmin/pkg/application"
)

var BuiltInModules = []application.Module{
	organisation.NewModule(),
}

func Load(app application.Application, externalModules ...application.Module) error {
	for _, module := range append(BuiltInModules, externalModules...) {
		if err := module.Register(app); err != nil {
			return err
		}
	}
	return nil
}
