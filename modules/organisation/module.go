package organisation

import (
	"embed"

	"github.com/lumenhr/orgadmin/modules/organisation/infrastructure/persistence"
	"github.com/lumenhr/orgadmin/modules/organisation/presentation/controllers"
	"github.com/lumenhr/orgadmin/modules/organisation/services"
	"github.com/lumenhr/orgadmin/pkg/application"
)

//go:embed infrastructure/persistence/schema/organisation-schema.sql
var MigrationFiles embed.FS

func NewModule() application.Module {
	return &Module{}
}

type Module struct {
}

func (m *Module) Register(app application.Application) error {
	app.Migrations().RegisterSchema(&MigrationFiles)

	profileRepo := persistence.NewProfileRepository()
	departmentRepo := persistence.NewDepartmentRepository()
	roleRepo := persistence.NewRoleRepository()
	locationRepo := persistence.NewLocationRepository()
	trackRepo := persistence.NewTrackRepository()

	app.RegisterServices(
		services.NewProfileService(profileRepo, app.EventPublisher()),
		services.NewDepartmentService(departmentRepo, app.EventPublisher()),
		services.NewRoleService(roleRepo, app.EventPublisher()),
		services.NewLocationService(locationRepo, app.EventPublisher()),
		services.NewTrackService(trackRepo, app.EventPublisher()),
		services.NewCertificateService(persistence.NewCertificateRepository(), app.EventPublisher()),
		services.NewAssetService(persistence.NewAssetRepository(), app.EventPublisher()),
		services.NewDrillDownService(profileRepo, departmentRepo, roleRepo, trackRepo),
	)
	app.RegisterControllers(
		controllers.NewProfileController(app),
		controllers.NewOrgStructureController(app),
		controllers.NewTrackController(app),
		controllers.NewDrillDownController(app),
		controllers.NewCertificateController(app),
		controllers.NewAssetController(app),
	)
	return nil
}

func (m *Module) Name() string {
	return "organisation"
}
