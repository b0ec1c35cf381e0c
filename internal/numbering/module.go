// Package numbering provides the phone number bounded context module.
package numbering

import (
	apphttp "phonenumber_backend/internal/http"
	"phonenumber_backend/internal/numbering/handler"
	"phonenumber_backend/internal/numbering/service"
	"phonenumber_backend/platform/logger"
	"phonenumber_backend/platform/phonenumbers"
	"phonenumber_backend/platform/phonenumbers/prefixmap"
	"phonenumber_backend/platform/validator"
)

// Module is the numbering bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
}

// NewModule creates and initializes the numbering module.
func NewModule(util *phonenumbers.Util, carriers *prefixmap.Map, defaultRegion string, val *validator.Validator, log *logger.Logger) *Module {
	svc := service.New(util, carriers, defaultRegion, log)
	h := handler.New(svc, val)

	return &Module{
		handler: h,
		service: svc,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "numbering"
}

// Service returns the service layer for external use.
func (m *Module) Service() *service.Service {
	return m.service
}

// RegisterRoutes mounts numbering routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	group := ctx.Protected.Group("/numbering")
	group.POST("/parse", m.handler.Parse)
	group.POST("/validate", m.handler.Validate)
	group.POST("/format", m.handler.Format)
	group.POST("/match", m.handler.Match)
	group.GET("/example", m.handler.Example)
	group.GET("/regions", m.handler.Regions)

	adminGroup := ctx.Admin.Group("/numbering")
	adminGroup.GET("/audit", m.handler.Audit)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
