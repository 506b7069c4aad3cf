//go:build wireinject

package ioc

import (
	"github.com/google/wire"
	"github.com/rajmahato111/HyreHR-sub001/internal/calendar"
	"github.com/rajmahato111/HyreHR-sub001/internal/interview"
	"github.com/rajmahato111/HyreHR-sub001/internal/scheduling"
)

var BaseSet = wire.NewSet(InitDB, InitRedis, InitCache, InitMQ)

func InitApp() (*App, error) {
	wire.Build(wire.Struct(new(App), "*"),
		BaseSet,
		InitSession,
		calendar.InitModule,
		interview.InitModule,
		scheduling.InitModule,
		wire.FieldsOf(new(*calendar.Module), "Hdl"),
		wire.FieldsOf(new(*scheduling.Module), "Hdl", "AdminHdl", "CleanJob"),
		initGinxServer,
		InitAdminServer,
		initCronJobs,
	)
	return new(App), nil
}
