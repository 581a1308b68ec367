package autoload

import (
	configx "github.com/edumentor/edumentor/pkg/config"
	logx "github.com/edumentor/edumentor/pkg/logger"
)

func init() {
	logx.Init(*configx.MustNew[logx.Config]("LOG"))
}
