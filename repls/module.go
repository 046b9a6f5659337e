package repls

import (
	"github.com/reusee/calc/debugs"
	"github.com/reusee/calc/logs"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Logs   logs.Module
	Debugs debugs.Module
}
