package phases

import (
	"github.com/reusee/dscope"
	"github.com/reusee/termtape/logs"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}
