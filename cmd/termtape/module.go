package main

import (
	"github.com/reusee/dscope"
	"github.com/reusee/termtape/debugs"
	"github.com/reusee/termtape/phases"
	"github.com/reusee/termtape/tapeconfigs"
	"github.com/reusee/termtape/tapes"
)

type Module struct {
	dscope.Module
	Tapes       tapes.Module
	Phases      phases.Module
	TapeConfigs tapeconfigs.Module
	Debugs      debugs.Module
}
