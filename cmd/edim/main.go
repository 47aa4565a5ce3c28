package main

import (
	"github.com/mkarpel/edim/cmd/edim/cmd"
	"github.com/mkarpel/edim/internal/pkg"
)

var (
	GitCommit string
	BuildDate string
)

func main() {
	pkg.InitLog()
	cmd.Execute(cmd.BuildInfo{
		Commit: GitCommit,
		Date:   BuildDate,
	})
}
