package main

import (
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	"attachsweep/cmd/attachsweep/cmd"
)

func main() {
	commonlog.Configure(1, nil)
	cmd.Execute()
}
