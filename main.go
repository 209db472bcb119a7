package main

import (
	"github.com/denotw/website/cmd"
	"github.com/denotw/website/internal"
	"github.com/denotw/website/internal/config"
)

func init() {
	config.InitConfig()
	config.InitViper()
	internal.InitLogging()
}

func main() {
	cmd.Execute()
}
