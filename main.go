package main

import (
	"github.com/mj1618/wintitle/cmd"
	_ "github.com/mj1618/wintitle/internal/platform/gioui"
)

func main() {
	cmd.Execute()
}
