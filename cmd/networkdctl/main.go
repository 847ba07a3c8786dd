// networkdctl inspects and monitors systemd-networkd runtime state.
package main

import (
	"github.com/alecthomas/kong"

	"github.com/frobware/go-networkd/cmd/networkdctl/cli"
)

func main() {
	var root cli.CLI
	ctx := kong.Parse(&root, cli.KongOptions()...)
	ctx.FatalIfErrorf(ctx.Run(&root))
}
