// Command corvid is a UCI chess engine.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/arjunp/corvid/pkg/engine"
	"github.com/arjunp/corvid/pkg/uci"
	"github.com/seekerror/logw"
)

var hashSizeMB = flag.Int("hash", 64, "Transposition table size in MB")

func init() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `usage: corvid [options]

corvid is a UCI chess engine.
Options:
`)
		flag.PrintDefaults()
	}
}

func main() {
	flag.Parse()
	ctx := context.Background()

	e := engine.New(engine.WithHashSizeMB(*hashSizeMB))

	in := engine.ReadStdinLines(ctx)
	first, ok := <-in
	if !ok {
		return
	}
	if first != uci.ProtocolName {
		flag.Usage()
		logw.Exitf(ctx, "unsupported protocol handshake: %q", first)
	}

	driver, out := uci.NewDriver(ctx, e, in, engine.NoBook{})
	go engine.WriteStdoutLines(ctx, out)

	<-driver.Closed()
}
