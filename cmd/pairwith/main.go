// Command pairwith finds the collaborators named in a commit message
// ("Pairing with @pooh and @piglet") and credits them with
// Co-authored-by trailers. Install it as a commit-msg hook:
//
//	printf '#!/bin/sh\nexec pairwith hook "$1"\n' > .git/hooks/commit-msg
//	chmod +x .git/hooks/commit-msg
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := newCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "pairwith: %s\n", err)
		os.Exit(1)
	}
}
