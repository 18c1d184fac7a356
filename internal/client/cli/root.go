package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
)

func (a *App) getStatus() string {
	if u := a.auth.CurrentUser(); u != nil {
		return fmt.Sprintf("(%s) ", u.Name)
	}
	return ""
}

// Root runs the REPL over stdin until the user exits.
func (a *App) Root(ctx context.Context) {
	printlnFn("Welcome to HealthMate CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}
