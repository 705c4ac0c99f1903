package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/finances/internal/client/client"
	"github.com/dmitrijs2005/finances/internal/client/config"
)

type App struct {
	config *config.Config
	client client.Client
	reader *bufio.Reader
	out    io.Writer
	email  string
}

// newClient is a test seam for the transport constructor.
var newClient = func(c *config.Config) (client.Client, error) {
	return client.NewFinancesClient(c.ServerEndpointAddr, c.RequestTimeout)
}

func NewApp(c *config.Config) (*App, error) {
	cl, err := newClient(c)
	if err != nil {
		return nil, fmt.Errorf("error connecting to %s: %w", c.ServerEndpointAddr, err)
	}

	return &App{
		config: c,
		client: cl,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}, nil
}

func (a *App) isLoggedIn() bool {
	return a.client.IsLoggedIn()
}

func (a *App) getStatus() string {
	if a.email == "" || !a.isLoggedIn() {
		return ""
	}
	return fmt.Sprintf("(%s)", a.email)
}

// Run greets the user, checks the server is reachable and blocks in the
// REPL until the user exits or stdin is closed.
func (a *App) Run(ctx context.Context) {
	defer a.client.Close()

	printlnFn("Finances CLI (type 'help' for commands)")
	if err := a.client.Ping(ctx); err != nil {
		printlnFn("Server is not reachable:", err)
	}

	runREPL(ctx, a, a.getStatus, a.reader)
}
