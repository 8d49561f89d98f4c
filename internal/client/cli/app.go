package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/Vivekdembla/pdf-frontend/internal/client/api"
	"github.com/Vivekdembla/pdf-frontend/internal/client/config"
	"github.com/Vivekdembla/pdf-frontend/internal/client/workflow"
	"github.com/Vivekdembla/pdf-frontend/internal/logging"
	"golang.org/x/term"
)

// isTerminal is a test seam for terminal detection.
var isTerminal = func() bool { return term.IsTerminal(int(os.Stdin.Fd())) }

type App struct {
	config   *config.Config
	ctrl     *workflow.Controller
	api      api.Client
	log      logging.Logger
	out      io.Writer
	prompter Prompter
}

// NewApp wires the workflow controller to the given API client. When stdin is
// a terminal the fill command uses interactive survey prompts, otherwise it
// falls back to plain line input so the app stays usable in pipes and tests.
func NewApp(cfg *config.Config, apiClient api.Client, log logging.Logger) *App {
	var prompter Prompter
	if isTerminal() {
		prompter = &surveyPrompter{}
	} else {
		prompter = &plainPrompter{reader: bufio.NewReader(os.Stdin), w: os.Stdout}
	}

	return &App{
		config:   cfg,
		ctrl:     workflow.New(apiClient, log),
		api:      apiClient,
		log:      log,
		out:      os.Stdout,
		prompter: prompter,
	}
}

func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, "PDF template fill CLI (type 'help' for commands)")
	runREPL(ctx, a, a.statusLine, bufio.NewScanner(os.Stdin))
}

// statusLine is the short form shown in the REPL prompt.
func (a *App) statusLine() string {
	s := string(a.ctrl.State())

	switch a.ctrl.State() {
	case workflow.StateFileSelected:
		s = fmt.Sprintf("%s %s", s, a.ctrl.FileName())
	case workflow.StateTemplateReady:
		filled := 0
		fields := a.ctrl.Fields()
		for _, value := range fields {
			if value != "" {
				filled++
			}
		}
		s = fmt.Sprintf("%s %d/%d", s, filled, len(fields))
		if a.ctrl.HasDocument() {
			s += " document-ready"
		}
	}

	if a.ctrl.LastError() != "" {
		s += " !"
	}
	return fmt.Sprintf("(%s)", s)
}
