package console

import (
	"context"
	"strings"

	"github.com/giantswarm/cmdtree/internal/config"
	"github.com/giantswarm/cmdtree/internal/template"
	"github.com/giantswarm/cmdtree/pkg/cmdtree"
	"github.com/giantswarm/cmdtree/pkg/logging"

	"github.com/jedib0t/go-pretty/v6/text"
)

const (
	messageNotFound = "notFound"
	messageUsage    = "usage"
	messageFailed   = "failed"
)

// MessageErrorHandler renders the registry's recovered failures through
// the configured message templates.
type MessageErrorHandler struct {
	prefix    string
	color     bool
	templates *template.Engine
}

var _ cmdtree.ErrorHandler = (*MessageErrorHandler)(nil)

// NewMessageErrorHandler compiles the message templates. Empty templates
// fall back to the defaults.
func NewMessageErrorHandler(prefix string, color bool, messages config.MessagesConfig) (*MessageErrorHandler, error) {
	engine := template.New()
	sources := map[string]string{
		messageNotFound: orDefault(messages.NotFound, config.DefaultNotFoundTemplate),
		messageUsage:    orDefault(messages.Usage, config.DefaultUsageTemplate),
		messageFailed:   orDefault(messages.Failed, config.DefaultFailedTemplate),
	}
	for name, source := range sources {
		if err := engine.Parse(name, source); err != nil {
			return nil, err
		}
	}

	return &MessageErrorHandler{prefix: prefix, color: color, templates: engine}, nil
}

func orDefault(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}

// OnCommandNotFound lists the children of the deepest branch reached.
func (h *MessageErrorHandler) OnCommandNotFound(_ context.Context, _ *cmdtree.Registry, caller cmdtree.Caller, branch cmdtree.Branch) {
	h.print(caller, messageNotFound, map[string]interface{}{
		"Path":       strings.Join(branch.Path(), " "),
		"Candidates": branch.ChildNames(true),
	})
}

// OnArgumentShortfall shows the usage of the command.
func (h *MessageErrorHandler) OnArgumentShortfall(_ context.Context, _ *cmdtree.Registry, caller cmdtree.Caller, cmd *cmdtree.Command) {
	h.print(caller, messageUsage, map[string]interface{}{
		"Path":  cmd.Path(),
		"Usage": cmd.Usage(),
	})
}

// OnExecutionFailed shows the failure message. Silent failures print nothing.
func (h *MessageErrorHandler) OnExecutionFailed(_ context.Context, _ *cmdtree.Registry, caller cmdtree.Caller, err *cmdtree.ExecutionError) {
	if err.Message == "" {
		return
	}
	h.print(caller, messageFailed, map[string]interface{}{
		"Message": err.Message,
	})
}

func (h *MessageErrorHandler) print(caller cmdtree.Caller, name string, data map[string]interface{}) {
	prefix := h.prefix
	if h.color && prefix != "" {
		prefix = text.FgRed.Sprint(prefix)
	}

	msg, err := h.templates.Render(name, template.MergeContexts(map[string]interface{}{"Prefix": prefix}, data))
	if err != nil {
		logging.Error("Console", err, "Failed to render %s message", name)
		return
	}
	caller.Print(msg)
}
