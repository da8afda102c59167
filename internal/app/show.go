package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/dexter/internal/diag"
	"github.com/five82/dexter/internal/nav"
	"github.com/five82/dexter/internal/pipeline"
	"github.com/five82/dexter/internal/pokeapi"
)

// ErrEmptyTerm is returned by Show when the term is blank.
var ErrEmptyTerm = errors.New("search term is empty")

var (
	showName  = lipgloss.NewStyle().Bold(true)
	showID    = lipgloss.NewStyle().Foreground(lipgloss.Color("#719cd6"))
	showMuted = lipgloss.NewStyle().Foreground(lipgloss.Color("#738091"))
)

// Show resolves term the way the search field does, fetches the record and
// prints it to out without starting the TUI.
func Show(ctx context.Context, opts Options, term string, out io.Writer) error {
	target, ok := nav.ResolveSearchTerm(term)
	if !ok {
		return ErrEmptyTerm
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}
	log, closeLog, err := diag.New(diag.Options{Path: cfg.LogFile, Verbose: opts.Verbose})
	if err != nil {
		return fmt.Errorf("init diagnostic log: %w", err)
	}
	defer closeLog()

	client, err := newClient(cfg)
	if err != nil {
		return fmt.Errorf("init catalog client: %w", err)
	}

	rec, err := client.FetchPokemon(ctx, target.Key())
	if err != nil {
		diag.Component(log, "show").WithError(err).WithField("target", target.Key()).Error("lookup failed")
		if errors.Is(err, pokeapi.ErrNotFound) {
			return fmt.Errorf("%s: %s", target.Key(), strings.ToLower(pipeline.NotFoundText))
		}
		return fmt.Errorf("lookup %s: %w", target.Key(), err)
	}

	_, err = io.WriteString(out, renderRecord(pipeline.Project(*rec)))
	return err
}

func renderRecord(v pipeline.RecordView) string {
	var b strings.Builder
	b.WriteString(showName.Render(v.DisplayName))
	if label := v.IDLabel(); label != "" {
		b.WriteString("  ")
		b.WriteString(showID.Render(label))
	}
	b.WriteString("\n")
	b.WriteString(v.TypeSummary())
	b.WriteString("\n")
	if v.ImageURL != "" {
		b.WriteString(showMuted.Render("image " + v.ImageURL))
		b.WriteString("\n")
	}
	b.WriteString(showMuted.Render(v.AltText()))
	b.WriteString("\n")
	return b.String()
}
