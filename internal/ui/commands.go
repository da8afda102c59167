package ui

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/dexter/internal/logtail"
	"github.com/five82/dexter/internal/pipeline"
	"github.com/five82/dexter/internal/pokeapi"
)

var errNoClient = errors.New("no catalog client configured")

// Messages

type boundMsg struct {
	count int
	err   error
}

type recordMsg struct {
	ticket pipeline.Ticket
	rec    *pokeapi.Pokemon
	err    error
}

type transitionMsg struct {
	ticket pipeline.Ticket
}

type diagnosticsMsg struct {
	entries []logtail.Entry
	err     error
}

// Commands

func lookupBoundCmd(ctx context.Context, client pokeapi.Fetcher) tea.Cmd {
	return func() tea.Msg {
		if client == nil {
			return boundMsg{err: errNoClient}
		}
		count, err := client.FetchCount(ctx)
		return boundMsg{count: count, err: err}
	}
}

func fetchRecordCmd(ctx context.Context, client pokeapi.Fetcher, ticket pipeline.Ticket, term string) tea.Cmd {
	return func() tea.Msg {
		if client == nil {
			return recordMsg{ticket: ticket, err: errNoClient}
		}
		rec, err := client.FetchPokemon(ctx, term)
		return recordMsg{ticket: ticket, rec: rec, err: err}
	}
}

func transitionCmd(d time.Duration, ticket pipeline.Ticket) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return transitionMsg{ticket: ticket}
	})
}

func readDiagnosticsCmd(path string, limit int) tea.Cmd {
	return func() tea.Msg {
		if path == "" {
			return diagnosticsMsg{}
		}
		entries, err := logtail.ReadEntries(path, limit)
		return diagnosticsMsg{entries: entries, err: err}
	}
}
