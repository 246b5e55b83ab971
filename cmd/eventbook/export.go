package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ersonp/eventbook-core/internal/domain/entities"
	"github.com/ersonp/eventbook-core/internal/domain/services"
)

type exportFlags struct {
	format string
	output string
	entity string
	limit  int
}

type exporter struct {
	format string
	output string
}

func newExportCmd() *cobra.Command {
	var flags exportFlags

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export persons and events to file",
		Long:  "Exports persons and events to JSON, CSV, or markdown format.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.format, "format", "f", "json", "Output format (json, csv, markdown)")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "Output file (default: stdout)")
	cmd.Flags().StringVarP(&flags.entity, "entity", "e", "all", "What to export (persons, events, all)")
	cmd.Flags().IntVarP(&flags.limit, "limit", "l", DefaultExportLimit, "Maximum number of entries to export")

	return cmd
}

func runExport(cmd *cobra.Command, flags exportFlags) error {
	if !contains(validExportFormats, flags.format) {
		return fmt.Errorf("invalid format %q, valid formats: %v", flags.format, validExportFormats)
	}
	if flags.entity != "persons" && flags.entity != "events" && flags.entity != "all" {
		return fmt.Errorf("invalid entity %q (valid: persons, events, all)", flags.entity)
	}
	if flags.entity == "all" && flags.format == "csv" {
		return fmt.Errorf("csv export needs a single entity (use --entity persons or --entity events)")
	}

	ctx := cmd.Context()

	return withModel(ctx, func(model *services.Model) error {
		e := &exporter{
			format: flags.format,
			output: flags.output,
		}

		var persons []entities.Person
		var events []entities.Event
		if flags.entity == "persons" || flags.entity == "all" {
			persons = truncate(model.Persons(), flags.limit)
		}
		if flags.entity == "events" || flags.entity == "all" {
			events = truncate(model.Events(), flags.limit)
		}

		if len(persons) == 0 && len(events) == 0 {
			return fmt.Errorf("nothing to export")
		}

		return e.export(persons, events)
	})
}

func truncate[T any](items []T, limit int) []T {
	if limit > 0 && len(items) > limit {
		return items[:limit]
	}
	return items
}

func (e *exporter) export(persons []entities.Person, events []entities.Event) (err error) {
	var w io.Writer
	var f *os.File

	if e.output != "" {
		f, err = os.OpenFile(e.output, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
		if err != nil {
			return fmt.Errorf("creating file: %w", err)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("closing file: %w", cerr)
			}
		}()
		w = f
	} else {
		w = os.Stdout
	}

	if err := e.formatEntries(w, persons, events); err != nil {
		return fmt.Errorf("formatting output: %w", err)
	}

	if e.output != "" {
		fmt.Printf("Exported %d persons and %d events to %s\n", len(persons), len(events), e.output)
	}

	return nil
}

func (e *exporter) formatEntries(w io.Writer, persons []entities.Person, events []entities.Event) error {
	switch e.format {
	case "json":
		return formatJSON(w, persons, events)
	case "csv":
		return formatCSV(w, persons, events)
	case "markdown":
		return formatMarkdown(w, persons, events)
	default:
		return fmt.Errorf("unknown format: %s", e.format)
	}
}

type exportDocument struct {
	Persons []entities.Person `json:"persons,omitempty"`
	Events  []exportEvent     `json:"events,omitempty"`
}

type exportEvent struct {
	Name      string         `json:"name"`
	Address   string         `json:"address"`
	StartTime string         `json:"start_time"`
	Tags      []entities.Tag `json:"tags,omitempty"`
}

func toExportEvents(events []entities.Event) []exportEvent {
	out := make([]exportEvent, 0, len(events))
	for _, ev := range events {
		out = append(out, exportEvent{
			Name:      string(ev.Name),
			Address:   string(ev.Address),
			StartTime: ev.StartTime.String(),
			Tags:      ev.Tags,
		})
	}
	return out
}

func formatJSON(w io.Writer, persons []entities.Person, events []entities.Event) error {
	doc := exportDocument{
		Persons: persons,
		Events:  toExportEvents(events),
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(doc)
}

func formatCSV(w io.Writer, persons []entities.Person, events []entities.Event) error {
	writer := csv.NewWriter(w)

	if len(persons) > 0 {
		if err := writer.Write([]string{"name", "phone", "email", "address", "tags"}); err != nil {
			return err
		}
		for _, p := range persons {
			row := []string{
				string(p.Name),
				string(p.Phone),
				string(p.Email),
				string(p.Address),
				joinTags(p.Tags),
			}
			if err := writer.Write(row); err != nil {
				return err
			}
		}
	} else {
		if err := writer.Write([]string{"name", "address", "start_time", "tags"}); err != nil {
			return err
		}
		for _, ev := range events {
			row := []string{
				string(ev.Name),
				string(ev.Address),
				ev.StartTime.String(),
				joinTags(ev.Tags),
			}
			if err := writer.Write(row); err != nil {
				return err
			}
		}
	}

	writer.Flush()
	return writer.Error()
}

func formatMarkdown(w io.Writer, persons []entities.Person, events []entities.Event) error {
	if len(persons) > 0 {
		if _, err := fmt.Fprintf(w, "# Persons\n\nTotal: %d\n\n", len(persons)); err != nil {
			return err
		}
		if _, err := fmt.Fprint(w, "| Name | Phone | Email | Address | Tags |\n"); err != nil {
			return err
		}
		if _, err := fmt.Fprint(w, "|------|-------|-------|---------|------|\n"); err != nil {
			return err
		}
		for _, p := range persons {
			if _, err := fmt.Fprintf(w, "| %s | %s | %s | %s | %s |\n",
				escapeMarkdown(string(p.Name)),
				escapeMarkdown(string(p.Phone)),
				escapeMarkdown(string(p.Email)),
				escapeMarkdown(string(p.Address)),
				escapeMarkdown(joinTags(p.Tags)),
			); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprint(w, "\n"); err != nil {
			return err
		}
	}

	if len(events) > 0 {
		if _, err := fmt.Fprintf(w, "# Events\n\nTotal: %d\n\n", len(events)); err != nil {
			return err
		}
		if _, err := fmt.Fprint(w, "| Name | Address | Start Time | Tags |\n"); err != nil {
			return err
		}
		if _, err := fmt.Fprint(w, "|------|---------|------------|------|\n"); err != nil {
			return err
		}
		for _, ev := range events {
			if _, err := fmt.Fprintf(w, "| %s | %s | %s | %s |\n",
				escapeMarkdown(string(ev.Name)),
				escapeMarkdown(string(ev.Address)),
				ev.StartTime.String(),
				escapeMarkdown(joinTags(ev.Tags)),
			); err != nil {
				return err
			}
		}
	}

	return nil
}

func joinTags(tags []entities.Tag) string {
	parts := make([]string, 0, len(tags))
	for _, t := range tags {
		parts = append(parts, string(t))
	}
	return strings.Join(parts, ";")
}

func escapeMarkdown(s string) string {
	s = strings.ReplaceAll(s, "|", "\\|")
	s = strings.ReplaceAll(s, "\n", " ")
	return s
}
