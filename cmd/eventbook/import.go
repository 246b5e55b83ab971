package main

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ersonp/eventbook-core/internal/domain/entities"
)

type importFlags struct {
	format string
	dryRun bool
}

func newImportCmd() *cobra.Command {
	var flags importFlags

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import persons and events from JSON or CSV",
		Long:  "Imports persons and events from a structured file. Invalid or duplicate entries are reported and skipped.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(cmd, args[0], flags)
		},
	}

	cmd.Flags().StringVarP(&flags.format, "format", "f", "auto", "File format (json, csv, auto)")
	cmd.Flags().BoolVar(&flags.dryRun, "dry-run", false, "Validate without saving")

	return cmd
}

type importResult struct {
	Imported int
	Skipped  int
	Errors   []error
}

func runImport(cmd *cobra.Command, filePath string, flags importFlags) error {
	if !contains(validImportFormats, flags.format) {
		return fmt.Errorf("invalid format %q, valid formats: %v", flags.format, validImportFormats)
	}

	format := flags.format
	if format == "auto" {
		switch strings.ToLower(filepath.Ext(filePath)) {
		case ".json":
			format = "json"
		case ".csv":
			format = "csv"
		default:
			return fmt.Errorf("cannot detect format of %s (use --format)", filePath)
		}
	}

	ctx := cmd.Context()

	return withInternalDeps(ctx, func(d *internalDeps) error {
		f, err := os.Open(filePath)
		if err != nil {
			return fmt.Errorf("opening file: %w", err)
		}
		defer f.Close()

		var doc exportDocument
		switch format {
		case "json":
			doc, err = decodeJSONImport(f)
		case "csv":
			doc, err = decodeCSVImport(f)
		}
		if err != nil {
			return fmt.Errorf("reading %s: %w", filePath, err)
		}

		fmt.Printf("Importing %s...\n", filePath)

		result := importDocument(d, doc)

		if len(result.Errors) > 0 {
			fmt.Printf("\nValidation errors (%d):\n", len(result.Errors))
			for _, e := range result.Errors {
				fmt.Printf("  %s\n", e.Error())
			}
		}

		fmt.Println()
		if flags.dryRun {
			fmt.Printf("Dry run: %d entries would be imported", result.Imported)
		} else {
			fmt.Printf("Imported: %d entries", result.Imported)
		}
		if result.Skipped > 0 {
			fmt.Printf(", %d skipped (already exist)", result.Skipped)
		}
		if len(result.Errors) > 0 {
			fmt.Printf(", %d errors", len(result.Errors))
		}
		fmt.Println()

		if flags.dryRun {
			return nil
		}
		if result.Imported == 0 {
			return nil
		}
		if err := d.storage.Save(ctx, d.model.Snapshot()); err != nil {
			return fmt.Errorf("saving snapshot: %w", err)
		}
		return nil
	})
}

func importDocument(d *internalDeps, doc exportDocument) importResult {
	var result importResult

	for i, p := range doc.Persons {
		person, err := validatePerson(p)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Errorf("person %d (%s): %w", i+1, p.Name, err))
			continue
		}
		if err := d.model.AddPerson(person); err != nil {
			if errors.Is(err, entities.ErrDuplicatePerson) {
				result.Skipped++
				continue
			}
			result.Errors = append(result.Errors, fmt.Errorf("person %d (%s): %w", i+1, p.Name, err))
			continue
		}
		result.Imported++
	}

	for i, ev := range doc.Events {
		event, err := validateEvent(ev)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Errorf("event %d (%s): %w", i+1, ev.Name, err))
			continue
		}
		if err := d.model.AddEvent(event); err != nil {
			if errors.Is(err, entities.ErrDuplicateEvent) {
				result.Skipped++
				continue
			}
			result.Errors = append(result.Errors, fmt.Errorf("event %d (%s): %w", i+1, ev.Name, err))
			continue
		}
		result.Imported++
	}

	return result
}

// validatePerson re-runs field validation so hand-edited files cannot smuggle
// malformed values into the store.
func validatePerson(p entities.Person) (entities.Person, error) {
	name, err := entities.NewName(string(p.Name))
	if err != nil {
		return entities.Person{}, err
	}
	phone, err := entities.NewPhone(string(p.Phone))
	if err != nil {
		return entities.Person{}, err
	}
	email, err := entities.NewEmail(string(p.Email))
	if err != nil {
		return entities.Person{}, err
	}
	address, err := entities.NewAddress(string(p.Address))
	if err != nil {
		return entities.Person{}, err
	}
	tags, err := revalidateTags(p.Tags)
	if err != nil {
		return entities.Person{}, err
	}
	return entities.Person{Name: name, Phone: phone, Email: email, Address: address, Tags: tags}, nil
}

func validateEvent(ev exportEvent) (entities.Event, error) {
	name, err := entities.NewName(ev.Name)
	if err != nil {
		return entities.Event{}, err
	}
	address, err := entities.NewAddress(ev.Address)
	if err != nil {
		return entities.Event{}, err
	}
	start, err := entities.NewDateTime(ev.StartTime)
	if err != nil {
		return entities.Event{}, err
	}
	tags, err := revalidateTags(ev.Tags)
	if err != nil {
		return entities.Event{}, err
	}
	return entities.Event{Name: name, Address: address, StartTime: start, Tags: tags}, nil
}

func revalidateTags(tags []entities.Tag) ([]entities.Tag, error) {
	if len(tags) == 0 {
		return nil, nil
	}
	values := make([]string, 0, len(tags))
	for _, t := range tags {
		values = append(values, string(t))
	}
	return entities.NewTagSet(values)
}

func decodeJSONImport(r io.Reader) (exportDocument, error) {
	var doc exportDocument
	decoder := json.NewDecoder(r)
	if err := decoder.Decode(&doc); err != nil {
		return exportDocument{}, fmt.Errorf("decoding json: %w", err)
	}
	return doc, nil
}

// decodeCSVImport accepts the same layouts export produces, detected by the
// header row.
func decodeCSVImport(r io.Reader) (exportDocument, error) {
	reader := csv.NewReader(r)
	records, err := reader.ReadAll()
	if err != nil {
		return exportDocument{}, fmt.Errorf("decoding csv: %w", err)
	}
	if len(records) < 1 {
		return exportDocument{}, fmt.Errorf("empty csv file")
	}

	header := strings.Join(records[0], ",")
	var doc exportDocument
	switch header {
	case "name,phone,email,address,tags":
		for _, row := range records[1:] {
			if len(row) != 5 {
				return exportDocument{}, fmt.Errorf("malformed person row: %v", row)
			}
			doc.Persons = append(doc.Persons, entities.Person{
				Name:    entities.Name(row[0]),
				Phone:   entities.Phone(row[1]),
				Email:   entities.Email(row[2]),
				Address: entities.Address(row[3]),
				Tags:    splitTags(row[4]),
			})
		}
	case "name,address,start_time,tags":
		for _, row := range records[1:] {
			if len(row) != 4 {
				return exportDocument{}, fmt.Errorf("malformed event row: %v", row)
			}
			doc.Events = append(doc.Events, exportEvent{
				Name:      row[0],
				Address:   row[1],
				StartTime: row[2],
				Tags:      splitTags(row[3]),
			})
		}
	default:
		return exportDocument{}, fmt.Errorf("unrecognized csv header: %s", header)
	}

	return doc, nil
}

func splitTags(s string) []entities.Tag {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ";")
	tags := make([]entities.Tag, 0, len(parts))
	for _, p := range parts {
		tags = append(tags, entities.Tag(p))
	}
	return tags
}
