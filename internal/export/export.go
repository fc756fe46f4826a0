// Package export serializes task lists for use outside the app.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/AlaxSwum/focus-cli/internal/domain"
)

type document struct {
	ExportedAt string  `json:"exported_at" yaml:"exported_at"`
	Count      int     `json:"count" yaml:"count"`
	Tasks      []entry `json:"tasks" yaml:"tasks"`
}

type entry struct {
	ID          string `json:"id" yaml:"id"`
	Kind        string `json:"kind" yaml:"kind"`
	Subtype     string `json:"subtype,omitempty" yaml:"subtype,omitempty"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Notes       string `json:"notes,omitempty" yaml:"notes,omitempty"`
	Date        string `json:"date,omitempty" yaml:"date,omitempty"`
	Start       string `json:"start,omitempty" yaml:"start,omitempty"`
	End         string `json:"end,omitempty" yaml:"end,omitempty"`
	Priority    string `json:"priority" yaml:"priority"`
	Completed   bool   `json:"completed" yaml:"completed"`
	Skipped     bool   `json:"skipped" yaml:"skipped"`
	SkipReason  string `json:"skip_reason,omitempty" yaml:"skip_reason,omitempty"`
	MeetingLink string `json:"meeting_link,omitempty" yaml:"meeting_link,omitempty"`
}

func buildDocument(tasks []domain.Task, now time.Time) document {
	doc := document{
		ExportedAt: now.UTC().Format(time.RFC3339),
		Count:      len(tasks),
		Tasks:      make([]entry, 0, len(tasks)),
	}
	for _, t := range tasks {
		e := entry{
			ID:          t.ID,
			Kind:        string(t.Kind),
			Subtype:     t.Subtype,
			Title:       t.Title,
			Description: t.Description,
			Notes:       t.Notes,
			Priority:    string(t.Priority),
			Completed:   t.IsCompleted,
			Skipped:     t.IsSkipped,
			SkipReason:  t.SkipReason,
			MeetingLink: t.MeetingLink,
		}
		if !t.Date.IsZero() {
			e.Date = t.Date.String()
		}
		if t.HasTimeExtent() {
			e.Start = fmt.Sprintf("%02d:%02d", t.StartHour, t.StartMinute)
			e.End = fmt.Sprintf("%02d:%02d", t.EndHour, t.EndMinute)
		}
		doc.Tasks = append(doc.Tasks, e)
	}
	return doc
}

// WriteJSON writes tasks to w as indented JSON.
func WriteJSON(w io.Writer, tasks []domain.Task, now time.Time) error {
	data, err := json.MarshalIndent(buildDocument(tasks, now), "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("write json: %w", err)
	}
	return nil
}

// WriteYAML writes tasks to w as a YAML document.
func WriteYAML(w io.Writer, tasks []domain.Task, now time.Time) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(buildDocument(tasks, now)); err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	return enc.Close()
}
