// Package view renders the note list into a display model. It is a
// pure transformation: no queries, no session access, no mutation of
// its inputs.
package view

import (
	"strings"
	"time"

	"github.com/marcomarassi/note-keeper-service/internal/domain"
)

// EmptyMessage is shown when the filtered list has no cards.
const EmptyMessage = "Nessuna nota trovata"

// dateLayout renders timestamps the way an it-IT locale would.
const dateLayout = "02/01/2006, 15:04:05"

// Card is one rendered note. Text fields are HTML-escaped and safe to
// interpolate into markup verbatim.
type Card struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Text      string `json:"text"`
	ImageURL  string `json:"imageUrl,omitempty"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// Model is the rendered list plus the filter that produced it.
type Model struct {
	Cards        []Card `json:"cards"`
	Filter       string `json:"filter"`
	EmptyMessage string `json:"emptyMessage,omitempty"`
}

var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#039;",
)

// EscapeHTML neutralizes markup-significant characters. The ampersand
// rule runs first so already escaped entities are escaped again rather
// than passed through.
func EscapeHTML(s string) string {
	return escaper.Replace(s)
}

// Matches reports whether the note survives the filter. Matching is
// case-insensitive over title and text; an empty or whitespace-only
// filter matches all.
func Matches(note *domain.Note, filter string) bool {
	filter = strings.TrimSpace(filter)
	if filter == "" {
		return true
	}
	f := strings.ToLower(filter)
	return strings.Contains(strings.ToLower(note.Title), f) ||
		strings.Contains(strings.ToLower(note.Text), f)
}

// Filter keeps the notes matching filter, preserving input order.
func Filter(notes []*domain.Note, filter string) []*domain.Note {
	if strings.TrimSpace(filter) == "" {
		return notes
	}
	out := make([]*domain.Note, 0, len(notes))
	for _, n := range notes {
		if Matches(n, filter) {
			out = append(out, n)
		}
	}
	return out
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Local().Format(dateLayout)
}

// RenderCard escapes and formats a single note.
func RenderCard(note *domain.Note) Card {
	return Card{
		ID:        note.ID,
		Title:     EscapeHTML(note.Title),
		Text:      EscapeHTML(note.Text),
		ImageURL:  note.ImageURL,
		CreatedAt: formatDate(note.CreatedAt),
		UpdatedAt: formatDate(note.UpdatedAt),
	}
}

// Render filters and renders the list. Input order is preserved, so a
// snapshot sorted newest-first stays newest-first.
func Render(notes []*domain.Note, filter string) *Model {
	filtered := Filter(notes, filter)

	m := &Model{
		Cards:  make([]Card, 0, len(filtered)),
		Filter: filter,
	}
	for _, n := range filtered {
		m.Cards = append(m.Cards, RenderCard(n))
	}
	if len(m.Cards) == 0 {
		m.EmptyMessage = EmptyMessage
	}
	return m
}
