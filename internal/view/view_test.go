package view

import (
	"strings"
	"testing"
	"time"

	"github.com/marcomarassi/note-keeper-service/internal/domain"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
)

func noteGen() gopter.Gen {
	return gopter.CombineGens(
		gen.Int64Range(1, 1_000_000),
		gen.AnyString(),
		gen.AnyString(),
	).Map(func(values []any) *domain.Note {
		return &domain.Note{
			ID:    values[0].(int64),
			Title: values[1].(string),
			Text:  values[2].(string),
		}
	})
}

func notesGen() gopter.Gen {
	return gen.SliceOf(noteGen())
}

// Filtering an already filtered list must change nothing.
func TestPropertyFilterIdempotent(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("filter is idempotent", prop.ForAll(
		func(notes []*domain.Note, filter string) bool {
			once := Filter(notes, filter)
			twice := Filter(once, filter)

			if len(once) != len(twice) {
				return false
			}
			for i := range once {
				if once[i] != twice[i] {
					return false
				}
			}
			return true
		},
		notesGen(),
		gen.AlphaString(),
	))

	properties.Property("filter preserves input order", prop.ForAll(
		func(notes []*domain.Note, filter string) bool {
			filtered := Filter(notes, filter)

			pos := -1
			for _, f := range filtered {
				found := -1
				for i, n := range notes {
					if n == f {
						found = i
						break
					}
				}
				if found <= pos {
					return false
				}
				pos = found
			}
			return true
		},
		notesGen(),
		gen.AlphaString(),
	))

	properties.TestingRun(t)
}

func TestPropertyEscapeNeutralizesMarkup(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("escaped output carries no live markup characters", prop.ForAll(
		func(s string) bool {
			out := EscapeHTML(s)
			return !strings.ContainsAny(out, "<>\"'")
		},
		gen.AnyString(),
	))

	properties.Property("unescaping recovers the input", prop.ForAll(
		func(s string) bool {
			return decodeEntities(EscapeHTML(s)) == s
		},
		gen.AnyString(),
	))

	properties.TestingRun(t)
}

// decodeEntities undoes EscapeHTML: named entities first, &amp; last.
func decodeEntities(s string) string {
	s = strings.ReplaceAll(s, "&lt;", "<")
	s = strings.ReplaceAll(s, "&gt;", ">")
	s = strings.ReplaceAll(s, "&quot;", `"`)
	s = strings.ReplaceAll(s, "&#039;", "'")
	s = strings.ReplaceAll(s, "&amp;", "&")
	return s
}

func TestEscapeHTML(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`&`, "&amp;"},
		{`<`, "&lt;"},
		{`>`, "&gt;"},
		{`"`, "&quot;"},
		{`'`, "&#039;"},
		{`<script>alert("x")</script>`, "&lt;script&gt;alert(&quot;x&quot;)&lt;/script&gt;"},
		{`a & b < c`, "a &amp; b &lt; c"},
		{`&amp;`, "&amp;amp;"},
		{``, ``},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, EscapeHTML(tt.in))
	}
}

func TestMatches(t *testing.T) {
	note := &domain.Note{Title: "Lista della Spesa", Text: "pane e latte"}

	assert.True(t, Matches(note, ""))
	assert.True(t, Matches(note, "  "))
	assert.True(t, Matches(note, "\t\n"))
	assert.True(t, Matches(note, "spesa"))
	assert.True(t, Matches(note, "SPESA"))
	assert.True(t, Matches(note, "latte"))
	assert.False(t, Matches(note, "lavoro"))
}

func TestRenderWhitespaceFilterShowsAll(t *testing.T) {
	notes := []*domain.Note{
		{ID: 1, Title: "Spesa", Text: "pane"},
		{ID: 2, Title: "Lavoro", Text: "riunione"},
	}

	m := Render(notes, "  ")

	assert.Len(t, m.Cards, 2)
	assert.Empty(t, m.EmptyMessage)
}

func TestRenderKeepsSnapshotOrder(t *testing.T) {
	base := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	notes := []*domain.Note{
		{ID: 3, Title: "terza", Text: "c", UpdatedAt: base.Add(2 * time.Hour)},
		{ID: 2, Title: "seconda", Text: "b", UpdatedAt: base.Add(time.Hour)},
		{ID: 1, Title: "prima", Text: "a", UpdatedAt: base},
	}

	m := Render(notes, "")

	assert.Len(t, m.Cards, 3)
	assert.Equal(t, int64(3), m.Cards[0].ID)
	assert.Equal(t, int64(2), m.Cards[1].ID)
	assert.Equal(t, int64(1), m.Cards[2].ID)
	assert.Empty(t, m.EmptyMessage)
}

func TestRenderEmptyList(t *testing.T) {
	m := Render(nil, "")
	assert.Empty(t, m.Cards)
	assert.Equal(t, "Nessuna nota trovata", m.EmptyMessage)

	m = Render([]*domain.Note{{ID: 1, Title: "a", Text: "b"}}, "zzz")
	assert.Empty(t, m.Cards)
	assert.Equal(t, "Nessuna nota trovata", m.EmptyMessage)
}

func TestRenderCardEscapesFields(t *testing.T) {
	card := RenderCard(&domain.Note{
		ID:    7,
		Title: `<b>titolo</b>`,
		Text:  `testo & "altro"`,
	})

	assert.Equal(t, "&lt;b&gt;titolo&lt;/b&gt;", card.Title)
	assert.Equal(t, "testo &amp; &quot;altro&quot;", card.Text)
}

func TestRenderCardDateFormat(t *testing.T) {
	ts := time.Date(2025, 12, 31, 23, 59, 5, 0, time.Local)
	card := RenderCard(&domain.Note{ID: 1, Title: "a", Text: "b", CreatedAt: ts, UpdatedAt: ts})

	assert.Equal(t, "31/12/2025, 23:59:05", card.CreatedAt)
	assert.Equal(t, "31/12/2025, 23:59:05", card.UpdatedAt)

	card = RenderCard(&domain.Note{ID: 2, Title: "a", Text: "b"})
	assert.Empty(t, card.CreatedAt)
}
