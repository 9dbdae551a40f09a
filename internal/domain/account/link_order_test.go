package account

import (
	"testing"

	"github.com/google/uuid"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLinks(names ...string) []*ProfileLink {
	links := make([]*ProfileLink, 0, len(names))
	for i, name := range names {
		links = append(links, &ProfileLink{ID: uuid.New(), LinkType: LinkTypeWebsite, Name: name, OrderNumber: intPtr(i + 1)})
	}
	return links
}

func orderOf(links []*ProfileLink) map[string]int {
	out := make(map[string]int, len(links))
	for _, l := range links {
		if l.OrderNumber != nil {
			out[l.Name] = *l.OrderNumber
		}
	}
	return out
}

func TestReorderForInsert(t *testing.T) {
	tests := []struct {
		name      string
		existing  []string
		requested *int
		wantNew   int
		wantOld   map[string]int
	}{
		{"empty profile gets first slot", nil, intPtr(7), 1, map[string]int{}},
		{"empty profile without order", nil, nil, 1, map[string]int{}},
		{"insert shifts siblings", []string{"a", "b", "c"}, intPtr(2), 2, map[string]int{"a": 1, "b": 3, "c": 4}},
		{"insert at front", []string{"a", "b"}, intPtr(1), 1, map[string]int{"a": 2, "b": 3}},
		{"clamped to end", []string{"a", "b", "c"}, intPtr(10), 4, map[string]int{"a": 1, "b": 2, "c": 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			existing := newLinks(tt.existing...)
			link := &ProfileLink{ID: uuid.New(), Name: "new", OrderNumber: tt.requested}

			ok := ReorderForInsert(existing, link)

			assert.True(t, ok)
			require.NotNil(t, link.OrderNumber)
			assert.Equal(t, tt.wantNew, *link.OrderNumber)
			assert.Equal(t, tt.wantOld, orderOf(existing))

			p := &Profile{Links: append(existing, link)}
			assert.True(t, p.HasDenseLinkOrder())
		})
	}
}

func TestReorderForInsert_WithoutOrderLeavesSiblings(t *testing.T) {
	existing := newLinks("a", "b")
	link := &ProfileLink{ID: uuid.New(), Name: "new"}

	ok := ReorderForInsert(existing, link)

	assert.False(t, ok)
	assert.Nil(t, link.OrderNumber)
	assert.Equal(t, map[string]int{"a": 1, "b": 2}, orderOf(existing))
}

func TestReorderForMove(t *testing.T) {
	tests := []struct {
		name      string
		move      string
		requested *int
		want      map[string]int
	}{
		{"lower to higher", "a", intPtr(3), map[string]int{"b": 1, "c": 2, "a": 3, "d": 4}},
		{"higher to lower", "d", intPtr(2), map[string]int{"a": 1, "d": 2, "b": 3, "c": 4}},
		{"same position", "b", intPtr(2), map[string]int{"a": 1, "b": 2, "c": 3, "d": 4}},
		{"clamped to last", "a", intPtr(99), map[string]int{"b": 1, "c": 2, "d": 3, "a": 4}},
		{"nil keeps position", "c", nil, map[string]int{"a": 1, "b": 2, "c": 3, "d": 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			links := newLinks("a", "b", "c", "d")
			var current *ProfileLink
			for _, l := range links {
				if l.Name == tt.move {
					current = l
				}
			}

			current.OrderNumber = ReorderForMove(links, current, tt.requested)

			assert.Equal(t, tt.want, orderOf(links))
			assert.True(t, (&Profile{Links: links}).HasDenseLinkOrder())
		})
	}
}

func TestReorderForMove_ExcludesMovedLinkByID(t *testing.T) {
	links := newLinks("a", "b", "c")
	for _, l := range links {
		l.LinkType = LinkTypeMail
	}

	links[0].OrderNumber = ReorderForMove(links, links[0], intPtr(2))

	assert.Equal(t, map[string]int{"b": 1, "a": 2, "c": 3}, orderOf(links))
}

func TestReorderForDelete(t *testing.T) {
	links := newLinks("a", "b", "c", "d")
	p := &Profile{Links: links}

	deleted := p.RemoveLink(links[1].ID)
	require.NotNil(t, deleted)
	ReorderForDelete(p.Links, deleted)

	assert.Equal(t, map[string]int{"a": 1, "c": 2, "d": 3}, orderOf(p.Links))
	assert.True(t, p.HasDenseLinkOrder())
}

func TestReorderForDelete_NilOrderIsNoop(t *testing.T) {
	links := newLinks("a", "b")
	ReorderForDelete(links, &ProfileLink{ID: uuid.New()})
	assert.Equal(t, map[string]int{"a": 1, "b": 2}, orderOf(links))
}

// Each step is decoded from a pair of ints: the first picks insert, move or
// delete, the second the position or the link to act on.
func TestProperty_DenseOrderSurvivesMutations(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("order numbers stay 1..N", prop.ForAll(
		func(kinds []int, positions []int) bool {
			p := &Profile{}
			for i, kind := range kinds {
				pos := 1
				if i < len(positions) {
					pos = positions[i]
				}
				switch {
				case kind == 0 || len(p.Links) == 0:
					link := &ProfileLink{ID: uuid.New(), OrderNumber: intPtr(pos)}
					ReorderForInsert(p.Links, link)
					p.Links = append(p.Links, link)
				case kind == 1:
					current := p.Links[pos%len(p.Links)]
					current.OrderNumber = ReorderForMove(p.Links, current, intPtr(pos))
				default:
					deleted := p.RemoveLink(p.Links[pos%len(p.Links)].ID)
					ReorderForDelete(p.Links, deleted)
				}
				if !p.HasDenseLinkOrder() {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.IntRange(0, 2)),
		gen.SliceOf(gen.IntRange(1, 12)),
	))

	properties.Property("move places the link at the clamped target", prop.ForAll(
		func(n, from, to int) bool {
			names := make([]string, n)
			for i := range names {
				names[i] = string(rune('a' + i))
			}
			links := newLinks(names...)
			current := links[(from-1)%n]

			current.OrderNumber = ReorderForMove(links, current, intPtr(to))

			want := to
			if want > n {
				want = n
			}
			return *current.OrderNumber == want && (&Profile{Links: links}).HasDenseLinkOrder()
		},
		gen.IntRange(1, 10),
		gen.IntRange(1, 10),
		gen.IntRange(1, 15),
	))

	properties.TestingRun(t)
}
