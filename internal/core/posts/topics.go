package posts

import "strings"

// Topic is a selectable raw source: the id the caller passes in, a display
// name and the table it reads from
type Topic struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Source string `json:"source"`
}

// Topics is the ordered topic registry
type Topics struct {
	order []string
	byID  map[string]Topic
}

// NewTopics builds a registry from id→source and id→name maps, keeping the
// order of ids. Ids without a source are skipped; a missing name falls back to the id
func NewTopics(ids []string, sources, names map[string]string) Topics {
	t := Topics{byID: make(map[string]Topic, len(ids))}
	for _, id := range ids {
		id = strings.TrimSpace(id)
		src := strings.TrimSpace(sources[id])
		if id == "" || src == "" {
			continue
		}
		if _, dup := t.byID[id]; dup {
			continue
		}
		name := strings.TrimSpace(names[id])
		if name == "" {
			name = id
		}
		t.order = append(t.order, id)
		t.byID[id] = Topic{ID: id, Name: name, Source: src}
	}
	return t
}

// Lookup returns the topic for id; unknown ids report false
func (t Topics) Lookup(id string) (Topic, bool) {
	tp, ok := t.byID[strings.TrimSpace(id)]
	return tp, ok
}

// All returns topics in declaration order
func (t Topics) All() []Topic {
	out := make([]Topic, 0, len(t.order))
	for _, id := range t.order {
		out = append(out, t.byID[id])
	}
	return out
}

// Len returns the number of topics
func (t Topics) Len() int { return len(t.order) }
