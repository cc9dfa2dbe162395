package knowledge

import "strings"

// Filter constrains a similarity search to knowledge chunks matching every
// facet. Country is always present; topic is optional, and an absent topic
// means broader retrieval, not an error.
type Filter struct {
	Country string
	Topic   string
}

// BuildFilter normalizes request fields into the ingestion-time facet
// vocabulary: countries are lower-cased, topic tags use underscores.
func BuildFilter(jurisdiction, topic string) Filter {
	f := Filter{
		Country: strings.ToLower(strings.TrimSpace(jurisdiction)),
	}

	if topic != "" {
		f.Topic = strings.ReplaceAll(strings.ToLower(strings.TrimSpace(topic)), "-", "_")
	}

	return f
}

// Facets returns the facet map applied to the search.
func (f Filter) Facets() map[string]string {
	facets := map[string]string{"country": f.Country}
	if f.Topic != "" {
		facets["topic"] = f.Topic
	}
	return facets
}

// qdrantFilter renders the facets as a qdrant payload filter. Chunk
// metadata is stored at the top level of the point payload, so facet names
// are used as keys directly.
func (f Filter) qdrantFilter() map[string]any {
	must := make([]map[string]any, 0, 2)

	for _, facet := range []struct{ key, value string }{
		{"country", f.Country},
		{"topic", f.Topic},
	} {
		if facet.value == "" {
			continue
		}
		must = append(must, map[string]any{
			"key":   facet.key,
			"match": map[string]any{"value": facet.value},
		})
	}

	return map[string]any{"must": must}
}
