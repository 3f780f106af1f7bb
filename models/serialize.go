package models

// Serializer is implemented by every catalog entity.
type Serializer interface {
	Serialize() map[string]any
}

// SerializeAll serializes items in order. The result is never nil so an
// empty listing encodes as a JSON array.
func SerializeAll[T Serializer](items []T) []map[string]any {
	out := make([]map[string]any, 0, len(items))
	for _, item := range items {
		out = append(out, item.Serialize())
	}
	return out
}
