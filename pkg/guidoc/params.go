package guidoc

import "strings"

// Params is a flat string-to-string mapping that remembers insertion order
// so generated layout calls are byte-stable across compiles.
type Params struct {
	keys   []string
	values map[string]string
}

// NewParams creates an empty parameter mapping.
func NewParams() *Params {
	return &Params{values: make(map[string]string)}
}

// Len returns the number of parameters.
func (p *Params) Len() int { return len(p.keys) }

// Has reports whether key is present.
func (p *Params) Has(key string) bool {
	_, ok := p.values[key]
	return ok
}

// Get returns the value for key and whether it was present.
func (p *Params) Get(key string) (string, bool) {
	v, ok := p.values[key]
	return v, ok
}

// Set stores key=value. An existing key keeps its original position.
func (p *Params) Set(key, value string) {
	if _, ok := p.values[key]; !ok {
		p.keys = append(p.keys, key)
	}
	p.values[key] = value
}

// Keys returns the parameter names in insertion order.
func (p *Params) Keys() []string {
	keys := make([]string, len(p.keys))
	copy(keys, p.keys)
	return keys
}

// Pairs renders the parameters as "k=v, k=v" in insertion order.
func (p *Params) Pairs() string {
	var sb strings.Builder
	for i, k := range p.keys {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(k)
		sb.WriteByte('=')
		sb.WriteString(p.values[k])
	}
	return sb.String()
}

// parseParams parses a parameter clause of comma-separated key=value terms.
// Values are opaque strings and are never evaluated.
func parseParams(params, context string) (*Params, error) {
	p := NewParams()
	for _, term := range strings.Split(params, ",") {
		kv := strings.Split(term, "=")
		if len(kv) != 2 {
			return nil, &ParameterError{Context: context, Params: params}
		}
		p.Set(strings.TrimSpace(kv[0]), strings.TrimSpace(kv[1]))
	}
	return p, nil
}
