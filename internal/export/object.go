package export

import orderedmap "github.com/wk8/go-ordered-map/v2"

// Object is a JSON/YAML mapping that keeps its keys in insertion order.
type Object = orderedmap.OrderedMap[string, any]

// NewObject returns an empty Object.
func NewObject() *Object {
	return orderedmap.New[string, any]()
}

func setIf(o *Object, cond bool, key string, v any) {
	if cond {
		o.Set(key, v)
	}
}

// Keys returns the keys of o in order.
func Keys(o *Object) []string {
	keys := make([]string, 0, o.Len())
	for pair := o.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}

	return keys
}
