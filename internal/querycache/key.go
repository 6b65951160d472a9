package querycache

import "strings"

// Key addresses one cached query: a collection name plus optional scalar
// parameters, e.g. userStore:{uid}.
type Key struct {
	Collection string
	Params     []string
}

// NewKey builds a Key.
func NewKey(collection string, params ...string) Key {
	return Key{Collection: collection, Params: params}
}

// String renders the key as collection:p1:p2.
func (k Key) String() string {
	if len(k.Params) == 0 {
		return k.Collection
	}

	return k.Collection + ":" + strings.Join(k.Params, ":")
}

func (k Key) hasParam(param string) bool {
	for _, p := range k.Params {
		if p == param {
			return true
		}
	}

	return false
}
