package rtdb

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDropNulls(t *testing.T) {
	docs := map[string]json.RawMessage{
		"a": json.RawMessage(`{"name":"x"}`),
		"b": json.RawMessage(`null`),
		"c": nil,
	}

	out := dropNulls(docs)

	assert.Len(t, out, 1)
	assert.Contains(t, out, "a")
	assert.Empty(t, dropNulls(nil))
}

func TestNewKey(t *testing.T) {
	s := &Store{}

	a, b := s.NewKey("priceHistory"), s.NewKey("priceHistory")

	assert.NotEqual(t, a, b)
	assert.Len(t, a, 36)
}
