package usecase

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptional_UnmarshalJSON(t *testing.T) {
	type payload struct {
		Link Optional[string] `json:"link"`
	}

	t.Run("absent field keeps zero value", func(t *testing.T) {
		var p payload
		require.NoError(t, json.Unmarshal([]byte(`{}`), &p))

		assert.False(t, p.Link.Set)
		assert.False(t, p.Link.Valid)
	})

	t.Run("explicit null is set but not valid", func(t *testing.T) {
		var p payload
		require.NoError(t, json.Unmarshal([]byte(`{"link": null}`), &p))

		assert.True(t, p.Link.Set)
		assert.False(t, p.Link.Valid)
	})

	t.Run("value is set and valid", func(t *testing.T) {
		var p payload
		require.NoError(t, json.Unmarshal([]byte(`{"link": "https://example.com"}`), &p))

		assert.True(t, p.Link.Set)
		assert.True(t, p.Link.Valid)
		assert.Equal(t, "https://example.com", p.Link.Value)
	})

	t.Run("wrong type fails", func(t *testing.T) {
		var p payload
		assert.Error(t, json.Unmarshal([]byte(`{"link": 42}`), &p))
	})
}

func TestOptional_Constructors(t *testing.T) {
	opt := NewOptional("https://example.com")
	assert.True(t, opt.Set)
	assert.True(t, opt.Valid)
	assert.Equal(t, "https://example.com", opt.Value)

	null := NewNullOptional[string]()
	assert.True(t, null.Set)
	assert.False(t, null.Valid)
}
