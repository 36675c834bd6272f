package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	ID    uint   `json:"id"`
	Title string `json:"title"`
}

func TestUnmarshalListWrapped(t *testing.T) {
	var items []item
	err := UnmarshalList([]byte(`{"status":true,"message":"ok","data":[{"id":1,"title":"a"}]}`), &items)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, uint(1), items[0].ID)
}

func TestUnmarshalListBareArray(t *testing.T) {
	var items []item
	err := UnmarshalList([]byte(`[{"id":1,"title":"a"}]`), &items)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, uint(1), items[0].ID)
}

func TestUnmarshalListBothShapesNormalizeIdentically(t *testing.T) {
	var wrapped, bare []item
	require.NoError(t, UnmarshalList([]byte(`{"data":[{"id":1,"title":"a"}]}`), &wrapped))
	require.NoError(t, UnmarshalList([]byte(`[{"id":1,"title":"a"}]`), &bare))
	assert.Equal(t, wrapped, bare)
}

func TestUnmarshalListNullData(t *testing.T) {
	var items []item
	err := UnmarshalList([]byte(`{"status":true,"message":"ok","data":null}`), &items)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestUnmarshalDataWrapped(t *testing.T) {
	var it item
	err := UnmarshalData([]byte(`{"status":true,"data":{"id":3,"title":"x"}}`), &it)
	require.NoError(t, err)
	assert.Equal(t, uint(3), it.ID)
}

func TestUnmarshalDataBare(t *testing.T) {
	var it item
	err := UnmarshalData([]byte(`{"id":3,"title":"x"}`), &it)
	require.NoError(t, err)
	assert.Equal(t, uint(3), it.ID)
	assert.Equal(t, "x", it.Title)
}
