package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()

	in := []record{{ID: "1", Name: "スマートウォッチ", Price: 28900}}
	require.NoError(t, st.Write(ctx, SlotProducts, in))

	var out []record
	found, err := st.Read(ctx, SlotProducts, &out)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, in, out)
}

func TestMemoryStore_SlotsAreIndependent(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()

	require.NoError(t, st.Write(ctx, SlotProducts, []record{{ID: "1"}}))

	var out []record
	found, err := st.Read(ctx, SlotPurchases, &out)
	require.NoError(t, err)
	assert.False(t, found)
}
