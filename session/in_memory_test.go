package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/talentgraph/talentgraph/core"
)

func TestInMemoryStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewInMemoryStore()

	turns := []core.Turn{
		core.NewUserTurn("who knows python?"),
		core.NewAssistantTurn(`Query result:\n[{"c.name": "Arju Thapa"}]`),
	}
	assert.NoError(t, store.Save(ctx, "sess-1", turns))

	got, err := store.Load(ctx, "sess-1")
	assert.NoError(t, err)
	assert.Equal(t, turns, got)
}

func TestInMemoryStore_LoadMissing(t *testing.T) {
	store := NewInMemoryStore()

	got, err := store.Load(context.Background(), "absent")
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestInMemoryStore_SaveOverwrites(t *testing.T) {
	ctx := context.Background()
	store := NewInMemoryStore()

	assert.NoError(t, store.Save(ctx, "sess-1", []core.Turn{core.NewUserTurn("first")}))
	assert.NoError(t, store.Save(ctx, "sess-1", []core.Turn{
		core.NewUserTurn("first"),
		core.NewAssistantTurn("reply"),
	}))

	got, err := store.Load(ctx, "sess-1")
	assert.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestInMemoryStore_Clear(t *testing.T) {
	ctx := context.Background()
	store := NewInMemoryStore()

	assert.NoError(t, store.Save(ctx, "sess-1", []core.Turn{core.NewUserTurn("hi")}))
	assert.NoError(t, store.Clear(ctx, "sess-1"))

	got, err := store.Load(ctx, "sess-1")
	assert.NoError(t, err)
	assert.Nil(t, got)

	// Clearing an unknown session is not an error.
	assert.NoError(t, store.Clear(ctx, "absent"))
}

func TestInMemoryStore_IsolatesCallerSlices(t *testing.T) {
	ctx := context.Background()
	store := NewInMemoryStore()

	turns := []core.Turn{core.NewUserTurn("hi")}
	assert.NoError(t, store.Save(ctx, "sess-1", turns))
	turns[0].Content = "mutated"

	got, err := store.Load(ctx, "sess-1")
	assert.NoError(t, err)
	assert.Equal(t, "hi", got[0].Content)

	got[0].Content = "mutated again"
	again, err := store.Load(ctx, "sess-1")
	assert.NoError(t, err)
	assert.Equal(t, "hi", again[0].Content)
}
