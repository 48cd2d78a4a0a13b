package persistence

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orchardlog/entities"
	"orchardlog/pkg/catalog"
	kv "orchardlog/pkg/kv/repositoryImp"
)

// brokenRepo fails every read.
type brokenRepo struct{}

func (brokenRepo) Get(context.Context, string) ([]byte, bool, error) {
	return nil, false, errors.New("io error")
}
func (brokenRepo) Put(context.Context, string, []byte) error { return errors.New("io error") }

func defIDs(defs []entities.ActivityDefinition) []string {
	out := make([]string, 0, len(defs))
	for _, d := range defs {
		out = append(out, d.ID)
	}
	return out
}

// ------------------------------------------------------------
// Fallbacks
// ------------------------------------------------------------

func TestLogSlot_Fallbacks(t *testing.T) {
	ctx := context.Background()

	m := kv.NewMemory()
	assert.Equal(t, catalog.SeedLogs(), NewLogSlot(m, true).Load(ctx), "missing key seeds demo data")
	assert.Empty(t, NewLogSlot(m, false).Load(ctx))

	m.Set(KeyLogs, `{not json`)
	assert.Len(t, NewLogSlot(m, true).Load(ctx), 4)

	m.Set(KeyLogs, `null`)
	assert.Len(t, NewLogSlot(m, true).Load(ctx), 4)

	assert.Len(t, NewLogSlot(brokenRepo{}, true).Load(ctx), 4)
}

func TestLogSlot_EmptyArrayIsKept(t *testing.T) {
	m := kv.NewMemory()
	m.Set(KeyLogs, `[]`)
	got := NewLogSlot(m, true).Load(context.Background())
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestSlot_SaveThenLoad(t *testing.T) {
	ctx := context.Background()
	m := kv.NewMemory()
	s := NewBlockSlot(m)

	blocks := []entities.BlockDefinition{{ID: "North", Name: "North", Size: 4.5}}
	require.NoError(t, s.Save(ctx, blocks))
	assert.Equal(t, blocks, s.Load(ctx))

	require.NoError(t, s.Save(ctx, nil))
	raw, _, _ := m.Get(ctx, KeyBlocks)
	assert.Equal(t, "[]", string(raw))
}

func TestSlot_SaveErrorIsReturned(t *testing.T) {
	m := kv.NewMemory()
	m.FailPut = errors.New("quota exceeded")
	assert.Error(t, NewBlockSlot(m).Save(context.Background(), nil))
}

// ------------------------------------------------------------
// Activity migration
// ------------------------------------------------------------

func TestActivitySlot_AppendsMustExistInOrder(t *testing.T) {
	m := kv.NewMemory()
	m.Set(KeyActivities, `[{"id":"irrigation","label":{"en":"Irrigation","tr":"Sulama"},"color":"#3b82f6","icon":"Droplets"},{"id":"custom","label":{"en":"Custom","tr":"Özel"},"color":"#000","icon":"Star"}]`)

	got := NewActivitySlot(m).Load(context.Background())
	assert.Equal(t, []string{"irrigation", "custom", "diesel", "tractor_work"}, defIDs(got))
}

func TestActivitySlot_KeepsExistingMustExist(t *testing.T) {
	m := kv.NewMemory()
	m.Set(KeyActivities, `[{"id":"tractor_work","label":{"en":"Mine","tr":"Benim"},"color":"#111","icon":"Gauge"}]`)

	got := NewActivitySlot(m).Load(context.Background())
	assert.Equal(t, []string{"tractor_work", "diesel"}, defIDs(got))
	assert.Equal(t, "Mine", got[0].Label.EN)
}

func TestActivitySlot_EmptyListBecomesDefaults(t *testing.T) {
	m := kv.NewMemory()
	m.Set(KeyActivities, `[]`)
	assert.Equal(t, defIDs(catalog.DefaultActivities()), defIDs(NewActivitySlot(m).Load(context.Background())))
}

func TestMigrateActivities_DoesNotMutateInput(t *testing.T) {
	saved := []entities.ActivityDefinition{{ID: "x"}}
	out := MigrateActivities(saved)
	assert.Len(t, saved, 1)
	assert.Len(t, out, 3)
}

// ------------------------------------------------------------
// Language
// ------------------------------------------------------------

func TestLanguageSlot(t *testing.T) {
	ctx := context.Background()
	m := kv.NewMemory()
	s := NewLanguageSlot(m, entities.LangEN)

	assert.Equal(t, entities.LangEN, s.Load(ctx))
	require.NoError(t, s.Save(ctx, entities.LangTR))
	assert.Equal(t, entities.LangTR, s.Load(ctx))

	m.Set(KeyLanguage, "de")
	assert.Equal(t, entities.LangEN, s.Load(ctx))
}
