package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSchemaModels(t *testing.T) {
	schema := DefaultSchema()
	models := schema.Models()
	require.Len(t, models, 8)

	// Parents must precede their children so migration can create foreign keys.
	assert.IsType(t, &User{}, models[0])
	assert.IsType(t, &Restaurant{}, models[2])
	assert.IsType(t, &Order{}, models[5])
	assert.IsType(t, &OrderStatusHistory{}, models[7])
}

func TestDefaultSchemaRelationships(t *testing.T) {
	type edge struct{ child, fk, parent string }
	want := map[edge]DeletePolicy{
		{"user_sessions", "user_id", "users"}:                 DeleteCascade,
		{"restaurants", "owner_id", "users"}:                  DeleteRestrict,
		{"menu_categories", "restaurant_id", "restaurants"}:   DeleteCascade,
		{"menu_items", "restaurant_id", "restaurants"}:        DeleteCascade,
		{"menu_items", "category_id", "menu_categories"}:      DeleteCascade,
		{"orders", "customer_id", "users"}:                    DeleteRestrict,
		{"orders", "restaurant_id", "restaurants"}:            DeleteRestrict,
		{"orders", "driver_id", "users"}:                      DeleteRestrict,
		{"order_items", "order_id", "orders"}:                 DeleteCascade,
		{"order_items", "menu_item_id", "menu_items"}:         DeleteRestrict,
		{"order_status_history", "order_id", "orders"}:        DeleteCascade,
	}

	rels := DefaultSchema().Relationships()
	require.Len(t, rels, len(want))
	for _, rel := range rels {
		policy, ok := want[edge{rel.Child, rel.ForeignKey, rel.Parent}]
		require.True(t, ok, "unexpected relationship %+v", rel)
		assert.Equal(t, policy, rel.OnDelete, "%s.%s", rel.Child, rel.ForeignKey)
	}
}

func TestSchemaAccessorsCopy(t *testing.T) {
	schema := DefaultSchema()
	models := schema.Models()
	models[0] = nil
	assert.NotNil(t, schema.Models()[0])

	rels := schema.Relationships()
	rels[0].OnDelete = DeleteRestrict
	assert.Equal(t, DeleteCascade, schema.Relationships()[0].OnDelete)
}
