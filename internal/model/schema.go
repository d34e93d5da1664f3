package model

// DeletePolicy names what happens to referencing rows when the referenced
// row is deleted.
type DeletePolicy string

const (
	// DeleteCascade removes all referencing rows in the same atomic operation.
	DeleteCascade DeletePolicy = "CASCADE"
	// DeleteRestrict rejects the deletion while referencing rows exist.
	DeleteRestrict DeletePolicy = "RESTRICT"
)

// Relationship is one foreign-key edge of the schema with its delete policy
// spelled out.
type Relationship struct {
	Child      string
	ForeignKey string
	Parent     string
	OnDelete   DeletePolicy
}

// Schema is the canonical definition of the persisted entities. It is
// constructed once at process start and passed by reference to whatever
// opens the database; there is no package-level registry.
type Schema struct {
	models        []any
	relationships []Relationship
}

// DefaultSchema builds the food-delivery schema. Models are ordered
// parents-first so migration can create foreign keys as it goes.
func DefaultSchema() *Schema {
	return &Schema{
		models: []any{
			&User{},
			&UserSession{},
			&Restaurant{},
			&MenuCategory{},
			&MenuItem{},
			&Order{},
			&OrderItem{},
			&OrderStatusHistory{},
		},
		relationships: []Relationship{
			{Child: "user_sessions", ForeignKey: "user_id", Parent: "users", OnDelete: DeleteCascade},
			{Child: "restaurants", ForeignKey: "owner_id", Parent: "users", OnDelete: DeleteRestrict},
			{Child: "menu_categories", ForeignKey: "restaurant_id", Parent: "restaurants", OnDelete: DeleteCascade},
			{Child: "menu_items", ForeignKey: "restaurant_id", Parent: "restaurants", OnDelete: DeleteCascade},
			{Child: "menu_items", ForeignKey: "category_id", Parent: "menu_categories", OnDelete: DeleteCascade},
			{Child: "orders", ForeignKey: "customer_id", Parent: "users", OnDelete: DeleteRestrict},
			{Child: "orders", ForeignKey: "restaurant_id", Parent: "restaurants", OnDelete: DeleteRestrict},
			{Child: "orders", ForeignKey: "driver_id", Parent: "users", OnDelete: DeleteRestrict},
			{Child: "order_items", ForeignKey: "order_id", Parent: "orders", OnDelete: DeleteCascade},
			{Child: "order_items", ForeignKey: "menu_item_id", Parent: "menu_items", OnDelete: DeleteRestrict},
			{Child: "order_status_history", ForeignKey: "order_id", Parent: "orders", OnDelete: DeleteCascade},
		},
	}
}

// Models returns the migration-ordered model list.
func (s *Schema) Models() []any {
	out := make([]any, len(s.models))
	copy(out, s.models)
	return out
}

// Relationships returns every foreign-key edge with its delete policy.
func (s *Schema) Relationships() []Relationship {
	out := make([]Relationship, len(s.relationships))
	copy(out, s.relationships)
	return out
}
