package resp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderDefaults(t *testing.T) {
	ctx := MsgContext{Resource: "Menu item"}

	assert.Equal(t, "Menu items", DefaultMessages.Render("list", ctx))
	assert.Equal(t, "Menu item details", DefaultMessages.Render("retrieve", ctx))
	assert.Equal(t, "Menu item created successfully.", DefaultMessages.Render("create", ctx))
	assert.Equal(t, "Menu item updated successfully.", DefaultMessages.Render("update", ctx))
	assert.Equal(t, "Menu item deleted successfully.", DefaultMessages.Render("destroy", ctx))
}

func TestRenderExplicitPluralAndAdverb(t *testing.T) {
	ctx := MsgContext{Resource: "Category", ResourcePlural: "Categories", Adverb: " partially"}

	assert.Equal(t, "Categories", DefaultMessages.Render("list", ctx))
	assert.Equal(t, "Category partially updated successfully.", DefaultMessages.Render("update", ctx))
}

func TestRenderUnknownActionIsEmpty(t *testing.T) {
	assert.Equal(t, "", DefaultMessages.Render("teleport", MsgContext{Resource: "Order"}))
}

func TestOverrideDoesNotMutateOriginal(t *testing.T) {
	custom := DefaultMessages.Override("list", "Items in the cart for user '{username}'.")

	assert.Equal(t,
		"Items in the cart for user 'alice'.",
		custom.Render("list", MsgContext{Username: "alice"}))
	assert.Equal(t, "{resource_plural}", DefaultMessages["list"])
}
