package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewVisibleAccounts(t *testing.T) {
	all := []string{"111", "222", "333"}

	assert.Equal(t, all, NewVisibleAccounts(all, nil).IDs())
	assert.Equal(t, []string{"222"}, NewVisibleAccounts(all, []string{"222", "222"}).IDs())

	var nilSet *VisibleAccounts
	assert.True(t, nilSet.IsVisible("qualquer"))
}

func TestVisibleAccounts_Toggle(t *testing.T) {
	visible := NewVisibleAccounts([]string{"111", "222"}, nil)

	assert.True(t, visible.Toggle("111"))
	assert.False(t, visible.IsVisible("111"))
	assert.Equal(t, 1, visible.Len())

	// a última conta visível não pode ser ocultada
	assert.False(t, visible.Toggle("222"))
	assert.True(t, visible.IsVisible("222"))

	assert.True(t, visible.Toggle("111"))
	assert.Equal(t, []string{"222", "111"}, visible.IDs())
}

func TestVisibleAccounts_SelectAll(t *testing.T) {
	all := []string{"111", "222", "333"}
	visible := NewVisibleAccounts(all, []string{"222"})

	visible.SelectAll(all)
	assert.Equal(t, []string{"222", "111", "333"}, visible.IDs())

	visible.DeselectAll(all)
	assert.Equal(t, []string{"111"}, visible.IDs())

	visible.DeselectAll(nil)
	assert.Equal(t, []string{"111"}, visible.IDs())
}
