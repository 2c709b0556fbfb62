package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTables_Validate(t *testing.T) {
	require.NoError(t, DefaultTables().Validate())

	var missing *Tables
	require.ErrorIs(t, missing.Validate(), ErrMissingTable)

	tables := DefaultTables()
	tables.ExplicitGroups = nil
	err := tables.Validate()
	require.ErrorIs(t, err, ErrMissingTable)
	assert.Contains(t, err.Error(), "explicit_groups")

	empty := DefaultTables()
	empty.PrefixAliases = []PrefixAlias{}
	assert.NoError(t, empty.Validate(), "an empty table is not a missing table")
}

func TestTables_Lookups(t *testing.T) {
	tables := DefaultTables()

	assert.True(t, tables.IsNonInteractive("addPermissions"))
	assert.True(t, tables.IsCustomEditor("spoofGpsTrack"))
	assert.True(t, tables.SupportsCustomOption("changeLocale"))
	assert.False(t, tables.SupportsCustomOption("changeTheme"))

	group, ok := tables.Composite("spoofGpsTrack")
	require.True(t, ok)
	assert.Equal(t, "privacy", group.Category)
	assert.Len(t, group.Members, 7)

	owner, ok := tables.CompositeOwner("spoofGpsTracks")
	require.True(t, ok)
	assert.Equal(t, "spoofGpsTrack", owner.Key)
	_, ok = tables.CompositeOwner("spoofGpsTrack")
	assert.False(t, ok)

	reset, ok := tables.ResetGroup("deleteOnExit")
	require.True(t, ok)
	assert.Equal(t, []string{"deleteFilesDirectoriesOnExit", "securelyDeleteFilesDirectoriesOnExit"}, reset.Children)
}

func TestDefaultTables_CompositeDefaults(t *testing.T) {
	group, _ := DefaultTables().Composite("spoofGpsTrack")

	want := []Value{Text(""), Number(60), Bool(false), Bool(false), Bool(false), Sequence{}, Number(0)}
	for i, m := range group.Members {
		assert.True(t, Equal(want[i], m.Default), "member %s", m.Key)
	}
}
