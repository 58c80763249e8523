package prefs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefault(t *testing.T) {
	p := Default()
	assert.Equal(t, "default", p.JarSkin)
	assert.Equal(t, 30, p.SavouringTimerSecs)
	assert.NoError(t, p.Validate())
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Preferences{JarSkin: "violet", SavouringTimerSecs: 60}.Validate())

	err := Preferences{JarSkin: "plaid", SavouringTimerSecs: 30}.Validate()
	assert.ErrorIs(t, err, ErrInvalidPreferences)

	err = Preferences{JarSkin: "blue", SavouringTimerSecs: 1}.Validate()
	assert.ErrorIs(t, err, ErrInvalidPreferences)

	err = Preferences{JarSkin: "blue", SavouringTimerSecs: 301}.Validate()
	assert.ErrorIs(t, err, ErrInvalidPreferences)
}

func TestValidSkin(t *testing.T) {
	assert.True(t, ValidSkin("default"))
	assert.True(t, ValidSkin("peach"))
	assert.False(t, ValidSkin(""))
	assert.False(t, ValidSkin("tartan"))
}
