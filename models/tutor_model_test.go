package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLanguagesListSplitsAndTrims(t *testing.T) {
	tutor := Tutor{LanguagesSpecialised: "Python, Java,  SQL"}
	assert.Equal(t, []string{"Python", "Java", "SQL"}, tutor.LanguagesList())
}

func TestLanguagesListEmpty(t *testing.T) {
	tutor := Tutor{}
	assert.Empty(t, tutor.LanguagesList())

	tutor.LanguagesSpecialised = " , ,"
	assert.Empty(t, tutor.LanguagesList())
}

func TestTeaches(t *testing.T) {
	tutor := Tutor{LanguagesSpecialised: "Python, Java"}

	assert.True(t, tutor.Teaches("Python"))
	assert.True(t, tutor.Teaches("Java"))
	assert.False(t, tutor.Teaches("SQL"))
}
