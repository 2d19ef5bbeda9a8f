package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePage(t *testing.T) {
	for _, p := range Pages {
		got, ok := ParsePage(string(p))
		assert.True(t, ok, p)
		assert.Equal(t, p, got)
	}

	_, ok := ParsePage("blog")
	assert.False(t, ok)
	_, ok = ParsePage("")
	assert.False(t, ok)
}

func TestPagesOrder(t *testing.T) {
	assert.Equal(t, []Page{"home", "about", "projects", "skills", "contact"}, Pages)
}
