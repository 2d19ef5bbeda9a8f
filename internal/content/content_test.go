package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ayasaad.dev/internal/graphics"
)

func TestProjectsResolveGraphics(t *testing.T) {
	ps := Projects()
	require.Len(t, ps, 4)

	seen := map[string]bool{}
	for _, p := range ps {
		assert.False(t, seen[p.ID], "duplicate id %s", p.ID)
		seen[p.ID] = true

		_, ok := graphics.Lookup(p.Graphic)
		assert.True(t, ok, "project %s uses unknown graphic %q", p.ID, p.Graphic)
	}
}

func TestAccessorsReturnCopies(t *testing.T) {
	ps := Projects()
	ps[0].Title = "changed"
	assert.Equal(t, "Celestial Harmonies", Projects()[0].Title)

	sk := Skills()
	sk[0] = "changed"
	assert.Equal(t, "Digital Painting (Photoshop, Procreate, Clip Studio Paint)", Skills()[0])
	assert.Len(t, Skills(), 9)
}

func TestAboutVariants(t *testing.T) {
	var got []graphics.Variant
	for _, s := range About() {
		got = append(got, s.Variant)
	}
	assert.Equal(t, []graphics.Variant{"one", "two", "three"}, got)
}

func TestBackdrop(t *testing.T) {
	assert.Len(t, Backdrop(), 6)
}

func TestDefaultProfile(t *testing.T) {
	p := DefaultProfile()
	assert.Equal(t, "Aya Saad", p.Name)
	require.Len(t, p.Social, 3)
	for _, s := range p.Social {
		assert.Equal(t, "#", s.URL)
	}
}
