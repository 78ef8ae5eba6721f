package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := map[string]string{
		"Casa Térrea 3 Quartos":  "casa-terrea-3-quartos",
		"  Sobrado -- Moderno! ": "sobrado-moderno",
		"Contemporâneo":          "contemporaneo",
		"":                       "",
	}
	for in, want := range tests {
		assert.Equal(t, want, Slugify(in), in)
	}
}

func TestParseAddonKind(t *testing.T) {
	k, ok := ParseAddonKind("Electrical")
	assert.True(t, ok)
	assert.Equal(t, AddonElectrical, k)

	_, ok = ParseAddonKind("solar")
	assert.False(t, ok)
}

func TestProjectAddonPriceRoundTrip(t *testing.T) {
	var p Project
	v := 120.5
	for _, kind := range AddonKinds {
		assert.Nil(t, p.AddonPrice(kind))
		p.SetAddonPrice(kind, &v)
		assert.Equal(t, &v, p.AddonPrice(kind))
	}
}

func TestParseLeadStatus(t *testing.T) {
	s, err := ParseLeadStatus("paid")
	assert.NoError(t, err)
	assert.Equal(t, LeadStatusPaid, s)

	_, err = ParseLeadStatus("archived")
	assert.ErrorIs(t, err, ErrInvalidLeadStatus)

	assert.Equal(t, LeadSourceContact, ParseLeadSource("carrier pigeon"))
	assert.Equal(t, LeadSourceWhatsApp, ParseLeadSource("whatsapp"))
}
