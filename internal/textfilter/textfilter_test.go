package textfilter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MrJamesThe3rd/contasimple/internal/textfilter"
)

func TestMatch(t *testing.T) {
	tests := []struct {
		name   string
		term   string
		fields []string
		want   bool
	}{
		{name: "EmptyTerm", term: "", fields: []string{"anything"}, want: true},
		{name: "CaseInsensitive", term: "abc", fields: []string{"Empresa ABC SAS"}, want: true},
		{name: "Accents", term: "CONSULTORÍA", fields: []string{"Servicios de consultoría"}, want: true},
		{name: "SecondField", term: "software", fields: []string{"Comercial XYZ", "Desarrollo de software"}, want: true},
		{name: "NoMatch", term: "nequi", fields: []string{"Bancolombia", "TRF-001"}, want: false},
		{name: "NoFields", term: "x", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, textfilter.Match(tt.term, tt.fields...))
		})
	}
}

func TestApply_PreservesOrderAndInput(t *testing.T) {
	in := []string{"Papelería Central", "EPM", "papel y cartón"}
	fields := func(s string) []string { return []string{s} }

	got := textfilter.Apply(in, "PAPEL", fields)
	assert.Equal(t, []string{"Papelería Central", "papel y cartón"}, got)
	assert.Equal(t, []string{"Papelería Central", "EPM", "papel y cartón"}, in)

	assert.Equal(t, got, textfilter.Apply(got, "PAPEL", fields))
	assert.Equal(t, in, textfilter.Apply(in, "", fields))
}
