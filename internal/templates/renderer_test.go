package templates

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRendererReplacesAllTokens(t *testing.T) {
	r := NewRenderer(map[string]string{
		"project-organization": "ekino",
		"project-name":         "@v6y/front",
		"project-acronym":      "v6y",
		"project-repo":         "vitality",
	})

	in := `{"name": "project-name", "url": "https://github.com/project-organization/project-repo.git", "prefix": "project-acronym", "alias": "project-name"}`
	want := `{"name": "@v6y/front", "url": "https://github.com/ekino/vitality.git", "prefix": "v6y", "alias": "@v6y/front"}`

	assert.Equal(t, want, r.RenderString(in))
	assert.Equal(t, []byte(want), r.RenderFile([]byte(in)))
}

func TestRendererDoesNotRescanReplacements(t *testing.T) {
	r := NewRenderer(map[string]string{
		"project-name":    "project-acronym",
		"project-acronym": "v6y",
	})

	assert.Equal(t, "project-acronym v6y", r.RenderString("project-name project-acronym"))
}

func TestRendererEmpty(t *testing.T) {
	r := NewRenderer(nil)
	assert.Equal(t, "unchanged", r.RenderString("unchanged"))
}

func TestValidateProjectName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple", "vitality", false},
		{"with hyphen", "my-app", false},
		{"with dot", "my.app", false},
		{"empty", "", true},
		{"starts with digit", "1app", true},
		{"contains slash", "a/b", true},
		{"contains space", "my app", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateProjectName(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateAcronym(t *testing.T) {
	assert.NoError(t, ValidateAcronym("v6y"))
	assert.NoError(t, ValidateAcronym("abc"))
	assert.Error(t, ValidateAcronym(""))
	assert.Error(t, ValidateAcronym("V6Y"))
	assert.Error(t, ValidateAcronym("6vy"))
	assert.Error(t, ValidateAcronym("v-y"))
}
