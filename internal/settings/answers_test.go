package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnswersString(t *testing.T) {
	a := Answers{"s": "value", "b": true, "n": 3, "nil": nil}

	assert.Equal(t, "value", a.String("s"))
	assert.Equal(t, "true", a.String("b"))
	assert.Equal(t, "3", a.String("n"))
	assert.Equal(t, "", a.String("nil"))
	assert.Equal(t, "", a.String("missing"))
}

func TestAnswersBool(t *testing.T) {
	tests := []struct {
		value any
		want  bool
	}{
		{true, true},
		{false, false},
		{"true", true},
		{"Yes", true},
		{"1", true},
		{"no", false},
		{"", false},
		{nil, false},
		{42, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Answers{"k": tt.value}.Bool("k"), "value %v", tt.value)
	}
	assert.False(t, Answers{}.Bool("missing"))
}

func TestAnswersClone(t *testing.T) {
	a := Answers{"k": "v"}
	c := a.Clone()
	c["k"] = "changed"

	assert.Equal(t, "v", a["k"])
}
