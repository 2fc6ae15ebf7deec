package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRemoveEmptyStrings(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, RemoveEmptyStrings([]string{"", "a", "", "b"}))
	assert.Empty(t, RemoveEmptyStrings(nil))
}

func TestSplitList(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", []string{}},
		{"http://a:9200", []string{"http://a:9200"}},
		{" http://a:9200 , ,http://b:9200,", []string{"http://a:9200", "http://b:9200"}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitList(tt.in))
		})
	}
}
