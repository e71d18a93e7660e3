package handlers

import (
	"reflect"
	"testing"
)

func TestTagList(t *testing.T) {
	tests := []struct {
		name string
		in   interface{}
		want []string
	}{
		{"missing", nil, nil},
		{"comma string", "ML, Python", []string{"ml", "python"}},
		{"semicolon string", "ML; Python", []string{"ml", "python"}},
		{"array", []interface{}{" NLP ", "", "Go", 7}, []string{"nlp", "go"}},
		{"empty string", "", []string{}},
		{"wrong type", 42.0, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tagList(tt.in); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("tagList(%v) = %#v, want %#v", tt.in, got, tt.want)
			}
		})
	}
}
