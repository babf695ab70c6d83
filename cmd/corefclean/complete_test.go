package main

import (
	"reflect"
	"testing"
)

func TestGetCompletions(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{"empty", nil, nil},
		{"all commands", []string{"corefclean", ""}, commands},
		{"prefix", []string{"corefclean", "s"}, []string{"shell", "stat"}},
		{"unique", []string{"corefclean", "cl"}, []string{"clean"}},
		{"help argument", []string{"corefclean", "help", "ex"}, []string{"export"}},
		{"command argument", []string{"corefclean", "clean", "in"}, nil},
		{"clean flags", []string{"corefclean", "clean", "-w"}, []string{"-workers"}},
		{"export flags", []string{"corefclean", "export", "-"}, []string{"-from", "-to", "-run"}},
		{"flags of unknown command", []string{"corefclean", "nope", "-"}, nil},
		{"binary only", []string{"corefclean"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := getCompletions(tt.args)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("getCompletions(%v) = %v, want %v", tt.args, got, tt.want)
			}
		})
	}
}
