package main

import "testing"

func TestValidateFlags(t *testing.T) {
	tests := []struct {
		name    string
		day     string
		input   string
		fetch   bool
		wantErr bool
	}{
		{name: "single day from file", day: "7", input: "day07.txt"},
		{name: "single day from stdin", day: "7", input: "-"},
		{name: "all days fetched", day: "all", fetch: true},
		{name: "bad day", day: "seven", fetch: true, wantErr: true},
		{name: "both sources", day: "7", input: "x", fetch: true, wantErr: true},
		{name: "no source", day: "7", wantErr: true},
		{name: "all days from one file", day: "all", input: "x", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateFlags(tt.day, tt.input, tt.fetch)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateFlags() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
