package extract_test

import (
	"reflect"
	"testing"

	"academic-calendar-core/pkg/extract"
)

func TestCourseCodes(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "Compact codes",
			text: "CSC101 and MATH201 exams",
			want: []string{"CSC101", "MATH201"},
		},
		{
			name: "Duplicates keep first occurrence only",
			text: "CSC101 CSC101 MATH201",
			want: []string{"CSC101", "MATH201"},
		},
		{
			name: "Spaced code and abbreviation",
			text: "Topic: CE 382 HCI GROUP PRESENTATION",
			want: []string{"CE 382", "HCI"},
		},
		{
			name: "Lowercase input is matched",
			text: "csc101 assignment due",
			want: []string{"CSC101"},
		},
		{
			name: "Month abbreviation is not a course",
			text: "Oct 15 2025 exam",
			want: nil,
		},
		{
			name: "Weekday with digits is not a course",
			text: "see you FRI 101",
			want: nil,
		},
		{
			name: "Abbreviation must be a whole word",
			text: "never again, osmosis",
			want: nil,
		},
		{
			name: "Short word before an iso date is not a course",
			text: "exam on 2025-12-01",
			want: nil,
		},
		{
			name: "Short word before a bare year is not a course",
			text: "essay due 2099",
			want: nil,
		},
		{
			name: "Short word before a slash date is not a course",
			text: "hand in by 15/10/2025",
			want: nil,
		},
		{
			name: "Spaced code survives a trailing period",
			text: "register for CS 210.",
			want: []string{"CS 210"},
		},
		{
			name: "Mixed forms ordered by position",
			text: "DSA notes before CS 210 and then CSC101",
			want: []string{"DSA", "CS 210", "CSC101"},
		},
		{
			name: "Empty input",
			text: "",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extract.CourseCodes(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("CourseCodes(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}
