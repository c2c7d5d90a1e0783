package model_test

import (
	"testing"
	"time"

	"github.com/gedphotos/gedphotos/pkg/domain/model"
)

func TestIndividual_PersonID(t *testing.T) {
	tests := []struct {
		name     string
		indi     *model.Individual
		expected string
	}{
		{
			name: "Simple name and date",
			indi: &model.Individual{
				GivenName: "John",
				Surname:   "Smith",
				BirthDate: time.Date(1850, time.March, 12, 0, 0, 0, 0, time.UTC),
			},
			expected: "1850-03-12_john_smith",
		},
		{
			name: "Multi-part given name",
			indi: &model.Individual{
				GivenName: "Mary Ann",
				Surname:   "Jones",
				BirthDate: time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC),
			},
			expected: "1900-01-01_mary_ann_jones",
		},
		{
			name: "Non-alphanumeric characters stripped",
			indi: &model.Individual{
				GivenName: "Seán",
				Surname:   "O'Brien",
				BirthDate: time.Date(1923, time.December, 3, 0, 0, 0, 0, time.UTC),
			},
			expected: "1923-12-03_sen_obrien",
		},
		{
			name: "Missing birth date",
			indi: &model.Individual{
				GivenName: "John",
				Surname:   "Smith",
			},
			expected: "",
		},
		{
			name: "Missing name",
			indi: &model.Individual{
				BirthDate: time.Date(1850, time.March, 12, 0, 0, 0, 0, time.UTC),
			},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.indi.PersonID()
			if got != tt.expected {
				t.Errorf("PersonID() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestPhotoRef_FileName(t *testing.T) {
	ref := &model.PhotoRef{
		PersonID: "1850-03-12_john_smith",
		Seq:      3,
		URL:      "https://cdn.example.com/p/3",
	}

	if got := ref.FileName(".jpg"); got != "1850-03-12_john_smith_03.jpg" {
		t.Errorf("FileName() = %q", got)
	}
	if got := ref.FileName(".png"); got != "1850-03-12_john_smith_03.png" {
		t.Errorf("FileName() = %q", got)
	}
}
