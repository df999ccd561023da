package main

import (
	"testing"

	"github.com/ukaji3/chartgeom-go/pkg/chartgeom/models"
)

func TestFindChart(t *testing.T) {
	book := &models.BookLayout{Charts: []models.ChartLayout{{Name: "a"}, {Name: "b"}}}

	if _, err := findChart(book, ""); err == nil {
		t.Error("Expected error when several charts and no name")
	}
	c, err := findChart(book, "b")
	if err != nil || c.Name != "b" {
		t.Errorf("findChart(b) = %+v, %v", c, err)
	}
	if _, err := findChart(book, "z"); err == nil {
		t.Error("Expected error for unknown chart")
	}

	single := &models.BookLayout{Charts: []models.ChartLayout{{Name: "only"}}}
	if c, err := findChart(single, ""); err != nil || c.Name != "only" {
		t.Errorf("findChart on single chart = %+v, %v", c, err)
	}
}
