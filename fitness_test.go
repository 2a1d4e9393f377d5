package linebreak

import (
	"fmt"
	"testing"

	"github.com/tdewolff/test"
)

func TestFitnessAdjacent(t *testing.T) {
	var tests = []struct {
		f, g     Fitness
		adjacent bool
	}{
		{VeryLoose, VeryLoose, true},
		{VeryLoose, Loose, true},
		{VeryLoose, Decent, false},
		{VeryLoose, Tight, false},
		{Loose, Decent, true},
		{Loose, Tight, false},
		{Decent, Tight, true},
		{Tight, Decent, true},
		{Tight, Loose, false},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%v-%v", tt.f, tt.g), func(t *testing.T) {
			test.T(t, tt.f.Adjacent(tt.g), tt.adjacent)
		})
	}
}

func TestFitnessClass(t *testing.T) {
	test.T(t, stretchFitness(0), Decent)
	test.T(t, stretchFitness(11), Decent)
	test.T(t, stretchFitness(12), Loose)
	test.T(t, stretchFitness(98), Loose)
	test.T(t, stretchFitness(99), VeryLoose)
	test.T(t, stretchFitness(InfBad), VeryLoose)
	test.T(t, shrinkFitness(12), Decent)
	test.T(t, shrinkFitness(13), Tight)
	test.String(t, Tight.String(), "Tight")
}
