package y2019

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aalvaropc/aoc/internal/input"
)

const orbitSample = `COM)B
B)C
C)D
D)E
E)F
B)G
G)H
D)I
E)J
J)K
K)L`

func TestTotalOrbits(t *testing.T) {
	list, err := input.DecodeMany(input.New(orbitSample), "\n", ParseOrbit)
	require.NoError(t, err)
	m, err := NewOrbitMap(list)
	require.NoError(t, err)

	assert.Equal(t, 42, m.TotalOrbits())
	assert.Equal(t, []string{"K", "J", "E", "D", "C", "B", "COM"}, m.Ancestors("L"))
}

func TestDay06(t *testing.T) {
	day, err := NewDay06(input.New(orbitSample + "\nK)YOU\nI)SAN\n"))
	require.NoError(t, err)

	one, err := day.PartOne(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "54", one)

	two, err := day.PartTwo(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "4", two)
}

func TestDay06_MissingYou(t *testing.T) {
	day, err := NewDay06(input.New(orbitSample))
	require.NoError(t, err)

	_, err = day.PartTwo(context.Background())
	require.Error(t, err)
}

func TestNewOrbitMap_RejectsTwoCenters(t *testing.T) {
	_, err := NewOrbitMap([]Orbit{{"A", "B"}, {"C", "B"}})
	require.Error(t, err)
}

func TestParseOrbit(t *testing.T) {
	o, err := ParseOrbit(" COM)B ")
	require.NoError(t, err)
	assert.Equal(t, Orbit{Center: "COM", Satellite: "B"}, o)

	_, err = ParseOrbit("COMB")
	assert.Error(t, err)
	_, err = ParseOrbit(")B")
	assert.Error(t, err)
}
