package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aalvaropc/aoc/internal/domain"
)

func TestQueryRuns_ListNewestFirst(t *testing.T) {
	store := &fakeStore{runs: []domain.RunArtifact{{Name: "old"}, {Name: "new"}}}

	refs, err := NewQueryRuns(store).List()
	require.NoError(t, err)
	require.Len(t, refs, 2)
	assert.Equal(t, "new", refs[0].Name)
	assert.Equal(t, "old", refs[1].Name)
}

func TestQueryRuns_Show(t *testing.T) {
	doc := `{"id":"r1","results":[{"part_one":{"value":"17"}}]}`
	uc := NewQueryRuns(&fakeStore{raw: map[string][]byte{"r1": []byte(doc)}})

	raw, err := uc.Show("r1", "")
	require.NoError(t, err)
	assert.JSONEq(t, doc, raw)

	v, err := uc.Show("r1", "$.results[0].part_one.value")
	require.NoError(t, err)
	assert.Equal(t, "17", v)

	_, err = uc.Show("missing", "")
	assert.True(t, domain.IsKind(err, domain.KindNotFound))
}
