package topic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/topicscope/pkg/domain"
)

func TestDedupe(t *testing.T) {
	t.Run("first occurrence wins", func(t *testing.T) {
		in := []domain.Candidate{
			{Title: "Go Tutorial", Source: domain.SourceTrending, ViewsPotential: 100},
			{Title: "Rust vs Go", Source: "search:go"},
			{Title: "go tutorial", Source: domain.SourceAIGenerated},
			{Title: "GO TUTORIAL", Source: "search:go", ViewsPotential: 1000},
		}
		res := Dedupe(in)
		require.Len(t, res, 2)
		assert.Equal(t, "Go Tutorial", res[0].Title)
		assert.Equal(t, domain.SourceTrending, res[0].Source)
		assert.Equal(t, int64(100), res[0].ViewsPotential)
		assert.Equal(t, "Rust vs Go", res[1].Title)
	})

	t.Run("empty", func(t *testing.T) {
		assert.Empty(t, Dedupe(nil))
	})

	t.Run("no duplicates keeps order", func(t *testing.T) {
		in := []domain.Candidate{{Title: "c"}, {Title: "a"}, {Title: "b"}}
		assert.Equal(t, in, Dedupe(in))
	})
}
