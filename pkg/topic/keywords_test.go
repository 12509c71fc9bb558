package topic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/topicscope/pkg/domain"
)

func TestKeywordSuggestions(t *testing.T) {
	res := KeywordSuggestions("docker")
	require.Len(t, res, 15)
	assert.Equal(t, "docker tutorial", res[0])
	assert.Equal(t, "docker guide", res[1])
	assert.Equal(t, "how to docker", res[8])
	assert.Equal(t, "docker secrets", res[14])
}

func TestExtractKeywords(t *testing.T) {
	videos := []domain.Video{
		{Title: "Python Tutorial for beginners", Tags: []string{"python", "code"}},
		{Title: "Advanced Python tricks", Tags: []string{"Python"}},
		{Title: "Go is fun"},
	}

	res := ExtractKeywords(videos, 0)
	require.NotEmpty(t, res)
	assert.Equal(t, "python", res[0], "2+1+2+1 weight")
	assert.NotContains(t, res, "for", "short words skipped")
	assert.NotContains(t, res, "fun")
	assert.Contains(t, res, "code")

	// ties keep first-seen order
	assert.Equal(t, []string{"python", "tutorial"}, ExtractKeywords(videos, 2))
}

func TestSeedKeywords(t *testing.T) {
	cc := domain.ChannelContext{RecentThemes: []string{"python", "api"}}

	assert.Equal(t, []string{"golang"}, SeedKeywords([]string{"golang", " "}, cc))
	assert.Equal(t, []string{"python", "api"}, SeedKeywords(nil, cc))
	assert.Equal(t, DefaultSeeds, SeedKeywords(nil, domain.ChannelContext{}))

	many := []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "10", "11", "12"}
	assert.Len(t, SeedKeywords(many, cc), 10)
}
