package version

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommitIsNeverEmpty(t *testing.T) {
	assert.NotEmpty(t, Commit)
	assert.LessOrEqual(t, len(Commit), 8)
}

func TestStringFormat(t *testing.T) {
	s := String()
	assert.True(t, strings.HasPrefix(s, AppName+"/"), "got %q", s)
	assert.Equal(t, AppName+"/"+Commit, s)
}

func TestShortTruncatesLongRevisions(t *testing.T) {
	assert.Equal(t, "0123abcd", short("0123abcdef0123abcdef0123abcdef0123abcdef"))
	assert.Equal(t, "dev", short("dev"))
}
