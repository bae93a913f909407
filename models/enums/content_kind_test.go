package enums

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseContentKind_RoundTrip(t *testing.T) {
	for _, kind := range AllContentKinds {
		parsed, ok := ParseContentKind(kind.String())
		assert.True(t, ok, "kind %s", kind)
		assert.Equal(t, kind, parsed)
	}
}

func TestParseContentKind_Unknown(t *testing.T) {
	for _, s := range []string{"", "post", "COMMENT", "unknown"} {
		_, ok := ParseContentKind(s)
		assert.False(t, ok, "input %q", s)
	}
}

func TestContentStatus_Terminality(t *testing.T) {
	assert.False(t, ContentPending.IsTerminal())
	assert.True(t, ContentApproved.IsTerminal())
	assert.True(t, ContentRejected.IsTerminal())
}
