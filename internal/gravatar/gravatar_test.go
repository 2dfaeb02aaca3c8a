package gravatar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestURL(t *testing.T) {
	t.Parallel()

	url := URL("MyEmailAddress@example.com ", 200)

	// md5 of the trimmed, lowercased address.
	assert.Contains(t, url, "0bc83cb571cd1c50ba6f3e8a78ef1346")
	assert.Contains(t, url, "s=200")
	assert.Contains(t, url, "r=pg")
	assert.Contains(t, url, "d=mm")
}

func TestURL_CaseInsensitive(t *testing.T) {
	t.Parallel()

	assert.Equal(t, URL("a@x.com", 200), URL("A@X.COM", 200))
}
