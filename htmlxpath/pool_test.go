package htmlxpath

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInternReturnsSameHandleForEqualStrings(t *testing.T) {
	a := Intern("div")
	b := Intern("div")
	require.Equal(t, a, b)
	require.Equal(t, "div", a.String())
}

func TestInternDistinguishesDifferentStrings(t *testing.T) {
	require.NotEqual(t, Intern("p"), Intern("span"))
}

func TestInternConcurrentSafe(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			Intern("concurrent-tag")
		}()
	}
	wg.Wait()
	require.Equal(t, Handle("concurrent-tag"), Intern("concurrent-tag"))
}
