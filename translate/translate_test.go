package translate

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"golang.org/x/text/language"
)

func TestFrom(t *testing.T) {
	assert := assert.New(t)

	Use(language.AmericanEnglish)

	assert.Equal("out of bounds", From("out of bounds"))
	assert.Equal("offset 3 size 9", From("offset %d size %d", 3, 9))
}

func TestUse_Concurrent(t *testing.T) {
	assert := assert.New(t)

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			Use(language.AmericanEnglish)
		}()
		go func() {
			defer wg.Done()
			assert.Equal("ready", From("ready"))
		}()
	}
	wg.Wait()
}
