//go:build unit

package catalog

import (
	"github.com/gostonefire/bookshelf/crt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testSeed = `books:
  - title: Dune
    author: Frank Herbert
    year: 1965
  - title: Neuromancer
    author: William Gibson
    year: 1984
  - title: Dune
    author: Frank Herbert
    year: 1965
`

func TestReadSeed(t *testing.T) {
	t.Run("decodes books", func(t *testing.T) {
		// Execute
		seed, err := ReadSeed(strings.NewReader(testSeed))

		// Check
		assert.NoError(t, err, "decodes seed")
		assert.Len(t, seed.Books, 3, "three entries")
		assert.Equal(t, SeedBook{Title: "Neuromancer", Author: "William Gibson", Year: 1984}, seed.Books[1], "second entry")
	})

	t.Run("reports malformed yaml", func(t *testing.T) {
		// Execute
		_, err := ReadSeed(strings.NewReader("books: [title: x"))

		// Check
		assert.Error(t, err, "malformed seed rejected")
	})
}

func TestCatalog_Import(t *testing.T) {
	t.Run("imports a seed file skipping duplicates", func(t *testing.T) {
		// Prepare
		path := filepath.Join(t.TempDir(), "seed.yaml")
		require.NoError(t, os.WriteFile(path, []byte(testSeed), 0644), "write seed")
		seed, err := ReadSeedFile(path)
		require.NoError(t, err, "read seed file")
		c := newCatalog(t, crt.SeparateChaining)

		// Execute
		added, err := c.Import(seed)

		// Check
		assert.NoError(t, err, "imported")
		assert.Equal(t, 2, added, "duplicate skipped")
		assert.Equal(t, 2, c.Len(), "two books")
	})

	t.Run("stops at an invalid book", func(t *testing.T) {
		// Prepare
		c := newCatalog(t, crt.SeparateChaining)
		seed := &Seed{Books: []SeedBook{{Title: "Ok", Author: "A", Year: 2000}, {Title: "", Author: "A", Year: 2000}}}

		// Execute
		added, err := c.Import(seed)

		// Check
		assert.ErrorIs(t, err, InvalidInput{}, "invalid book reported")
		assert.Equal(t, 1, added, "books before it added")
	})

	t.Run("fails on missing file", func(t *testing.T) {
		// Execute
		_, err := ReadSeedFile(filepath.Join(t.TempDir(), "missing.yaml"))

		// Check
		assert.ErrorIs(t, err, os.ErrNotExist, "missing file reported")
	})
}

func TestSampleSeed(t *testing.T) {
	t.Run("imports the sample books", func(t *testing.T) {
		// Prepare
		seed, err := SampleSeed()
		require.NoError(t, err, "decode sample")
		c := newCatalog(t, crt.LinearProbing)

		// Execute
		added, err := c.Import(seed)

		// Check
		assert.NoError(t, err, "imported")
		assert.Equal(t, 8, added, "eight sample books")
		book, err := c.FindExactByTitle("1984")
		assert.NoError(t, err, "quoted numeric title found")
		assert.Equal(t, "George Orwell", book.Author, "correct book")
	})
}
