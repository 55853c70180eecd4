package catalog

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"github.com/goccy/go-yaml"
	"io"
	"os"
)

// Seed - Books to load into a catalog at start, read from YAML:
//
//	books:
//	  - title: Dune
//	    author: Frank Herbert
//	    year: 1965
type Seed struct {
	Books []SeedBook `yaml:"books"`
}

// SeedBook - One book in a Seed
type SeedBook struct {
	Title  string `yaml:"title"`
	Author string `yaml:"author"`
	Year   int    `yaml:"year"`
}

// ReadSeed - Decodes a Seed from r
func ReadSeed(r io.Reader) (*Seed, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading seed: %w", err)
	}

	var seed Seed
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("decoding seed: %w", err)
	}

	return &seed, nil
}

//go:embed sample.yaml
var sampleSeed []byte

// SampleSeed - Returns the built in sample books
func SampleSeed() (*Seed, error) {
	return ReadSeed(bytes.NewReader(sampleSeed))
}

// ReadSeedFile - Decodes a Seed from the file at path
func ReadSeedFile(path string) (*Seed, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening seed: %w", err)
	}
	defer func(f *os.File) { _ = f.Close() }(f)

	return ReadSeed(f)
}

// Import - Adds every book of seed. Books already in the catalog are skipped, any other failure stops the
// import and is returned with the position of the offending book.
func (c *Catalog) Import(seed *Seed) (added int, err error) {
	for i, sb := range seed.Books {
		_, err = c.AddBook(sb.Title, sb.Author, sb.Year)
		if errors.Is(err, BookExists{}) {
			err = nil
			continue
		}
		if err != nil {
			err = fmt.Errorf("seed book #%d (%q): %w", i+1, sb.Title, err)
			return
		}
		added++
	}

	c.logger.Debug().Int("added", added).Int("total", c.Len()).Msg("seed imported")

	return
}
