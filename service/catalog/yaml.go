package catalog

import (
	"fmt"
	"gopkg.in/yaml.v3"
	"io"
	"os"
)

type document struct {
	Series []Series `yaml:"series"`
}

// Load reads a YAML document of the form:
//
//	series:
//	  - code: rick_and_morty
//	    title: Rick and Morty
//	    episodes:
//	      - label: "1"
//	        media: BAACAgIAAxkBAAI...
func Load(r io.Reader) (c Catalog, err error) {
	var doc document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	err = dec.Decode(&doc)
	switch err {
	case nil:
		c, err = New(doc.Series...)
	case io.EOF:
		c, err = New()
	default:
		err = fmt.Errorf("%w: %s", ErrInvalid, err)
	}
	return
}

func LoadFile(path string) (c Catalog, err error) {
	var f *os.File
	f, err = os.Open(path)
	if err == nil {
		defer f.Close()
		c, err = Load(f)
	}
	return
}
