package catalog

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testYaml = `
series:
  - code: rick_and_morty
    title: Rick and Morty
    episodes:
      - label: "1"
        media: coming_soon
      - label: "2"
        media: BAACAgIAAxkBAAIBQ2
  - code: dark
    title: Dark
    episodes:
      - label: s1e1
        media: BAACAgIAAxkBAAIBR3
`

func TestLoad(t *testing.T) {
	cases := map[string]struct {
		in    string
		codes []string
		err   error
	}{
		"ok": {
			in: testYaml,
			codes: []string{
				"rick_and_morty",
				"dark",
			},
		},
		"empty document": {},
		"unknown field": {
			in: `
series:
  - code: dark
    name: Dark
`,
			err: ErrInvalid,
		},
		"not yaml": {
			in:  "series: [",
			err: ErrInvalid,
		},
		"invalid entry": {
			in: `
series:
  - code: "dark:1"
    title: Dark
`,
			err: ErrInvalid,
		},
	}
	for k, c := range cases {
		t.Run(k, func(t *testing.T) {
			cat, err := Load(strings.NewReader(c.in))
			assert.ErrorIs(t, err, c.err)
			if c.err == nil {
				all := cat.List()
				require.Equal(t, len(c.codes), len(all))
				for i, code := range c.codes {
					assert.Equal(t, code, all[i].Code)
				}
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.Nil(t, os.WriteFile(path, []byte(testYaml), 0o600))
	cat, err := LoadFile(path)
	require.Nil(t, err)
	s, err := cat.Lookup("rick_and_morty")
	require.Nil(t, err)
	ep, err := s.Episode("1")
	require.Nil(t, err)
	assert.False(t, ep.Available())
	ep, err = s.Episode("2")
	require.Nil(t, err)
	assert.True(t, ep.Available())
	//
	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.True(t, os.IsNotExist(err))
}
