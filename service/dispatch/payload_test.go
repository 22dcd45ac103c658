package dispatch

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestDecodePayload(t *testing.T) {
	cases := map[string]struct {
		in  string
		out Payload
		err error
	}{
		"series": {
			in: "series:rick_and_morty",
			out: SeriesPayload{
				Code: "rick_and_morty",
			},
		},
		"episode": {
			in: "episode:rick_and_morty:1",
			out: EpisodePayload{
				Code:  "rick_and_morty",
				Label: "1",
			},
		},
		"series without code": {
			in:  "series:",
			err: ErrMalformedPayload,
		},
		"series with extra part": {
			in:  "series:a:b",
			err: ErrMalformedPayload,
		},
		"episode without label": {
			in:  "episode:rick_and_morty",
			err: ErrMalformedPayload,
		},
		"episode with empty label": {
			in:  "episode:rick_and_morty:",
			err: ErrMalformedPayload,
		},
		"episode with extra part": {
			in:  "episode:rick_and_morty:1:2",
			err: ErrMalformedPayload,
		},
		"empty": {
			err: ErrUnknownPayload,
		},
		"unknown prefix": {
			in:  "movie:matrix",
			err: ErrUnknownPayload,
		},
		"prefix case matters": {
			in:  "SERIES:rick_and_morty",
			err: ErrUnknownPayload,
		},
	}
	for k, c := range cases {
		t.Run(k, func(t *testing.T) {
			out, err := DecodePayload(c.in)
			assert.Equal(t, c.out, out)
			assert.ErrorIs(t, err, c.err)
		})
	}
}

func TestPayload_Encode(t *testing.T) {
	for _, p := range []Payload{
		SeriesPayload{
			Code: "rick_and_morty",
		},
		EpisodePayload{
			Code:  "rick_and_morty",
			Label: "2",
		},
	} {
		decoded, err := DecodePayload(p.Encode())
		assert.Nil(t, err)
		assert.Equal(t, p, decoded)
	}
	assert.Equal(t, "episode:rick_and_morty:2", EpisodePayload{Code: "rick_and_morty", Label: "2"}.Encode())
}
