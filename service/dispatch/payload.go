package dispatch

import (
	"errors"
	"fmt"
	"strings"
)

const payloadSeparator = ":"
const payloadPrefixSeries = "series"
const payloadPrefixEpisode = "episode"

var ErrMalformedPayload = errors.New("malformed payload")
var ErrUnknownPayload = errors.New("unknown payload")

// Payload is the callback data of an inline button.
type Payload interface {
	Encode() string
}

type SeriesPayload struct {
	Code string
}

type EpisodePayload struct {
	Code  string
	Label string
}

func (p SeriesPayload) Encode() string {
	return payloadPrefixSeries + payloadSeparator + p.Code
}

func (p EpisodePayload) Encode() string {
	return strings.Join([]string{payloadPrefixEpisode, p.Code, p.Label}, payloadSeparator)
}

func DecodePayload(data string) (p Payload, err error) {
	parts := strings.Split(data, payloadSeparator)
	switch parts[0] {
	case payloadPrefixSeries:
		if len(parts) != 2 || parts[1] == "" {
			err = fmt.Errorf("%w: %q", ErrMalformedPayload, data)
			break
		}
		p = SeriesPayload{
			Code: parts[1],
		}
	case payloadPrefixEpisode:
		if len(parts) != 3 || parts[1] == "" || parts[2] == "" {
			err = fmt.Errorf("%w: %q", ErrMalformedPayload, data)
			break
		}
		p = EpisodePayload{
			Code:  parts[1],
			Label: parts[2],
		}
	default:
		err = fmt.Errorf("%w: %q", ErrUnknownPayload, data)
	}
	return
}
