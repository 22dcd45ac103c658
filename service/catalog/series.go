package catalog

import (
	"fmt"
	"strings"
)

// MediaComingSoon marks an episode whose video is not uploaded yet.
const MediaComingSoon = "coming_soon"

const mediaPlaceholderPrefix = "PLACEHOLDER"

type Episode struct {
	Label string `yaml:"label"`
	Media string `yaml:"media"`
}

type Series struct {
	Code     string    `yaml:"code"`
	Title    string    `yaml:"title"`
	Episodes []Episode `yaml:"episodes"`
}

// Available reports whether Media refers to an uploaded video.
func (ep Episode) Available() bool {
	media := strings.TrimSpace(ep.Media)
	switch {
	case media == "":
		return false
	case strings.EqualFold(media, MediaComingSoon):
		return false
	case strings.HasPrefix(strings.ToUpper(media), mediaPlaceholderPrefix):
		return false
	}
	return true
}

func (s Series) Episode(label string) (ep Episode, err error) {
	for _, candidate := range s.Episodes {
		if candidate.Label == label {
			ep = candidate
			return
		}
	}
	err = fmt.Errorf("%w: episode %q of series %q", ErrNotFound, label, s.Code)
	return
}

func (s Series) clone() (dst Series) {
	dst = s
	dst.Episodes = append([]Episode(nil), s.Episodes...)
	return
}
