package catalog

import (
	"fmt"
	"github.com/samber/lo"
	"strings"
)

// PayloadLenMax is the Telegram limit for the callback data of an inline button.
const PayloadLenMax = 64

// fmtPayloadSeries and fmtPayloadEpisode mirror the callback data the bot derives from an entry.
const fmtPayloadSeries = "series:%s"
const fmtPayloadEpisode = "episode:%s:%s"

const separator = ":"

type Catalog interface {
	Lookup(code string) (s Series, err error)
	List() (all []Series)
}

type catalog struct {
	series []Series
	byCode map[string]int
}

func New(series ...Series) (c Catalog, err error) {
	cat := catalog{
		byCode: make(map[string]int, len(series)),
	}
	for _, s := range series {
		err = validate(s)
		if err == nil {
			if _, dup := cat.byCode[s.Code]; dup {
				err = fmt.Errorf("%w: duplicate series code %q", ErrInvalid, s.Code)
			}
		}
		if err != nil {
			return
		}
		cat.byCode[s.Code] = len(cat.series)
		cat.series = append(cat.series, s.clone())
	}
	c = cat
	return
}

func validate(s Series) (err error) {
	switch {
	case s.Code == "":
		err = fmt.Errorf("%w: empty series code", ErrInvalid)
	case strings.Contains(s.Code, separator):
		err = fmt.Errorf("%w: series code %q contains %q", ErrInvalid, s.Code, separator)
	case strings.TrimSpace(s.Title) == "":
		err = fmt.Errorf("%w: empty title of series %q", ErrInvalid, s.Code)
	case len(fmt.Sprintf(fmtPayloadSeries, s.Code)) > PayloadLenMax:
		err = fmt.Errorf("%w: series %q exceeds the %d bytes callback limit", ErrInvalid, s.Code, PayloadLenMax)
	}
	labels := map[string]bool{}
	for _, ep := range s.Episodes {
		if err != nil {
			break
		}
		switch {
		case ep.Label == "":
			err = fmt.Errorf("%w: empty episode label in series %q", ErrInvalid, s.Code)
		case strings.Contains(ep.Label, separator):
			err = fmt.Errorf("%w: episode label %q in series %q contains %q", ErrInvalid, ep.Label, s.Code, separator)
		case labels[ep.Label]:
			err = fmt.Errorf("%w: duplicate episode label %q in series %q", ErrInvalid, ep.Label, s.Code)
		case len(fmt.Sprintf(fmtPayloadEpisode, s.Code, ep.Label)) > PayloadLenMax:
			err = fmt.Errorf("%w: series %q episode %q exceeds the %d bytes callback limit", ErrInvalid, s.Code, ep.Label, PayloadLenMax)
		}
		labels[ep.Label] = true
	}
	return
}

func (c catalog) Lookup(code string) (s Series, err error) {
	i, found := c.byCode[code]
	switch found {
	case true:
		s = c.series[i].clone()
	default:
		err = fmt.Errorf("%w: series %q", ErrNotFound, code)
	}
	return
}

func (c catalog) List() (all []Series) {
	return lo.Map(c.series, func(s Series, _ int) Series {
		return s.clone()
	})
}
