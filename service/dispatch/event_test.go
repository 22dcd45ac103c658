package dispatch

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestKind_String(t *testing.T) {
	cases := map[Kind]string{
		KindUndefined: "Undefined",
		KindText:      "Text",
		KindCallback:  "Callback",
		Kind(42):      "Undefined",
		Kind(-1):      "Undefined",
	}
	for k, s := range cases {
		t.Run(s, func(t *testing.T) {
			assert.Equal(t, s, k.String())
		})
	}
}

func TestEvent_String(t *testing.T) {
	evt := Event{
		Id:     "id1",
		Kind:   Kind(9),
		UserId: 7,
		ChatId: 8,
		Text:   "/start",
	}
	assert.Equal(t, `Undefined{id=id1, user=7, chat=8, text="/start"}`, evt.String())
}
