package notify

import "gopkg.in/telebot.v3"

// Button either opens the Url or calls back with the Data.
type Button struct {
	Label string
	Url   string
	Data  string
}

type Row []Button

type Keyboard []Row

func (kbd Keyboard) markup() (m *telebot.ReplyMarkup) {
	if len(kbd) == 0 {
		return
	}
	m = &telebot.ReplyMarkup{}
	for _, row := range kbd {
		var btns []telebot.InlineButton
		for _, b := range row {
			btns = append(btns, telebot.InlineButton{
				Text: b.Label,
				URL:  b.Url,
				Data: b.Data,
			})
		}
		m.InlineKeyboard = append(m.InlineKeyboard, btns)
	}
	return
}
