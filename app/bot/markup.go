package bot

import (
	"strings"

	"catalogbot/app/menu"
	"catalogbot/core/telegram/keyboard"

	tele "gopkg.in/telebot.v4"
)

// inlineBtn maps a menu button onto telebot's \f<unique>|<payload> callback
// encoding: the token head becomes the unique key, the escaped id fields ride
// as the payload. rebuildToken is the inverse.
func inlineBtn(b menu.Button) keyboard.InlineBtn {
	head, rest, _ := strings.Cut(b.Token, ":")
	return keyboard.InlineBtn{
		Text:   b.Label,
		Unique: strings.ToLower(head),
		Data:   rest,
	}
}

// rebuildToken restores the domain token from a callback key and payload.
func rebuildToken(key, payload string) string {
	tok := strings.ToUpper(key)
	if payload != "" {
		tok += ":" + payload
	}
	return tok
}

// markupFrom converts a rendered button grid to telebot reply markup.
// An empty grid yields nil so messages go out without a keyboard.
func markupFrom(rows [][]menu.Button) *tele.ReplyMarkup {
	if len(rows) == 0 {
		return nil
	}
	ib := make([][]keyboard.InlineBtn, len(rows))
	for i, row := range rows {
		r := make([]keyboard.InlineBtn, len(row))
		for j, btn := range row {
			r[j] = inlineBtn(btn)
		}
		ib[i] = r
	}
	return keyboard.InlineButtonsRows(ib...)
}
