package handlers

import (
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// commandArgument возвращает последнее слово после команды или пустую строку
func commandArgument(text string) string {
	fields := strings.Fields(text)
	if len(fields) < 2 {
		return ""
	}
	return fields[len(fields)-1]
}

// answerParams в личке отправляет обычное сообщение, в группе отвечает на команду
func answerParams(msg *models.Message, text string) *bot.SendMessageParams {
	params := &bot.SendMessageParams{
		ChatID: msg.Chat.ID,
		Text:   text,
	}
	if msg.Chat.Type != models.ChatTypePrivate {
		params.ReplyParameters = &models.ReplyParameters{MessageID: msg.ID}
	}
	return params
}
