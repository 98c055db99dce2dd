package handlers

import (
	"testing"

	"github.com/go-telegram/bot/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandArgument(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"/lectures", ""},
		{"/lectures   ", ""},
		{"/пары завтра", "завтра"},
		{"/lectures@lectures_bot среда", "среда"},
		{"/пары на 15.09", "15.09"},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, commandArgument(tt.text))
		})
	}
}

func TestAnswerParams(t *testing.T) {
	t.Run("private chat gets plain message", func(t *testing.T) {
		msg := &models.Message{ID: 7, Chat: models.Chat{ID: 42, Type: models.ChatTypePrivate}}

		params := answerParams(msg, "text")
		assert.Equal(t, int64(42), params.ChatID)
		assert.Equal(t, "text", params.Text)
		assert.Nil(t, params.ReplyParameters)
	})

	t.Run("group chat gets reply", func(t *testing.T) {
		msg := &models.Message{ID: 7, Chat: models.Chat{ID: -100, Type: models.ChatTypeSupergroup}}

		params := answerParams(msg, "text")
		require.NotNil(t, params.ReplyParameters)
		assert.Equal(t, 7, params.ReplyParameters.MessageID)
	})
}
