package main

import (
	"testing"

	"github.com/openai/openai-go"
	"github.com/shoenig/test/must"
)

func TestChatContent(t *testing.T) {
	resp := &openai.ChatCompletion{
		Choices: []openai.ChatCompletionChoice{
			{Message: openai.ChatCompletionMessage{Content: "hello"}},
		},
	}

	content, err := chatContent(resp)
	must.NoError(t, err)
	must.Eq(t, "hello", content)
}

func TestChatContent_noChoices(t *testing.T) {
	_, err := chatContent(&openai.ChatCompletion{})
	must.Error(t, err)
	must.StrContains(t, err.Error(), "no choices")

	_, err = chatContent(nil)
	must.Error(t, err)
}
