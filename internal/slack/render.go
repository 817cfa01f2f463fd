package slack

import (
	"fmt"

	"github.com/diegoclair/shift-reminder-bot/internal/domain/entity"
	goslack "github.com/slack-go/slack"
)

// Blocks renders a reply as a text section followed by one actions block per
// button row. Button values carry the encoded action.
func Blocks(reply entity.Reply) []goslack.Block {
	blocks := make([]goslack.Block, 0, len(reply.Buttons)+1)
	blocks = append(blocks, goslack.NewSectionBlock(
		goslack.NewTextBlockObject(goslack.MarkdownType, reply.Text, false, false),
		nil, nil,
	))

	for i, row := range reply.Buttons {
		elements := make([]goslack.BlockElement, 0, len(row))
		for j, button := range row {
			elements = append(elements, goslack.NewButtonBlockElement(
				fmt.Sprintf("act_%d_%d", i, j),
				button.Action.Encode(),
				goslack.NewTextBlockObject(goslack.PlainTextType, button.Label, true, false),
			))
		}
		blocks = append(blocks, goslack.NewActionBlock(fmt.Sprintf("row_%d", i), elements...))
	}

	return blocks
}

// Msg renders a reply as an ephemeral slash command response
func Msg(reply entity.Reply) *goslack.Msg {
	return &goslack.Msg{
		ResponseType: goslack.ResponseTypeEphemeral,
		Text:         reply.Text,
		Blocks:       goslack.Blocks{BlockSet: Blocks(reply)},
	}
}

// WebhookMessage renders a reply that replaces the message a button was pressed on
func WebhookMessage(reply entity.Reply) *goslack.WebhookMessage {
	return &goslack.WebhookMessage{
		Text:            reply.Text,
		Blocks:          &goslack.Blocks{BlockSet: Blocks(reply)},
		ReplaceOriginal: true,
	}
}
