package command

import (
	"fmt"
	"strings"

	"github.com/diegoclair/shift-reminder-bot/internal/domain/entity"
)

func checklistText(header string, status entity.ShiftStatus) string {
	var b strings.Builder
	if header != "" {
		b.WriteString(header)
		b.WriteString("\n\n")
	}

	state := "🔕 tidak aktif"
	if status.Armed {
		state = "🔔 aktif"
	}
	fmt.Fprintf(&b, "📋 %s (%d/%d selesai, %s)\n", status.Title, status.DoneCount(), len(status.Items), state)

	for i, item := range status.Items {
		fmt.Fprintf(&b, "\n%s %d. %s %s", mark(item.Done), i+1, item.Entry.Time, item.Entry.Label)
	}
	return b.String()
}

// checklistButtons renders one toggle button per entry followed by the shift controls
func checklistButtons(status entity.ShiftStatus) [][]entity.Button {
	rows := make([][]entity.Button, 0, len(status.Items)+1)
	for _, item := range status.Items {
		rows = append(rows, []entity.Button{{
			Label: fmt.Sprintf("%s %s %s", mark(item.Done), item.Entry.Time, item.Entry.Label),
			Action: entity.Action{
				Kind:    entity.ActionToggleEntry,
				Shift:   status.Shift,
				EntryID: item.Entry.ID,
			},
		}})
	}

	power := entity.Button{Label: "🔔 Aktifkan", Action: entity.Action{Kind: entity.ActionActivate, Shift: status.Shift}}
	if status.Armed {
		power = entity.Button{Label: "🔕 Matikan", Action: entity.Action{Kind: entity.ActionDisarm, Shift: status.Shift}}
	}

	rows = append(rows, []entity.Button{
		power,
		{Label: "🔄 Reset", Action: entity.Action{Kind: entity.ActionReset, Shift: status.Shift}},
		{Label: "☰ Menu", Action: entity.Action{Kind: entity.ActionShowMenu}},
	})
	return rows
}

func checklistReply(header string, status entity.ShiftStatus) entity.Reply {
	return entity.Reply{
		Text:    checklistText(header, status),
		Buttons: checklistButtons(status),
	}
}

func mark(done bool) string {
	if done {
		return "✅"
	}
	return "⬜"
}

func menuButton() []entity.Button {
	return []entity.Button{{Label: "☰ Menu", Action: entity.Action{Kind: entity.ActionShowMenu}}}
}
