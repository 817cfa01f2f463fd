package command

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/diegoclair/shift-reminder-bot/internal/domain"
	"github.com/diegoclair/shift-reminder-bot/internal/domain/contract"
	"github.com/diegoclair/shift-reminder-bot/internal/domain/entity"
	"go.uber.org/zap"
)

// Router executes typed actions for a user and renders the reply. It is shared
// by every transport: text commands and button presses end up here.
type Router struct {
	svc contract.ReminderService
	log *zap.SugaredLogger
}

func NewRouter(svc contract.ReminderService, log *zap.SugaredLogger) *Router {
	return &Router{svc: svc, log: log}
}

// HandleText parses a chat command and executes it
func (r *Router) HandleText(ctx context.Context, userID, text string) entity.Reply {
	action, err := ParseCommand(text)
	if err != nil {
		return r.errorReply(userID, err)
	}
	return r.Handle(ctx, userID, action)
}

// HandleCallback parses an encoded button payload and executes it
func (r *Router) HandleCallback(ctx context.Context, userID, data string) entity.Reply {
	action, err := entity.ParseAction(data)
	if err != nil {
		return r.errorReply(userID, err)
	}
	return r.Handle(ctx, userID, action)
}

func (r *Router) Handle(ctx context.Context, userID string, action entity.Action) entity.Reply {
	var (
		reply entity.Reply
		err   error
	)

	switch action.Kind {
	case entity.ActionShowMenu:
		reply = r.menu(userID, "")
	case entity.ActionHelp:
		reply = entity.Reply{Text: HelpText(), Buttons: [][]entity.Button{menuButton()}}
	case entity.ActionShowShift:
		reply, err = r.showShift(userID, action.Shift)
	case entity.ActionToggleEntry:
		reply, err = r.toggle(ctx, userID, action.Shift, action.EntryID)
	case entity.ActionActivate:
		reply, err = r.activate(ctx, userID, action.Shift)
	case entity.ActionDisarm:
		reply, err = r.disarm(ctx, userID, action.Shift)
	case entity.ActionReset:
		reply, err = r.reset(ctx, userID, action.Shift)
	case entity.ActionRemind:
		reply, err = r.remind(ctx, userID, action)
	default:
		err = fmt.Errorf("%w: kind %q", domain.ErrInvalidAction, action.Kind)
	}

	if err != nil {
		return r.errorReply(userID, err)
	}
	return reply
}

func (r *Router) menu(userID, header string) entity.Reply {
	armed := r.svc.ArmedShifts(userID)
	armedSet := make(map[entity.Shift]bool, len(armed))
	for _, shift := range armed {
		armedSet[shift] = true
	}

	var b strings.Builder
	if header != "" {
		b.WriteString(header)
		b.WriteString("\n\n")
	}
	b.WriteString("👋 Pilih jadwal shift kamu:")

	rows := make([][]entity.Button, 0, len(r.svc.Shifts())+1)
	for _, shift := range r.svc.Shifts() {
		title := r.svc.ShiftTitle(shift)
		power := entity.Button{Label: "🔔 " + title, Action: entity.Action{Kind: entity.ActionActivate, Shift: shift}}
		if armedSet[shift] {
			power = entity.Button{Label: "🔕 " + title, Action: entity.Action{Kind: entity.ActionDisarm, Shift: shift}}
		}
		rows = append(rows, []entity.Button{
			power,
			{Label: "📋 Checklist", Action: entity.Action{Kind: entity.ActionShowShift, Shift: shift}},
		})
	}
	rows = append(rows, []entity.Button{{Label: "🔄 Reset semua", Action: entity.Action{Kind: entity.ActionReset}}})

	if len(armed) > 0 {
		titles := make([]string, 0, len(armed))
		for _, shift := range armed {
			titles = append(titles, r.svc.ShiftTitle(shift))
		}
		fmt.Fprintf(&b, "\n\n🔔 Aktif: %s", strings.Join(titles, ", "))
	}

	return entity.Reply{Text: b.String(), Buttons: rows}
}

// showShift renders one checklist, or a progress summary of every armed shift when shift is empty
func (r *Router) showShift(userID string, shift entity.Shift) (entity.Reply, error) {
	if shift != "" {
		status, err := r.svc.Status(userID, shift)
		if err != nil {
			return entity.Reply{}, err
		}
		return checklistReply("", status), nil
	}

	armed := r.svc.ArmedShifts(userID)
	if len(armed) == 0 {
		return r.menu(userID, "Belum ada shift yang aktif."), nil
	}

	var b strings.Builder
	b.WriteString("📊 Progres hari ini:")
	rows := make([][]entity.Button, 0, len(armed)+1)
	for _, s := range armed {
		status, err := r.svc.Status(userID, s)
		if err != nil {
			return entity.Reply{}, err
		}
		fmt.Fprintf(&b, "\n• %s: %d/%d selesai", status.Title, status.DoneCount(), len(status.Items))
		rows = append(rows, []entity.Button{{
			Label:  "📋 " + status.Title,
			Action: entity.Action{Kind: entity.ActionShowShift, Shift: s},
		}})
	}
	rows = append(rows, menuButton())

	return entity.Reply{Text: b.String(), Buttons: rows}, nil
}

func (r *Router) toggle(ctx context.Context, userID string, shift entity.Shift, id entity.EntryID) (entity.Reply, error) {
	done, err := r.svc.ToggleEntry(ctx, userID, shift, id)
	if err != nil {
		return entity.Reply{}, err
	}

	status, err := r.svc.Status(userID, shift)
	if err != nil {
		return entity.Reply{}, err
	}

	label := ""
	if int(id) < len(status.Items) {
		label = status.Items[id].Entry.Label
	}
	header := fmt.Sprintf("⬜ %s belum selesai", label)
	if done {
		header = fmt.Sprintf("✅ %s selesai", label)
	}

	return checklistReply(header, status), nil
}

func (r *Router) activate(ctx context.Context, userID string, shift entity.Shift) (entity.Reply, error) {
	count, err := r.svc.Activate(ctx, userID, shift)
	if err != nil {
		return entity.Reply{}, err
	}

	status, err := r.svc.Status(userID, shift)
	if err != nil {
		return entity.Reply{}, err
	}

	header := fmt.Sprintf("✅ Pengingat %s aktif, %d pengingat dijadwalkan.", status.Title, count)
	return checklistReply(header, status), nil
}

func (r *Router) disarm(ctx context.Context, userID string, shift entity.Shift) (entity.Reply, error) {
	if err := r.svc.Deactivate(ctx, userID, shift); err != nil {
		return entity.Reply{}, err
	}

	return r.menu(userID, fmt.Sprintf("🔕 Pengingat %s dimatikan.", r.svc.ShiftTitle(shift))), nil
}

func (r *Router) reset(ctx context.Context, userID string, shift entity.Shift) (entity.Reply, error) {
	if shift == "" {
		if err := r.svc.ResetUser(ctx, userID); err != nil {
			return entity.Reply{}, err
		}
		return r.menu(userID, "🔄 Semua pengingat dimatikan dan checklist dikosongkan."), nil
	}

	if err := r.svc.ResetShift(ctx, userID, shift); err != nil {
		return entity.Reply{}, err
	}

	status, err := r.svc.Status(userID, shift)
	if err != nil {
		return entity.Reply{}, err
	}

	return checklistReply(fmt.Sprintf("🔄 Checklist %s dikosongkan.", status.Title), status), nil
}

func (r *Router) remind(ctx context.Context, userID string, action entity.Action) (entity.Reply, error) {
	timer, err := r.svc.RemindAt(ctx, userID, action.Time, action.Text)
	if err != nil {
		return entity.Reply{}, err
	}

	return entity.Reply{
		Text: fmt.Sprintf("⏰ Pengingat \"%s\" dijadwalkan %s.", action.Text, timer.FireAt.Format("02 Jan 15:04")),
	}, nil
}

// errorReply maps the error taxonomy to a user-facing message. Caller mistakes
// are logged at info level, anything else at warn or error.
func (r *Router) errorReply(userID string, err error) entity.Reply {
	var text string

	switch {
	case errors.Is(err, domain.ErrInvalidShift):
		r.log.Infow("Rejected unknown shift", "user_id", userID, "error", err)
		names := make([]string, 0, len(r.svc.Shifts()))
		for _, shift := range r.svc.Shifts() {
			names = append(names, string(shift))
		}
		text = fmt.Sprintf("❌ Shift tidak dikenal. Pilihan: %s", strings.Join(names, ", "))
	case errors.Is(err, domain.ErrInvalidEntry):
		r.log.Infow("Rejected invalid entry", "user_id", userID, "error", err)
		text = "❌ Nomor tugas tidak valid. Lihat nomornya dengan status <shift>."
	case errors.Is(err, domain.ErrInvalidTimeSpec):
		r.log.Infow("Rejected invalid time", "user_id", userID, "error", err)
		text = "❌ Format waktu salah, gunakan HH:MM (contoh: remind 13:30 rapat)."
	case errors.Is(err, domain.ErrInvalidAction):
		r.log.Infow("Rejected invalid command", "user_id", userID, "error", err)
		text = "❌ Perintah tidak dikenal. Ketik help untuk bantuan."
	case errors.Is(err, domain.ErrTimerRegistrationFailed):
		r.log.Warnw("Failed to schedule reminder", "user_id", userID, "error", err)
		text = "❌ Gagal menjadwalkan pengingat, coba lagi."
	default:
		r.log.Errorw("Failed to handle action", "user_id", userID, "error", err)
		text = "❌ Terjadi kesalahan, coba lagi nanti."
	}

	return entity.Reply{Text: text, Buttons: [][]entity.Button{menuButton()}}
}
