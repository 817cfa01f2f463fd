package command

// HelpText lists every command. Telegram users type them with a leading slash,
// Slack users after the slash command (e.g. "/jadwal pagi").
func HelpText() string {
	return `📖 Perintah yang tersedia:

Jadwal:
• start / menu - tampilkan menu shift
• pagi, siang, malam - aktifkan pengingat shift
• off <shift> - matikan pengingat shift
• status [shift] - lihat checklist shift

Checklist:
• done <shift> <nomor> - tandai tugas selesai (atau batalkan)
• reset <shift> - kosongkan checklist shift dan jadwalkan ulang
• reset - matikan semua pengingat dan kosongkan checklist

Lainnya:
• remind HH:MM <pesan> - pengingat sekali pakai (contoh: remind 13:30 rapat)
• help - tampilkan bantuan ini`
}
