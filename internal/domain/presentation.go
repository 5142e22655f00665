package domain

// Severity drives how the status card is rendered.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeveritySuccess Severity = "success"
	SeverityDanger  Severity = "danger"
)

// StatusCard is the status-dependent messaging shown to the applicant.
// Rejected and NeedsRevision share the danger severity but differ in copy and
// in whether editing reopens.
type StatusCard struct {
	Headline string   `json:"headline"`
	Detail   string   `json:"detail"`
	Severity Severity `json:"severity"`
	CanEdit  bool     `json:"can_edit"`
}

// PresentStatus maps a status (and the admin note, when one applies) onto the
// card copy. Pure function of its inputs.
func PresentStatus(s ApplicationStatus, adminNote string) StatusCard {
	switch s {
	case StatusPendingReview:
		return StatusCard{
			Headline: "Data sedang diperiksa",
			Detail:   "Mohon menunggu verifikasi admin",
			Severity: SeverityWarning,
		}
	case StatusAccepted:
		return StatusCard{
			Headline: "Selamat! Anda Diterima",
			Detail:   "Silahkan cetak bukti pendaftaran",
			Severity: SeveritySuccess,
		}
	case StatusNeedsRevision:
		return StatusCard{
			Headline: "Mohon Maaf, perbaiki data Anda",
			Detail:   noteOrFallback(adminNote),
			Severity: SeverityDanger,
			CanEdit:  true,
		}
	case StatusRejected:
		return StatusCard{
			Headline: "Pendaftaran Ditolak",
			Detail:   noteOrFallback(adminNote),
			Severity: SeverityDanger,
		}
	default:
		return StatusCard{
			Headline: "Pendaftaran Baru",
			Detail:   "Silahkan lengkapi formulir di bawah",
			Severity: SeverityInfo,
			CanEdit:  true,
		}
	}
}

func noteOrFallback(note string) string {
	if note != "" {
		return note
	}
	return "Silahkan cek catatan admin"
}
