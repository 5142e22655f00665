package domain

import "testing"

func TestPresentStatus(t *testing.T) {
	tests := []struct {
		name         string
		status       ApplicationStatus
		note         string
		wantHeadline string
		wantDetail   string
		wantSeverity Severity
		wantCanEdit  bool
	}{
		{
			name:         "new",
			status:       StatusNew,
			wantHeadline: "Pendaftaran Baru",
			wantDetail:   "Silahkan lengkapi formulir di bawah",
			wantSeverity: SeverityInfo,
			wantCanEdit:  true,
		},
		{
			name:         "pending review",
			status:       StatusPendingReview,
			wantHeadline: "Data sedang diperiksa",
			wantDetail:   "Mohon menunggu verifikasi admin",
			wantSeverity: SeverityWarning,
		},
		{
			name:         "accepted",
			status:       StatusAccepted,
			wantHeadline: "Selamat! Anda Diterima",
			wantDetail:   "Silahkan cetak bukti pendaftaran",
			wantSeverity: SeveritySuccess,
		},
		{
			name:         "needs revision shows the admin note",
			status:       StatusNeedsRevision,
			note:         "Foto kurang jelas, mohon upload ulang",
			wantHeadline: "Mohon Maaf, perbaiki data Anda",
			wantDetail:   "Foto kurang jelas, mohon upload ulang",
			wantSeverity: SeverityDanger,
			wantCanEdit:  true,
		},
		{
			name:         "needs revision without note falls back",
			status:       StatusNeedsRevision,
			wantHeadline: "Mohon Maaf, perbaiki data Anda",
			wantDetail:   "Silahkan cek catatan admin",
			wantSeverity: SeverityDanger,
			wantCanEdit:  true,
		},
		{
			name:         "rejected shows the admin note and stays locked",
			status:       StatusRejected,
			note:         "Kuota penuh",
			wantHeadline: "Pendaftaran Ditolak",
			wantDetail:   "Kuota penuh",
			wantSeverity: SeverityDanger,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			card := PresentStatus(tc.status, tc.note)
			if card.Headline != tc.wantHeadline {
				t.Errorf("Headline = %q, want %q", card.Headline, tc.wantHeadline)
			}
			if card.Detail != tc.wantDetail {
				t.Errorf("Detail = %q, want %q", card.Detail, tc.wantDetail)
			}
			if card.Severity != tc.wantSeverity {
				t.Errorf("Severity = %q, want %q", card.Severity, tc.wantSeverity)
			}
			if card.CanEdit != tc.wantCanEdit {
				t.Errorf("CanEdit = %v, want %v", card.CanEdit, tc.wantCanEdit)
			}
		})
	}
}

func TestPresentStatusMatchesCanEdit(t *testing.T) {
	for _, s := range []ApplicationStatus{StatusNew, StatusPendingReview, StatusAccepted, StatusNeedsRevision, StatusRejected} {
		if got := PresentStatus(s, "").CanEdit; got != CanEdit(s) {
			t.Errorf("card CanEdit for %q = %v, diverges from CanEdit()", s, got)
		}
	}
}
