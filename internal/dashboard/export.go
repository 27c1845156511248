package dashboard

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/iliyamo/eventistan/internal/model"
)

// CSVHeader is the first row of a participant export.
var CSVHeader = []string{"Name", "Email", "Phone", "Status", "Seats", "Payment Status", "Check-in Status", "Joined Date"}

const notAvailable = "N/A"

// ExportFilename is the download name of the participant export of e.
func ExportFilename(e model.Event) string {
	return e.Title + "-participants.csv"
}

// ParticipantRow is the CSV record of p.  Missing payment or check-in
// statuses are written as N/A and the join date as M/D/YYYY in UTC.
func ParticipantRow(p model.EventParticipant) []string {
	return []string{
		p.User.Name,
		p.User.Email,
		p.User.Phone,
		string(p.Status),
		strconv.Itoa(p.Seats),
		orNA(string(p.PaymentStatus)),
		orNA(string(p.CheckInStatus)),
		p.JoinedAt.UTC().Format("1/2/2006"),
	}
}

func orNA(s string) string {
	if s == "" {
		return notAvailable
	}
	return s
}

// WriteParticipantsCSV writes the header and one row per participant.
func WriteParticipantsCSV(w io.Writer, ps []model.EventParticipant) error {
	const op = "dashboard.WriteParticipantsCSV"

	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeader); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	for _, p := range ps {
		if err := cw.Write(ParticipantRow(p)); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
