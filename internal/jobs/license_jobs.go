package jobs

import (
	"context"
	"time"

	"rentacar-backend/internal/logger"
)

// SendLicenseExpiryReminders emails every user whose driver license
// expires within the next 30 days.
func (jr *JobRunner) SendLicenseExpiryReminders() {
	jr.runWithRecovery("SendLicenseExpiryReminders", func() {
		ctx := context.Background()

		query := `
			SELECT l.id, u.email, u.name, l.number, l.expiry_date
			FROM driver_licenses l
			JOIN users u ON u.id = l.user_id
			WHERE l.expiry_date >= $1
			  AND l.expiry_date < $2
			ORDER BY l.expiry_date
		`

		now := time.Now()
		rows, err := jr.db.QueryContext(ctx, query, now, now.Add(30*24*time.Hour))
		if err != nil {
			logger.Error("Failed to query expiring licenses", "error", err)
			return
		}
		defer rows.Close()

		count := 0
		for rows.Next() {
			var (
				licenseID int32
				email     string
				userName  string
				number    string
				expiry    time.Time
			)
			if err := rows.Scan(&licenseID, &email, &userName, &number, &expiry); err != nil {
				logger.Error("Failed to scan expiring license", "error", err)
				continue
			}

			if err := jr.email.SendLicenseExpiryReminder(ctx, email, userName, number, expiry); err != nil {
				logger.Error("Failed to send license expiry reminder", "license_id", licenseID, "error", err)
				continue
			}
			logger.Debug("Sent license expiry reminder", "license_id", licenseID, "expiry_date", expiry)
			count++
		}

		if err := rows.Err(); err != nil {
			logger.Error("Error iterating expiring licenses", "error", err)
			return
		}

		logger.Info("Sent license expiry reminders", "count", count)
	})
}
