package jobs

import (
	"context"
	"time"

	"rentacar-backend/internal/domain"
	"rentacar-backend/internal/logger"
)

// SendUpcomingRentalReminders emails every user whose confirmed rental
// starts within the next 24 hours.
func (jr *JobRunner) SendUpcomingRentalReminders() {
	jr.runWithRecovery("SendUpcomingRentalReminders", func() {
		ctx := context.Background()

		query := `
			SELECT r.id, u.email, u.name, c.name, r.rental_start_date
			FROM rentals r
			JOIN users u ON u.id = r.user_id
			JOIN cars c ON c.id = r.car_id
			WHERE r.status = $1
			  AND r.rental_start_date >= $2
			  AND r.rental_start_date < $3
			ORDER BY r.rental_start_date
		`

		now := time.Now()
		rows, err := jr.db.QueryContext(ctx, query, domain.RentalStatusDone, now, now.Add(24*time.Hour))
		if err != nil {
			logger.Error("Failed to query upcoming rentals", "error", err)
			return
		}
		defer rows.Close()

		count := 0
		for rows.Next() {
			var (
				rentalID  int32
				email     string
				userName  string
				carName   string
				startDate time.Time
			)
			if err := rows.Scan(&rentalID, &email, &userName, &carName, &startDate); err != nil {
				logger.Error("Failed to scan upcoming rental", "error", err)
				continue
			}

			if err := jr.email.SendRentalReminder(ctx, email, userName, carName, startDate); err != nil {
				logger.Error("Failed to send rental reminder", "rental_id", rentalID, "error", err)
				continue
			}
			logger.Debug("Sent rental reminder", "rental_id", rentalID, "start_date", startDate)
			count++
		}

		if err := rows.Err(); err != nil {
			logger.Error("Error iterating upcoming rentals", "error", err)
			return
		}

		logger.Info("Sent rental reminders", "count", count)
	})
}
