package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/lolabot/saint-objet/pkg/models"
)

type DeliveryRepository struct {
	db dbConn
}

func NewDeliveryRepository(db *DB) *DeliveryRepository {
	return &DeliveryRepository{db: db.conn}
}

func newDeliveryRepo(db dbConn) *DeliveryRepository {
	return &DeliveryRepository{db: db}
}

// Record inserts a delivery attempt and sets its ID.
func (r *DeliveryRepository) Record(delivery *models.Delivery) error {
	query := `
		INSERT INTO deliveries (month, day, channel, success, announce, delivered_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	if delivery.DeliveredAt.IsZero() {
		delivery.DeliveredAt = time.Now()
	}

	result, err := r.db.Exec(query,
		delivery.Month,
		delivery.Day,
		delivery.Channel,
		delivery.Success,
		delivery.Announce,
		delivery.DeliveredAt,
	)
	if err != nil {
		return fmt.Errorf("failed to record delivery: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	delivery.ID = id
	return nil
}

// SentToday reports whether a successful delivery was already recorded
// on the calendar day containing now.
func (r *DeliveryRepository) SentToday(now time.Time) (bool, error) {
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	var count int
	query := `SELECT COUNT(*) FROM deliveries WHERE success = 1 AND delivered_at >= ?`
	if err := r.db.QueryRow(query, startOfDay).Scan(&count); err != nil {
		return false, fmt.Errorf("failed to count today's deliveries: %w", err)
	}

	return count > 0, nil
}

// GetLatest returns the most recent delivery, or nil if none exists.
func (r *DeliveryRepository) GetLatest() (*models.Delivery, error) {
	query := `
		SELECT id, month, day, channel, success, announce, delivered_at
		FROM deliveries
		ORDER BY delivered_at DESC, id DESC
		LIMIT 1
	`

	delivery := &models.Delivery{}
	err := r.db.QueryRow(query).Scan(
		&delivery.ID,
		&delivery.Month,
		&delivery.Day,
		&delivery.Channel,
		&delivery.Success,
		&delivery.Announce,
		&delivery.DeliveredAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get latest delivery: %w", err)
	}

	return delivery, nil
}

// ListRecent returns up to limit deliveries, newest first.
func (r *DeliveryRepository) ListRecent(limit int) ([]*models.Delivery, error) {
	query := `
		SELECT id, month, day, channel, success, announce, delivered_at
		FROM deliveries
		ORDER BY delivered_at DESC, id DESC
		LIMIT ?
	`

	rows, err := r.db.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list deliveries: %w", err)
	}
	defer rows.Close()

	var deliveries []*models.Delivery
	for rows.Next() {
		delivery := &models.Delivery{}
		err := rows.Scan(
			&delivery.ID,
			&delivery.Month,
			&delivery.Day,
			&delivery.Channel,
			&delivery.Success,
			&delivery.Announce,
			&delivery.DeliveredAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan delivery: %w", err)
		}
		deliveries = append(deliveries, delivery)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate deliveries: %w", err)
	}

	return deliveries, nil
}
