package models

import "time"

// Delivery channels.
const (
	ChannelDesktop = "desktop"
	ChannelSlack   = "slack"
	ChannelStdout  = "stdout"
)

type Delivery struct {
	ID          int64     `json:"id" db:"id"`
	Month       int       `json:"month" db:"month"`
	Day         int       `json:"day" db:"day"`
	Channel     string    `json:"channel" db:"channel"`
	Success     bool      `json:"success" db:"success"`
	Announce    string    `json:"announce" db:"announce"`
	DeliveredAt time.Time `json:"delivered_at" db:"delivered_at"`
}
