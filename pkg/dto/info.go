package dto

import "time"

type AppInfo struct {
	Name      string    `json:"name"`
	GitRef    string    `json:"gitRef"`
	GitSha    string    `json:"gitSha"`
	StartedAt time.Time `json:"startedAt"`
	Uptime    string    `json:"uptime"`
}
