package dto

type Status struct {
	Total     int              `json:"total"`
	Slots     *SlotsStatus     `json:"slots,omitempty"`
	Launchers []LauncherStatus `json:"launchers"`
}

type SlotsStatus struct {
	Allocated int `json:"allocated"`
	Limit     int `json:"limit"`
	Queued    int `json:"queued"`
}

type LauncherStatus struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	State     string `json:"state"`
	SessionID string `json:"sessionId,omitempty"`
	URL       string `json:"url,omitempty"`
	Error     string `json:"error,omitempty"`
}
