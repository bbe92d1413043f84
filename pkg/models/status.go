package models

// HubStatus is a response of the WebDriver "GET /status" endpoint
type HubStatus struct {
	Value HubReadiness `json:"value"`
}

type HubReadiness struct {
	Ready   bool   `json:"ready"`
	Message string `json:"message,omitempty"`
}
