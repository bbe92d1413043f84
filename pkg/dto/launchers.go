package dto

type Launchers struct {
	Names []string `json:"names"`
}
