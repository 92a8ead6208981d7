package response

type HoneypotStyle struct {
	Position      string `json:"position"`
	Left          string `json:"left"`
	Width         string `json:"width"`
	Height        string `json:"height"`
	Opacity       int    `json:"opacity"`
	PointerEvents string `json:"pointerEvents"`
}

// HoneypotFieldResponse describes the hidden input a form must render.
type HoneypotFieldResponse struct {
	Type         string        `json:"type"`
	Name         string        `json:"name"`
	AutoComplete string        `json:"autoComplete"`
	TabIndex     int           `json:"tabIndex"`
	AriaHidden   bool          `json:"aria-hidden"`
	Style        HoneypotStyle `json:"style"`
}

func NewHoneypotFieldResponse() *HoneypotFieldResponse {
	return &HoneypotFieldResponse{
		Type:         "text",
		Name:         "website",
		AutoComplete: "off",
		TabIndex:     -1,
		AriaHidden:   true,
		Style: HoneypotStyle{
			Position:      "absolute",
			Left:          "-9999px",
			Width:         "1px",
			Height:        "1px",
			Opacity:       0,
			PointerEvents: "none",
		},
	}
}

type HealthResponse struct {
	Status string `json:"status"`
}
