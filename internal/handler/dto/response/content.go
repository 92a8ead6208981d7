package response

type SectionResponse struct {
	Name    string `json:"name"`
	Content any    `json:"content"`
}
