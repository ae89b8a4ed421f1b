package review

// Review is a client testimonial shown on the home screen. ID is numeric and
// caller-supplied; creation fills in a time-derived value when absent.
type Review struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Role  string `json:"role"`
	Text  string `json:"text"`
	Image string `json:"img"`
}
