package domain

// Doctor is a practitioner employed by the clinic.
type Doctor struct {
	ID             int    `json:"doctor_id"`
	Name           string `json:"name"`
	Specialization string `json:"specialization"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
}
