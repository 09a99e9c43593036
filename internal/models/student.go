package models

// Student represents a registered learner. StudentID is supplied by the
// registrar at registration time; SeatNum is allocated by the store and is
// strictly increasing per registration order.
type Student struct {
	StudentID    int    `json:"student_id"`
	UserID       int    `json:"user_id"`
	SeatNum      int    `json:"seat_num"`
	FullName     string `json:"full_name"`
	AcademicYear int    `json:"academic_year"`
	Track        string `json:"track"`
	NationalID   string `json:"national_id"`
	DateOfBirth  string `json:"date_of_birth"`
}

// Fee is the single tuition record owned by a student. The amount is fixed at
// registration: 15000 for academic years 1-2, 20000 otherwise.
type Fee struct {
	StudentID int  `json:"student_id"`
	Amount    int  `json:"amount"`
	IsPaid    bool `json:"is_paid"`
}

// FeeDetail pairs a fee with the owning student's name for the finance view.
type FeeDetail struct {
	Fee
	FullName string `json:"full_name"`
}
