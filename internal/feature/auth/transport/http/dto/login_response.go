package dto

// StudentLoginRes is returned by a successful student login.
type StudentLoginRes struct {
	Message     string `json:"message"`
	StudentCode string `json:"student_code"`
	StudentName string `json:"student_name"`
}

// TeacherLoginRes is returned by a successful teacher/admin login.
type TeacherLoginRes struct {
	Message  string `json:"message"`
	UserID   uint   `json:"user_id"`
	UserName string `json:"user_name"`
}
