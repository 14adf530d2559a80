// Package dto はauth HTTP APIのリクエスト/レスポンス型を定義します。
package dto

// StudentLoginReq is the body of POST /student-login.
type StudentLoginReq struct {
	StudentCode string `json:"student_code" binding:"required,max=50"`
	DOB         string `json:"dob" binding:"required,datetime=2006-01-02"`
}

// TeacherLoginReq is the body of POST /teacher-login.
type TeacherLoginReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}
