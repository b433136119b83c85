package domain

type CtxKey string

const (
	KeyUserID    CtxKey = "UserID"
	KeyUserEmail CtxKey = "Email"
	KeyUserType  CtxKey = "UserType"
	KeyRequestID CtxKey = "RequestID"
	KeyClientIP  CtxKey = "ClientIP"
)
